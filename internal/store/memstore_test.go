package store

import (
	"context"
	"testing"
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
	"github.com/google/uuid"
)

func newCartItem(sessionID, productID string, quantity int) models.CartItem {
	return models.CartItem{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
}

func TestSeedCatalog(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	services, err := s.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices error: %v", err)
	}
	if len(services) != 6 {
		t.Fatalf("expected 6 seeded services, got %d", len(services))
	}
	for _, svc := range services {
		if svc.ID == "" {
			t.Fatalf("seeded service missing id: %+v", svc)
		}
		if !svc.Available {
			t.Fatalf("seeded service not available: %s", svc.Name)
		}
	}

	products, err := s.ListProducts(ctx, ProductFilter{})
	if err != nil {
		t.Fatalf("ListProducts error: %v", err)
	}
	if len(products) != 25 {
		t.Fatalf("expected 25 seeded products, got %d", len(products))
	}
}

func TestListProductsFilters(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	all, err := s.ListProducts(ctx, ProductFilter{})
	if err != nil {
		t.Fatalf("ListProducts error: %v", err)
	}

	cases := []struct {
		name   string
		filter ProductFilter
		check  func(t *testing.T, items []models.Product)
	}{
		{
			name:   "sentinels disable filtering",
			filter: ProductFilter{Category: models.AllCategories, TargetAge: models.AllAges},
			check: func(t *testing.T, items []models.Product) {
				if len(items) != len(all) {
					t.Fatalf("expected %d products, got %d", len(all), len(items))
				}
			},
		},
		{
			name:   "category exact match",
			filter: ProductFilter{Category: "Prescription"},
			check: func(t *testing.T, items []models.Product) {
				if len(items) != 5 {
					t.Fatalf("expected 5 prescription products, got %d", len(items))
				}
				for _, p := range items {
					if p.Category != "Prescription" {
						t.Fatalf("unexpected category %q", p.Category)
					}
				}
			},
		},
		{
			name:   "target age exact match",
			filter: ProductFilter{TargetAge: "Children"},
			check: func(t *testing.T, items []models.Product) {
				if len(items) != 5 {
					t.Fatalf("expected 5 children products, got %d", len(items))
				}
			},
		},
		{
			name:   "search is case-insensitive over name and description",
			filter: ProductFilter{Search: "PARACETAMOL"},
			check: func(t *testing.T, items []models.Product) {
				if len(items) != 2 {
					t.Fatalf("expected 2 paracetamol products, got %d", len(items))
				}
			},
		},
		{
			name:   "filters compose with AND",
			filter: ProductFilter{Category: "Baby Care", TargetAge: "Children", Search: "paracetamol"},
			check: func(t *testing.T, items []models.Product) {
				if len(items) != 1 {
					t.Fatalf("expected 1 product, got %d", len(items))
				}
				if items[0].Name != "Baby Paracetamol Suspension" {
					t.Fatalf("unexpected product %q", items[0].Name)
				}
			},
		},
		{
			name:   "no match returns empty, not error",
			filter: ProductFilter{Category: "Prescription", Search: "thermometer"},
			check: func(t *testing.T, items []models.Product) {
				if len(items) != 0 {
					t.Fatalf("expected 0 products, got %d", len(items))
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := s.ListProducts(ctx, tc.filter)
			if err != nil {
				t.Fatalf("ListProducts error: %v", err)
			}
			tc.check(t, items)
		})
	}
}

func TestAddToCartMergesSamePair(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	first, err := s.AddToCart(ctx, newCartItem("s1", "p1", 2))
	if err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if first.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", first.Quantity)
	}

	second, err := s.AddToCart(ctx, newCartItem("s1", "p1", 2))
	if err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected merge into existing row, got new id")
	}
	if second.Quantity != 4 {
		t.Fatalf("expected quantity 4 after merge, got %d", second.Quantity)
	}

	items, err := s.ListCartItems(ctx, "s1")
	if err != nil {
		t.Fatalf("ListCartItems error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 cart row, got %d", len(items))
	}
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	item, err := s.AddToCart(ctx, newCartItem("s1", "p1", 0))
	if err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", item.Quantity)
	}

	item, err = s.AddToCart(ctx, newCartItem("s1", "p1", 0))
	if err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if item.Quantity != 2 {
		t.Fatalf("expected quantity 2 after repeat default add, got %d", item.Quantity)
	}
}

func TestRemoveFromCart(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.AddToCart(ctx, newCartItem("s1", "p1", 1)); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if _, err := s.AddToCart(ctx, newCartItem("s1", "p2", 1)); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}

	if err := s.RemoveFromCart(ctx, "s1", "p1"); err != nil {
		t.Fatalf("RemoveFromCart error: %v", err)
	}

	items, err := s.ListCartItems(ctx, "s1")
	if err != nil {
		t.Fatalf("ListCartItems error: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != "p2" {
		t.Fatalf("expected only p2 left, got %+v", items)
	}

	// removing an absent pair is a no-op
	if err := s.RemoveFromCart(ctx, "s1", "missing"); err != nil {
		t.Fatalf("RemoveFromCart on absent pair: %v", err)
	}
}

func TestClearCartLeavesOtherSessions(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.AddToCart(ctx, newCartItem("s1", "p1", 1)); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if _, err := s.AddToCart(ctx, newCartItem("s1", "p2", 1)); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if _, err := s.AddToCart(ctx, newCartItem("s2", "p1", 3)); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}

	if err := s.ClearCart(ctx, "s1"); err != nil {
		t.Fatalf("ClearCart error: %v", err)
	}

	items, err := s.ListCartItems(ctx, "s1")
	if err != nil {
		t.Fatalf("ListCartItems error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart for s1, got %d items", len(items))
	}

	other, err := s.ListCartItems(ctx, "s2")
	if err != nil {
		t.Fatalf("ListCartItems error: %v", err)
	}
	if len(other) != 1 || other[0].Quantity != 3 {
		t.Fatalf("expected s2 cart untouched, got %+v", other)
	}

	if err := s.ClearCart(ctx, "empty-session"); err != nil {
		t.Fatalf("ClearCart on empty session: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.GetService(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetProduct(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetAppointment(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetOrder(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetUserByUsername(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatusUnconstrained(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	appt := models.Appointment{
		ID:        uuid.NewString(),
		FirstName: "Jane",
		LastName:  "Mwangi",
		Status:    models.AppointmentStatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.CreateAppointment(ctx, appt); err != nil {
		t.Fatalf("CreateAppointment error: %v", err)
	}

	updated, err := s.UpdateAppointmentStatus(ctx, appt.ID, "confirmed-by-phone")
	if err != nil {
		t.Fatalf("UpdateAppointmentStatus error: %v", err)
	}
	if updated.Status != "confirmed-by-phone" {
		t.Fatalf("expected arbitrary status to stick, got %q", updated.Status)
	}

	if _, err := s.UpdateAppointmentStatus(ctx, "missing", "x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
