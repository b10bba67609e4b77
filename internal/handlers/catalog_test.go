package handlers

import (
	"net/http"
	"testing"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
)

func TestGetServices(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/services", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var services []models.Service
	decodeBody(t, rec, &services)
	if len(services) != 6 {
		t.Fatalf("expected 6 services, got %d", len(services))
	}

	rec = doJSON(t, r, http.MethodGet, "/api/services/"+services[0].ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get by id: expected 200, got %d", rec.Code)
	}
	var svc models.Service
	decodeBody(t, rec, &svc)
	if svc.Name != services[0].Name {
		t.Fatalf("get by id: expected %q, got %q", services[0].Name, svc.Name)
	}
}

func TestGetServiceNotFound(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/services/does-not-exist", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "service not found" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestGetProductsFiltering(t *testing.T) {
	_, r := newTestRouter(t)

	cases := []struct {
		name  string
		query string
		count int
	}{
		{"no filters", "", 25},
		{"sentinel values disable filtering", "?category=All+Categories&targetAge=All+Ages", 25},
		{"by category", "?category=Prescription", 5},
		{"by target age", "?targetAge=Children", 5},
		{"case-insensitive search", "?search=PARACETAMOL", 2},
		{"combined", "?category=Baby+Care&targetAge=Children&search=paracetamol", 1},
		{"no match", "?category=Prescription&search=thermometer", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodGet, "/api/products"+tc.query, "", nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var products []models.Product
			decodeBody(t, rec, &products)
			if len(products) != tc.count {
				t.Fatalf("expected %d products, got %d", tc.count, len(products))
			}
		})
	}
}

func TestGetProductNotFound(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/products/does-not-exist", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "product not found" {
		t.Fatalf("unexpected error message %q", msg)
	}
}
