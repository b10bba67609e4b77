package handlers

import (
	"net/http"
	"testing"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
)

func TestCreateOrder(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/orders",
		`{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","total":"4200.00","items":"[{\"productId\":\"prod-1\",\"quantity\":2}]"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var order models.Order
	decodeBody(t, rec, &order)
	if order.ID == "" {
		t.Fatal("expected generated id")
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected status %q, got %q", models.OrderStatusPending, order.Status)
	}
	if order.Total != "4200.00" {
		t.Fatalf("expected total stored as sent, got %q", order.Total)
	}
	if order.Items == "" {
		t.Fatal("expected items snapshot to be stored")
	}
}

func TestCreateOrderKeepsClientStatus(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/orders",
		`{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","total":"100","items":"[]","status":"paid"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var order models.Order
	decodeBody(t, rec, &order)
	if order.Status != "paid" {
		t.Fatalf("expected client status kept, got %q", order.Status)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	_, r := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing total", `{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","items":"[]"}`},
		{"total with three decimals", `{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","total":"12.345","items":"[]"}`},
		{"total is not a number", `{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","total":"free","items":"[]"}`},
		{"items is not json", `{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","total":"100","items":"not json"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/orders", tc.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
			}
		})
	}
}
