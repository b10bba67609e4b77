package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
)

func withAdminKey(req *http.Request) {
	req.Header.Set("X-Admin-Key", testAdminKey)
}

func accessCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "lenox_access" && c.Value != "" {
			return c
		}
	}
	t.Fatal("expected lenox_access cookie")
	return nil
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "lenox_refresh" && c.Value != "" {
			return c
		}
	}
	t.Fatal("expected lenox_refresh cookie")
	return nil
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/admin/appointments", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/admin/appointments", "", func(req *http.Request) {
		req.Header.Set("X-Admin-Key", "wrong")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/admin/appointments", "", withAdminKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin key: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestAdminLoginAndCookieAuth(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/admin/login",
		`{"username":"`+testAdminUser+`","password":"`+testAdminPassword+`"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	access := accessCookie(t, rec)
	refresh := refreshCookie(t, rec)

	rec = doJSON(t, r, http.MethodGet, "/api/admin/orders", "", func(req *http.Request) {
		req.AddCookie(access)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("cookie auth: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/api/admin/refresh", "", func(req *http.Request) {
		req.AddCookie(refresh)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	accessCookie(t, rec)

	rec = doJSON(t, r, http.MethodPost, "/api/admin/refresh", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("refresh without cookie: expected 401, got %d", rec.Code)
	}
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/orders",
		`{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","total":"100","items":"[]"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed order: expected 201, got %d", rec.Code)
	}
	var order models.Order
	decodeBody(t, rec, &order)

	rec = doJSON(t, r, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status",
		`{"status":"delivered"}`, withAdminKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var updated models.Order
	decodeBody(t, rec, &updated)
	if updated.Status != "delivered" {
		t.Fatalf("expected status delivered, got %q", updated.Status)
	}

	rec = doJSON(t, r, http.MethodPatch, "/api/admin/orders/missing/status",
		`{"status":"delivered"}`, withAdminKey)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing id: expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status",
		`{"status":""}`, withAdminKey)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty status: expected 400, got %d", rec.Code)
	}
}

func TestAdminCreateProductVisibleInCatalog(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/admin/products",
		`{"name":"Zinc Lozenges","description":"Immune support lozenges","price":"450.00","category":"Supplements","targetAge":"Adults"}`,
		withAdminKey)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created models.Product
	decodeBody(t, rec, &created)
	if !created.InStock {
		t.Fatal("expected inStock to default to true")
	}

	rec = doJSON(t, r, http.MethodGet, "/api/products?search=zinc+lozenges", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", rec.Code)
	}
	var products []models.Product
	decodeBody(t, rec, &products)
	if len(products) != 1 || products[0].ID != created.ID {
		t.Fatalf("expected created product in catalog, got %+v", products)
	}
}

func TestAdminRegister(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/admin/register",
		`{"username":"Pharmacist","password":"longenough1","setupKey":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong setup key: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/admin/register",
		`{"username":"Pharmacist","password":"longenough1","setupKey":"`+testSetupKey+`"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var user models.User
	decodeBody(t, rec, &user)
	if user.Username != "pharmacist" {
		t.Fatalf("expected lowercased username, got %q", user.Username)
	}
	if user.Role != models.UserRoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/admin/register",
		`{"username":"pharmacist","password":"longenough1","setupKey":"`+testSetupKey+`"}`, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", rec.Code)
	}

	// registered credentials work for login
	rec = doJSON(t, r, http.MethodPost, "/api/admin/login",
		`{"username":"pharmacist","password":"longenough1"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login as registered user: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}
