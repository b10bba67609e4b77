package handlers

import (
	"net/http"
	"testing"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
)

const validAppointmentBody = `{
	"firstName": "Jane",
	"lastName": "Mwangi",
	"email": "jane@example.com",
	"phone": "+254712345678",
	"serviceId": "svc-1",
	"preferredDate": "2026-09-15",
	"preferredTime": "14:30",
	"notes": "first visit"
}`

func TestCreateAppointment(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/appointments", validAppointmentBody, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var appt models.Appointment
	decodeBody(t, rec, &appt)
	if appt.ID == "" {
		t.Fatal("expected generated id")
	}
	if appt.Status != models.AppointmentStatusPending {
		t.Fatalf("expected status %q, got %q", models.AppointmentStatusPending, appt.Status)
	}
	if appt.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}
	if appt.ServiceID != "svc-1" {
		t.Fatalf("expected serviceId stored as sent, got %q", appt.ServiceID)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/appointments", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var items []models.Appointment
	decodeBody(t, rec, &items)
	if len(items) != 1 || items[0].ID != appt.ID {
		t.Fatalf("list: expected the stored appointment, got %+v", items)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	_, r := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{
			"missing email",
			`{"firstName":"Jane","lastName":"Mwangi","phone":"+254712345678","serviceId":"svc-1","preferredDate":"2026-09-15","preferredTime":"14:30"}`,
		},
		{
			"malformed email",
			`{"firstName":"Jane","lastName":"Mwangi","email":"not-an-email","phone":"+254712345678","serviceId":"svc-1","preferredDate":"2026-09-15","preferredTime":"14:30"}`,
		},
		{
			"bad date format",
			`{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","serviceId":"svc-1","preferredDate":"15/09/2026","preferredTime":"14:30"}`,
		},
		{
			"bad time format",
			`{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","serviceId":"svc-1","preferredDate":"2026-09-15","preferredTime":"2pm"}`,
		},
		{
			"bad phone",
			`{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"call me","serviceId":"svc-1","preferredDate":"2026-09-15","preferredTime":"14:30"}`,
		},
		{
			"unknown field",
			`{"firstName":"Jane","lastName":"Mwangi","email":"jane@example.com","phone":"+254712345678","serviceId":"svc-1","preferredDate":"2026-09-15","preferredTime":"14:30","urgent":true}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/appointments", tc.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
			}
		})
	}
}
