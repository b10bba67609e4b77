package validation

import "testing"

func TestCustomTags(t *testing.T) {
	v := New()

	type form struct {
		Date    string `validate:"omitempty,date"`
		Clock   string `validate:"omitempty,clock"`
		Phone   string `validate:"omitempty,phone"`
		Decimal string `validate:"omitempty,decimal"`
	}

	valid := []form{
		{},
		{Date: "2026-09-15"},
		{Clock: "09:05"},
		{Clock: "23:59"},
		{Phone: "0712345678"},
		{Phone: "+254712345678"},
		{Decimal: "120"},
		{Decimal: "120.5"},
		{Decimal: "120.50"},
	}
	for _, f := range valid {
		if err := v.Struct(f); err != nil {
			t.Fatalf("expected %+v to pass, got %v", f, err)
		}
	}

	invalid := []form{
		{Date: "15/09/2026"},
		{Date: "2026-13-01"},
		{Clock: "2pm"},
		{Clock: "25:00"},
		{Phone: "12345"},
		{Phone: "+1-202-555"},
		{Decimal: "120.505"},
		{Decimal: "12,50"},
		{Decimal: "-5"},
	}
	for _, f := range invalid {
		if err := v.Struct(f); err == nil {
			t.Fatalf("expected %+v to fail", f)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	v := New()

	type form struct {
		Email string `validate:"required,email"`
	}

	err := v.Struct(form{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	errs := v.ValidationErrors(err)
	if len(errs) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(errs))
	}
	if errs[0].Field() != "Email" || errs[0].Tag() != "required" {
		t.Fatalf("unexpected field error %v", errs[0])
	}

	if got := v.ValidationErrors(nil); got != nil {
		t.Fatalf("expected nil for nil error, got %v", got)
	}
}
