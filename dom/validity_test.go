package dom

import (
	"testing"

	"github.com/veryhappydom/happydom/events"
)

func TestValidityRequiredFieldMissing(t *testing.T) {
	el := NewElement("input")
	el.SetAttr("required", "")
	el.SetAttr("type", "text")

	v := el.Validity()
	if !v.ValueMissing || v.Valid() {
		t.Fatalf("Validity() = %+v, want ValueMissing", v)
	}
}

func TestValidityEmailTypeMismatch(t *testing.T) {
	el := NewElement("input")
	el.SetAttr("type", "email")
	el.SetAttr("value", "not-an-email")

	if el.CheckValidity() {
		t.Fatal("CheckValidity() = true, want false for malformed email")
	}
}

func TestValidityCustomErrorCombinesWithOtherChecks(t *testing.T) {
	el := NewElement("input")
	el.SetAttr("type", "email")
	el.SetAttr("value", "ok@example.com")
	el.SetCustomValidity("server rejected this value")

	v := el.Validity()
	if !v.CustomError || v.Valid() {
		t.Fatalf("Validity() = %+v, want CustomError", v)
	}
	if v.ValueMissing || v.TypeMismatch {
		t.Fatalf("Validity() = %+v, want no other flags for a well-formed value", v)
	}
}

func TestValidityCustomErrorDoesNotSuppressOtherFlags(t *testing.T) {
	el := NewElement("input")
	el.SetAttr("required", "")
	el.SetCustomValidity("server rejected this value")

	v := el.Validity()
	if !v.CustomError || !v.ValueMissing || v.Valid() {
		t.Fatalf("Validity() = %+v, want both CustomError and ValueMissing", v)
	}
}

func TestValidityNonFormControlAlwaysValid(t *testing.T) {
	el := NewElement("div")
	el.SetAttr("required", "")
	if !el.CheckValidity() {
		t.Fatal("non-form-control element should always be valid")
	}
}

func TestReportValidityDispatchesInvalidEvent(t *testing.T) {
	el := NewElement("input")
	el.SetAttr("required", "")

	fired := false
	el.Listeners().AddEventListener("invalid", func(ev *events.Event) {
		fired = true
		if ev.Bubbles {
			t.Fatal("invalid event must not bubble")
		}
	}, false)

	if el.ReportValidity() {
		t.Fatal("ReportValidity() = true, want false")
	}
	if !fired {
		t.Fatal("expected the invalid event to fire")
	}
}
