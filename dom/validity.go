package dom

import (
	"regexp"
	"strconv"
	"strings"
)

// ValidityState is the derived validity record for a form-control element
// (spec.md §4.5/§4.10, C10).
type ValidityState struct {
	ValueMissing    bool
	TypeMismatch    bool
	PatternMismatch bool
	TooLong         bool
	TooShort        bool
	RangeUnderflow  bool
	RangeOverflow   bool
	CustomError     bool
}

// Valid reports the conjunction of every individual failure flag
// inverted (spec.md §4.5).
func (v ValidityState) Valid() bool {
	return !(v.ValueMissing || v.TypeMismatch || v.PatternMismatch || v.TooLong ||
		v.TooShort || v.RangeUnderflow || v.RangeOverflow || v.CustomError)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validity computes this element's current ValidityState from its
// input-control attributes and any custom-validity message set via
// SetCustomValidity. For elements that are not form controls the
// attribute-derived checks are skipped, so only CustomError can be set.
func (e *Element) Validity() ValidityState {
	var v ValidityState
	v.CustomError = e.customValidity != ""
	if !isFormControl(e.TagName) {
		return v
	}

	value := e.Attr("value")
	required := e.HasAttr("required")
	typ := strings.ToLower(e.Attr("type"))
	if typ == "" {
		typ = "text"
	}

	if required && value == "" {
		v.ValueMissing = true
	}
	if value != "" {
		switch typ {
		case "email":
			if !emailPattern.MatchString(value) {
				v.TypeMismatch = true
			}
		case "url":
			if !strings.Contains(value, "://") {
				v.TypeMismatch = true
			}
		case "number", "range":
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				v.TypeMismatch = true
			}
		}
	}
	if pattern := e.Attr("pattern"); pattern != "" && value != "" && !v.TypeMismatch {
		if re, err := regexp.Compile("^(?:" + pattern + ")$"); err == nil && !re.MatchString(value) {
			v.PatternMismatch = true
		}
	}
	if ml := e.Attr("maxlength"); ml != "" {
		if n, err := strconv.Atoi(ml); err == nil && len(value) > n {
			v.TooLong = true
		}
	}
	if ml := e.Attr("minlength"); ml != "" {
		if n, err := strconv.Atoi(ml); err == nil && value != "" && len(value) < n {
			v.TooShort = true
		}
	}
	if !v.TypeMismatch && (typ == "number" || typ == "range") && value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			if min := e.Attr("min"); min != "" {
				if m, err := strconv.ParseFloat(min, 64); err == nil && f < m {
					v.RangeUnderflow = true
				}
			}
			if max := e.Attr("max"); max != "" {
				if m, err := strconv.ParseFloat(max, 64); err == nil && f > m {
					v.RangeOverflow = true
				}
			}
		}
	}
	return v
}

// CheckValidity returns validity().valid without dispatching any event.
func (e *Element) CheckValidity() bool {
	return e.Validity().Valid()
}

// ReportValidity returns the same result as CheckValidity, additionally
// dispatching a non-bubbling, cancelable "invalid" event when the element
// is invalid (spec.md §4.5).
func (e *Element) ReportValidity() bool {
	v := e.Validity()
	if !v.Valid() {
		e.DispatchEvent(NewInvalidEvent())
	}
	return v.Valid()
}

// SetCustomValidity installs a custom-error message; a non-empty message
// forces the element invalid (with CustomError set) regardless of its
// other attributes, matching the HTML living standard's setCustomValidity.
func (e *Element) SetCustomValidity(message string) {
	e.customValidity = message
}

func isFormControl(tag string) bool {
	switch tag {
	case "input", "select", "textarea", "button", "output":
		return true
	default:
		return false
	}
}
