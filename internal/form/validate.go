// internal/form/validate.go
//
// Server-side validation and sanitisation of posted form data.
//
// Context
// -------
// The rendered form carries a CSRF token and a render timestamp.  On
// POST this file verifies the submission — CSRF, timing, required
// fields, type constraints, regex patterns, and length limits — and
// returns a sanitised map the handler can trust.  Field errors are
// collected per field so templates and JSON responses can point at the
// exact inputs; a non-empty error slice blocks the write entirely.
package form

import (
	"fmt"
	"html"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrorField describes a single validation failure.
type ErrorField struct {
	Name    string `json:"name"`    // field name; "" for form-level errors
	Message string `json:"message"` // user-facing message
}

// ValidateForm validates posted data for formID.  It returns sanitised
// values and any field errors; a non-empty error slice means no write
// may happen.
func ValidateForm(formID string, posted url.Values) (map[string]any, []ErrorField) {
	fd, ok := GetFormDef(formID)
	if !ok {
		return nil, []ErrorField{{Name: "", Message: "Unknown form."}}
	}

	var errs []ErrorField
	clean := make(map[string]any)

	// Form-level checks: CSRF + render timestamp.
	if tok := posted.Get("csrf_token"); tok == "" || !VerifyToken(tok) {
		return nil, []ErrorField{{"", "Security token invalid.  Please refresh and try again."}}
	}
	if msg := checkTiming(posted.Get("render_ts")); msg != "" {
		return nil, []ErrorField{{"", msg}}
	}

	// Per-field validation.
	for _, f := range fd.Fields {
		raw, present := posted[f.Name]
		value := ""
		if present && len(raw) > 0 {
			value = strings.TrimSpace(raw[0])
		}

		if f.Required && value == "" {
			errs = append(errs, ErrorField{f.Name, requiredMsg(&f)})
			continue
		}
		if value == "" {
			continue
		}

		val, perr := validateAndSanitize(&f, value)
		if perr != "" {
			errs = append(errs, ErrorField{f.Name, perr})
			continue
		}
		clean[f.Name] = val
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return clean, nil
}

// checkTiming rejects suspiciously fast (bot) and stale submissions.
func checkTiming(tsRaw string) string {
	if tsRaw == "" {
		return "Timestamp missing.  Please reload the page."
	}
	ts, err := strconv.ParseInt(tsRaw, 10, 64)
	if err != nil {
		return "Bad timestamp.  Please retry."
	}
	delta := time.Since(time.UnixMicro(ts))
	switch {
	case delta < 2*time.Second:
		return "Form submitted too quickly.  Please enter the fields manually."
	case delta > 30*time.Minute:
		return "Form expired.  Please reload and submit again."
	default:
		return ""
	}
}

func validateAndSanitize(f *FieldDef, val string) (any, string) {
	switch f.Type {
	case "text", "textarea":
		if msg := lengthCheck(f, val); msg != "" {
			return nil, msg
		}
		if f.Pattern != "" && !regexMatch(f.Pattern, val) {
			return nil, patternMsg(f)
		}
		return html.EscapeString(val), ""

	case "email":
		if msg := lengthCheck(f, val); msg != "" {
			return nil, msg
		}
		if _, err := mail.ParseAddress(val); err != nil {
			return nil, invalidMsg(f)
		}
		return val, ""

	case "number":
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, invalidMsg(f)
		}
		return n, ""

	default:
		return nil, fmt.Sprintf("Unsupported field type %q.", f.Type)
	}
}

// lengthCheck validates minlength / maxlength rules.
func lengthCheck(f *FieldDef, s string) string {
	n := len(s)
	if f.MinLength > 0 && n < f.MinLength {
		return fmt.Sprintf("Must be at least %d characters.", f.MinLength)
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		return fmt.Sprintf("Must be less than %d characters.", f.MaxLength)
	}
	return ""
}

func regexMatch(pattern, s string) bool {
	re, _ := regexp.Compile(pattern) // pattern pre-validated at load
	return re.MatchString(s)
}

func requiredMsg(f *FieldDef) string {
	if f.ErrorMsg != "" {
		return f.ErrorMsg
	}
	return "This field is required."
}

func invalidMsg(f *FieldDef) string {
	if f.ErrorMsg != "" {
		return f.ErrorMsg
	}
	return "Invalid input."
}

func patternMsg(f *FieldDef) string {
	if f.ErrorMsg != "" {
		return f.ErrorMsg
	}
	return "Input does not match required format."
}
