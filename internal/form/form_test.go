// internal/form/form_test.go
//
// Unit-tests for the form registry, CSRF tokens, and validation.

package form

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func registerTestForm(t *testing.T) {
	t.Helper()
	Register(&FormDef{
		ID: "test",
		Fields: []FieldDef{
			{Name: "name", Label: "Name", Type: "text", Required: true, MinLength: 2},
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "note", Label: "Note", Type: "textarea"},
		},
	})
}

// validPost builds a submission that passes the form-level checks.
func validPost(t *testing.T) url.Values {
	t.Helper()
	tok, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	v := url.Values{}
	v.Set("csrf_token", tok)
	v.Set("render_ts", fmt.Sprint(time.Now().Add(-10*time.Second).UnixMicro()))
	return v
}

func TestCSRFRoundTrip(t *testing.T) {
	tok, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if !VerifyToken(tok) {
		t.Error("freshly generated token failed verification")
	}
	if VerifyToken("not-a-token") {
		t.Error("garbage token verified")
	}
	if VerifyToken(tok + "x") {
		t.Error("tampered token verified")
	}
}

func TestValidateForm_Success(t *testing.T) {
	registerTestForm(t)

	post := validPost(t)
	post.Set("name", "  Ada  ")
	post.Set("email", "ada@example.com")

	clean, errs := ValidateForm("test", post)
	if len(errs) != 0 {
		t.Fatalf("errs = %+v", errs)
	}
	if clean["name"] != "Ada" {
		t.Errorf("name = %q, want trimmed Ada", clean["name"])
	}
	if clean["email"] != "ada@example.com" {
		t.Errorf("email = %q", clean["email"])
	}
}

func TestValidateForm_FieldErrors(t *testing.T) {
	registerTestForm(t)

	post := validPost(t)
	post.Set("name", "A") // below minlength
	post.Set("email", "not-an-email")

	clean, errs := ValidateForm("test", post)
	if clean != nil {
		t.Errorf("clean = %+v, want nil on validation failure", clean)
	}
	if len(errs) != 2 {
		t.Fatalf("errs = %+v, want 2 field errors", errs)
	}
	for _, e := range errs {
		if e.Name != "name" && e.Name != "email" {
			t.Errorf("unexpected error field %q", e.Name)
		}
	}
}

func TestValidateForm_RejectsBadCSRF(t *testing.T) {
	registerTestForm(t)

	post := url.Values{}
	post.Set("csrf_token", "bogus")
	post.Set("name", "Ada")
	post.Set("email", "ada@example.com")

	_, errs := ValidateForm("test", post)
	if len(errs) != 1 || errs[0].Name != "" {
		t.Fatalf("errs = %+v, want one form-level error", errs)
	}
}

func TestValidateForm_RejectsInstantSubmit(t *testing.T) {
	registerTestForm(t)

	tok, _ := GenerateToken()
	post := url.Values{}
	post.Set("csrf_token", tok)
	post.Set("render_ts", fmt.Sprint(time.Now().UnixMicro()))
	post.Set("name", "Ada")
	post.Set("email", "ada@example.com")

	_, errs := ValidateForm("test", post)
	if len(errs) != 1 || errs[0].Name != "" {
		t.Fatalf("errs = %+v, want timing rejection", errs)
	}
}

func TestValidateForm_EscapesText(t *testing.T) {
	registerTestForm(t)

	post := validPost(t)
	post.Set("name", "Ada")
	post.Set("email", "ada@example.com")
	post.Set("note", `<script>alert(1)</script>`)

	clean, errs := ValidateForm("test", post)
	if len(errs) != 0 {
		t.Fatalf("errs = %+v", errs)
	}
	if clean["note"] == `<script>alert(1)</script>` {
		t.Error("raw markup survived sanitisation")
	}
}

func TestLoadFormDef_Structural(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		t.Helper()
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		return p
	}

	good := write("good.yaml", `
id: demo
fields:
  - name: a
    label: A
    type: text
`)
	if _, err := LoadFormDef(good); err != nil {
		t.Errorf("valid definition rejected: %v", err)
	}

	dupe := write("dupe.yaml", `
id: demo
fields:
  - name: a
    label: A
    type: text
  - name: a
    label: A2
    type: text
`)
	if _, err := LoadFormDef(dupe); err == nil {
		t.Error("duplicate field names accepted")
	}

	noID := write("noid.yaml", `
fields:
  - name: a
    label: A
    type: text
`)
	if _, err := LoadFormDef(noID); err == nil {
		t.Error("missing id accepted")
	}
}
