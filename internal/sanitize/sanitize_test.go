// internal/sanitize/sanitize_test.go

package sanitize

import (
	"strings"
	"testing"
)

func TestRichText_StripsScripts(t *testing.T) {
	in := `<p>Hello <script>alert(1)</script><b onclick="x()">world</b></p>`
	out := string(RichText(in))
	if strings.Contains(out, "script") || strings.Contains(out, "onclick") {
		t.Errorf("unsafe markup survived: %q", out)
	}
	if !strings.Contains(out, "<b>world</b>") {
		t.Errorf("allowed formatting stripped: %q", out)
	}
}

func TestRichText_KeepsBasicFormatting(t *testing.T) {
	in := `<h2>Title</h2><ul><li>one</li></ul>`
	out := string(RichText(in))
	if !strings.Contains(out, "<h2>Title</h2>") || !strings.Contains(out, "<li>one</li>") {
		t.Errorf("formatting lost: %q", out)
	}
}

func TestPlain(t *testing.T) {
	if got := Plain(`<b>bold</b> text`); got != "bold text" {
		t.Errorf("Plain = %q", got)
	}
}
