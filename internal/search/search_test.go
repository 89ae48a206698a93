// internal/search/search_test.go
//
// Unit-tests for highlighting, snippet windows, and the search service.

package search

import (
	"context"
	"strings"
	"testing"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
)

func TestHighlight_WrapsMatches(t *testing.T) {
	got := string(Highlight("Go and more go", "go"))
	want := "<mark>Go</mark> and more <mark>go</mark>"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlight_EscapesNonMatchText(t *testing.T) {
	got := string(Highlight(`<b>Go</b>`, "go"))
	if strings.Contains(got, "<b>") {
		t.Errorf("markup leaked: %q", got)
	}
	if !strings.Contains(got, "<mark>Go</mark>") {
		t.Errorf("match not wrapped: %q", got)
	}
}

func TestHighlight_MetacharactersAreLiteral(t *testing.T) {
	// "c++" is not a regex; both occurrences must highlight.
	got := string(Highlight("I like c++ and C++", "c++"))
	if strings.Count(got, "<mark>") != 2 {
		t.Errorf("literal metacharacter matching broken: %q", got)
	}
}

func TestHighlight_LengthChangingFoldKeepsOffsets(t *testing.T) {
	// 'İ' (U+0130) lowercases to a shorter byte sequence, so offsets
	// computed on a lowered copy would shift; the match must still land
	// exactly on the original runes.
	got := string(Highlight("İstanbul welcomes you", "welcomes"))
	want := "İstanbul <mark>welcomes</mark> you"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlight_FoldedMatchWrapsOriginalRunes(t *testing.T) {
	// The dotted capital itself matches its fold without splitting the
	// rune.
	got := string(Highlight("İstanbul", "istanbul"))
	want := "<mark>İstanbul</mark>"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestSnippet_CentersWindow(t *testing.T) {
	long := strings.Repeat("a", 200) + "NEEDLE" + strings.Repeat("b", 200)
	got := Snippet(long, "needle")
	if !strings.HasPrefix(got, "…") || !strings.HasSuffix(got, "…") {
		t.Errorf("expected both edges clipped: %q", got)
	}
	if !strings.Contains(got, "NEEDLE") {
		t.Errorf("match fell outside the window: %q", got)
	}
	if n := len([]rune(got)); n > 2*SnippetRadius+len("NEEDLE")+2 {
		t.Errorf("window too wide: %d runes", n)
	}
}

func TestSnippet_ShortTextUntouched(t *testing.T) {
	if got := Snippet("short text", "text"); got != "short text" {
		t.Errorf("Snippet = %q", got)
	}
}

func TestSnippet_NoMatchKeepsHead(t *testing.T) {
	long := strings.Repeat("x", 300)
	got := Snippet(long, "absent")
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected tail clipped: %q", got)
	}
}

type fakeSearcher struct {
	hits []store.SearchHit
}

func (f fakeSearcher) SearchContent(_ context.Context, _ string, _ int) ([]store.SearchHit, error) {
	return f.hits, nil
}

func TestService_SingleMatchYieldsMarkedSnippet(t *testing.T) {
	svc := New(fakeSearcher{hits: []store.SearchHit{{
		PageName:    "Home",
		PageLink:    "home",
		SectionName: "hero",
		ContentType: "title",
		Content:     "<p>Welcome to my portfolio</p>",
	}}})

	res, err := svc.Search(context.Background(), "portfolio")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("results = %d, want 1", len(res))
	}
	if !strings.Contains(res[0].Snippet, "<mark>portfolio</mark>") {
		t.Errorf("snippet = %q, want a <mark>-wrapped match", res[0].Snippet)
	}
	if strings.Contains(res[0].Snippet, "<p>") {
		t.Errorf("rich-text markup leaked into snippet: %q", res[0].Snippet)
	}
}
