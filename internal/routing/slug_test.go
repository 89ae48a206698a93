// internal/routing/slug_test.go
//
// Unit-tests for MakeSlug and BuildPath.

package routing

import "testing"

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Home", "home"},
		{"My Projects", "my-projects"},
		{"  Hello,   World!  ", "hello-world"},
		{"Already-kebab-case", "already-kebab-case"},
		{"Crème brûlée", "cr-me-br-l-e"},
		{"100% Done", "100-done"},
		{"!!!", "page"},
		{"", "page"},
	}
	for _, c := range cases {
		if got := MakeSlug(c.in); got != c.want {
			t.Errorf("MakeSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeSlug_Truncates(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "abcd "
	}
	got := MakeSlug(long)
	if len(got) > 100 {
		t.Fatalf("slug length = %d, want ≤ 100", len(got))
	}
	if got[len(got)-1] == '-' {
		t.Fatalf("slug %q ends in a dash after truncation", got)
	}
}

func TestBuildPath(t *testing.T) {
	cases := []struct {
		parent, slug, want string
	}{
		{"", "", "/"},
		{"", "about", "/about"},
		{"blog", "", "/blog"},
		{"blog", "post-1", "/blog/post-1"},
		{"/blog/", "/post-1/", "/blog/post-1"},
	}
	for _, c := range cases {
		if got := BuildPath(c.parent, c.slug); got != c.want {
			t.Errorf("BuildPath(%q, %q) = %q, want %q", c.parent, c.slug, got, c.want)
		}
	}
}
