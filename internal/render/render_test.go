package render

import (
	"io/fs"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sufra-dev/sufra/web"
)

func truncateFunc(t *testing.T) func(string, int) string {
	t.Helper()
	r := &Renderer{}
	fn, ok := r.templateFuncs()["truncate"].(func(string, int) string)
	if !ok {
		t.Fatal("truncate missing from the template func map")
	}
	return fn
}

func TestTruncate(t *testing.T) {
	truncate := truncateFunc(t)

	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short unchanged", "hummus", 120, "hummus"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"long gets ellipsis", "abcdefgh", 5, "abcde..."},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncate_CountsRunes(t *testing.T) {
	truncate := truncateFunc(t)

	// Ten Arabic characters are twenty bytes; a byte-based cut at five
	// would land mid-character.
	in := strings.Repeat("ش", 10)
	got := truncate(in, 5)

	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("ش", 5) + "..."; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}
	if got := truncate(in, 10); got != in {
		t.Errorf("string at the rune limit was cut: %q", got)
	}
}

func TestNew_ParsesAllTemplates(t *testing.T) {
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	r, err := New(Config{TemplatesFS: templatesFS})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, name := range []string{"menu/page", "owner/editor", "owner/login", "owner/gallery"} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %s not parsed", name)
		}
	}
}
