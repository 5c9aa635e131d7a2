package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Bayt Al Sufra", "bayt-al-sufra"},
		{"Café Röstique", "cafe-rostique"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"Already-Slugged", "already-slugged"},
		{"Symbols!@#$%", "symbols"},
		{"multi---hyphen", "multi-hyphen"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSlugify_ArabicTransliterates(t *testing.T) {
	got := Slugify("مطعم السفرة")
	if got == "" {
		t.Fatal("arabic name slugified to empty string")
	}
	if !IsValidSlug(got) {
		t.Errorf("transliterated slug %q is not valid", got)
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"bayt-al-sufra", "menu2", "a"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "UPPER", "spa ce", "dot.com"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}
