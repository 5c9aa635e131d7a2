package content

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/sufra-dev/sufra/internal/model"
)

func TestResolveName(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		nameAr string
		nameEn string
		want   string
	}{
		{"arabic prefers arabic", model.LocaleArabic, "حمص", "Hummus", "حمص"},
		{"arabic falls back to english", model.LocaleArabic, "", "Hummus", "Hummus"},
		{"english prefers english", model.LocaleEnglish, "حمص", "Hummus", "Hummus"},
		{"english falls back to arabic", model.LocaleEnglish, "حمص", "", "حمص"},
		{"both empty", model.LocaleEnglish, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveName(tt.locale, tt.nameAr, tt.nameEn)
			if got != tt.want {
				t.Errorf("ResolveName(%q, %q, %q) = %q, want %q", tt.locale, tt.nameAr, tt.nameEn, got, tt.want)
			}
		})
	}
}

func TestResolveName_NeverEmptyWhenOneFieldSet(t *testing.T) {
	for _, locale := range []string{model.LocaleArabic, model.LocaleEnglish} {
		if got := ResolveName(locale, "حمص", ""); got == "" {
			t.Errorf("locale %s: empty result with Arabic field set", locale)
		}
		if got := ResolveName(locale, "", "Hummus"); got == "" {
			t.Errorf("locale %s: empty result with English field set", locale)
		}
	}
}

func TestSecondaryName(t *testing.T) {
	// Both fields present: secondary is the other language
	if got := SecondaryName(model.LocaleArabic, "حمص", "Hummus"); got != "Hummus" {
		t.Errorf("expected Hummus, got %q", got)
	}
	if got := SecondaryName(model.LocaleEnglish, "حمص", "Hummus"); got != "حمص" {
		t.Errorf("expected arabic name, got %q", got)
	}

	// Single field: primary already shows it, secondary must be empty
	if got := SecondaryName(model.LocaleArabic, "", "Hummus"); got != "" {
		t.Errorf("expected empty secondary when primary falls back, got %q", got)
	}
	if got := SecondaryName(model.LocaleEnglish, "حمص", ""); got != "" {
		t.Errorf("expected empty secondary when primary falls back, got %q", got)
	}
}

func TestResolveDescription(t *testing.T) {
	ar := sql.NullString{String: "وصف", Valid: true}
	en := sql.NullString{String: "Description", Valid: true}
	empty := sql.NullString{}

	if got := ResolveDescription(model.LocaleArabic, ar, en); got == nil || *got != "وصف" {
		t.Errorf("expected arabic description, got %v", got)
	}
	if got := ResolveDescription(model.LocaleArabic, empty, en); got == nil || *got != "Description" {
		t.Errorf("expected english fallback, got %v", got)
	}
	if got := ResolveDescription(model.LocaleEnglish, ar, empty); got == nil || *got != "وصف" {
		t.Errorf("expected arabic fallback, got %v", got)
	}
	if got := ResolveDescription(model.LocaleEnglish, empty, empty); got != nil {
		t.Errorf("expected nil for absent descriptions, got %v", got)
	}

	// Valid but empty string counts as absent
	blank := sql.NullString{String: "", Valid: true}
	if got := ResolveDescription(model.LocaleEnglish, blank, blank); got != nil {
		t.Errorf("expected nil for blank descriptions, got %v", got)
	}
}

func TestDirection(t *testing.T) {
	if got := Direction(model.LocaleArabic); got != model.DirectionRTL {
		t.Errorf("expected rtl for arabic, got %q", got)
	}
	if got := Direction(model.LocaleEnglish); got != model.DirectionLTR {
		t.Errorf("expected ltr for english, got %q", got)
	}
	if got := Direction("fr"); got != model.DirectionLTR {
		t.Errorf("expected ltr for unknown locale, got %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{18, "18"},
		{17.5, "17.5"},
		{0, "0"},
		{78.25, "78.25"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPrice_BidiIsolates(t *testing.T) {
	got := FormatPrice(18, "SAR")

	if !strings.HasPrefix(got, ltrIsolate) {
		t.Error("price does not start with LTR isolate")
	}
	if !strings.HasSuffix(got, isolateClose) {
		t.Error("price does not end with pop directional isolate")
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(got, ltrIsolate), isolateClose)
	if inner != "18 SAR" {
		t.Errorf("expected inner text %q, got %q", "18 SAR", inner)
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		delta float64
		inner string
	}{
		{7, "+7"},
		{-3, "-3"},
		{0, "+0"},
		{2.5, "+2.5"},
	}

	for _, tt := range tests {
		got := FormatDelta(tt.delta)
		inner := strings.TrimSuffix(strings.TrimPrefix(got, ltrIsolate), isolateClose)
		if inner != tt.inner {
			t.Errorf("FormatDelta(%v) inner = %q, want %q", tt.delta, inner, tt.inner)
		}
		if len(got) == len(inner) {
			t.Errorf("FormatDelta(%v) missing bidi isolates", tt.delta)
		}
	}
}
