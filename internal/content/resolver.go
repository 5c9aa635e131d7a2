// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content resolves bilingual menu text for a display locale:
// which language field to show, which text direction to use, and how to
// format prices so numeric runs stay left-to-right inside RTL text.
package content

import (
	"database/sql"
	"strconv"

	"github.com/sufra-dev/sufra/internal/model"
)

// Bidi isolate characters wrapping numeric/currency runs so they render
// left-to-right regardless of the surrounding paragraph direction.
const (
	ltrIsolate   = "⁦" // LEFT-TO-RIGHT ISOLATE
	isolateClose = "⁩" // POP DIRECTIONAL ISOLATE
)

// ResolveName picks the display name for a locale. Arabic locale prefers
// the Arabic field and falls back to English; English is symmetric.
// Never returns empty when either field is non-empty.
func ResolveName(locale, nameAr, nameEn string) string {
	if locale == model.LocaleArabic {
		if nameAr != "" {
			return nameAr
		}
		return nameEn
	}
	if nameEn != "" {
		return nameEn
	}
	return nameAr
}

// SecondaryName returns the other language's name, or "" when it would
// duplicate the primary or is absent.
func SecondaryName(locale, nameAr, nameEn string) string {
	primary := ResolveName(locale, nameAr, nameEn)
	if locale == model.LocaleArabic {
		if nameEn != "" && nameEn != primary {
			return nameEn
		}
		return ""
	}
	if nameAr != "" && nameAr != primary {
		return nameAr
	}
	return ""
}

// ResolveDescription applies the same preference rule to nullable
// descriptions. An absent description is valid and resolves to nil.
func ResolveDescription(locale string, descAr, descEn sql.NullString) *string {
	var preferred, fallback sql.NullString
	if locale == model.LocaleArabic {
		preferred, fallback = descAr, descEn
	} else {
		preferred, fallback = descEn, descAr
	}
	if preferred.Valid && preferred.String != "" {
		s := preferred.String
		return &s
	}
	if fallback.Valid && fallback.String != "" {
		s := fallback.String
		return &s
	}
	return nil
}

// Direction returns the text direction for a locale.
func Direction(locale string) string {
	if locale == model.LocaleArabic {
		return model.DirectionRTL
	}
	return model.DirectionLTR
}

// FormatAmount renders a price amount without trailing zeros ("18", "17.5").
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// FormatPrice renders "18 SAR" wrapped in an LTR isolate so the run keeps
// its order inside RTL containers.
func FormatPrice(amount float64, currency string) string {
	return ltrIsolate + FormatAmount(amount) + " " + currency + isolateClose
}

// FormatDelta renders a signed variant delta ("+7", "-3") in an LTR isolate.
func FormatDelta(delta float64) string {
	s := FormatAmount(delta)
	if delta >= 0 {
		s = "+" + s
	}
	return ltrIsolate + s + isolateClose
}
