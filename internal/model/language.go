// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Language text directions
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Locale codes supported by the menu frontend.
const (
	LocaleArabic  = "ar"
	LocaleEnglish = "en"
)

// DefaultLocale is used when no preference is known for a visitor.
const DefaultLocale = LocaleArabic

// Locale describes one of the two menu display languages.
type Locale struct {
	Code       string // ISO 639-1: ar, en
	Name       string // Arabic, English
	NativeName string // العربية, English
	Direction  string // ltr, rtl
}

// Locales lists the menu display languages in switcher order.
var Locales = []Locale{
	{Code: LocaleArabic, Name: "Arabic", NativeName: "العربية", Direction: DirectionRTL},
	{Code: LocaleEnglish, Name: "English", NativeName: "English", Direction: DirectionLTR},
}

// IsRTL returns true if the locale is right-to-left.
func (l Locale) IsRTL() bool {
	return l.Direction == DirectionRTL
}

// LocaleByCode returns the locale for a code, falling back to the default.
func LocaleByCode(code string) Locale {
	for _, l := range Locales {
		if l.Code == code {
			return l
		}
	}
	return LocaleByCode(DefaultLocale)
}

// IsSupportedLocale checks whether a code names one of the menu languages.
func IsSupportedLocale(code string) bool {
	for _, l := range Locales {
		if l.Code == code {
			return true
		}
	}
	return false
}
