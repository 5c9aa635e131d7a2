package geoip

import "testing"

func TestLookupCountry_Uninitialized(t *testing.T) {
	g := NewLookup()
	if got := g.LookupCountry("8.8.8.8"); got != "" {
		t.Errorf("uninitialized lookup = %q, want empty", got)
	}
}

func TestLookupCountry_DisabledWithoutDatabase(t *testing.T) {
	g := NewLookup()
	if err := g.Init(""); err != nil {
		t.Fatalf("Init with empty path: %v", err)
	}
	if g.IsEnabled() {
		t.Error("lookup enabled without a database")
	}
	if got := g.LookupCountry("8.8.8.8"); got != "" {
		t.Errorf("disabled lookup = %q, want empty", got)
	}
}

func TestLookupCountry_PrivateAndLoopback(t *testing.T) {
	g := NewLookup()
	_ = g.Init("")

	local := []string{"10.1.2.3", "172.16.0.1", "192.168.1.20", "127.0.0.1", "fe80::1"}
	for _, ip := range local {
		if got := g.LookupCountry(ip); got != "LOCAL" {
			t.Errorf("LookupCountry(%q) = %q, want LOCAL", ip, got)
		}
	}
}

func TestLookupCountry_InvalidIP(t *testing.T) {
	g := NewLookup()
	_ = g.Init("")

	if got := g.LookupCountry("not-an-ip"); got != "" {
		t.Errorf("invalid ip = %q, want empty", got)
	}
}

func TestInit_MissingDatabase(t *testing.T) {
	g := NewLookup()
	if err := g.Init("/nonexistent/GeoLite2-Country.mmdb"); err == nil {
		t.Error("Init with missing database succeeded")
	}
	if g.IsEnabled() {
		t.Error("lookup enabled after failed init")
	}
}

func TestCountryName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"SA", "Saudi Arabia"},
		{"AE", "United Arab Emirates"},
		{"LOCAL", "Local Network"},
		{"", "Unknown"},
		{"ZZ", "ZZ"}, // unknown codes fall through
	}
	for _, tt := range tests {
		if got := CountryName(tt.code); got != tt.want {
			t.Errorf("CountryName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
