package models

import "testing"

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "empty", value: "", want: false},
		{name: "whitespace", value: "   ", want: false},
		{name: "missing_hash", value: "AABBCC", want: false},
		{name: "short_hex", value: "#ABC", want: false},
		{name: "long_hex", value: "#AABBCCDD", want: false},
		{name: "invalid_char", value: "#AABBCG", want: false},
		{name: "lowercase_hex", value: "#aabbcc", want: true},
		{name: "uppercase_hex", value: "#AABBCC", want: true},
		{name: "trimmed_hex", value: "  #AABBCC  ", want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsHexColor(test.value); got != test.want {
				t.Fatalf("IsHexColor(%q) = %t, want %t", test.value, got, test.want)
			}
		})
	}
}

func TestThemeMerge(t *testing.T) {
	theme := Theme{
		HotelName:    "HOTEL POLAR STAR",
		BarColor:     " #003366 ",
		HeadingColor: "orange",
	}.Merge(DefaultTheme())

	if theme.HotelName != "HOTEL POLAR STAR" {
		t.Fatalf("expected hotel name to be kept, got %q", theme.HotelName)
	}
	if theme.BarColor != "#003366" {
		t.Fatalf("expected trimmed bar color, got %q", theme.BarColor)
	}
	if theme.HeadingColor != defaultThemeHeading {
		t.Fatalf("expected invalid heading color to fall back, got %q", theme.HeadingColor)
	}
	if theme.BackgroundColor != defaultThemeBackground {
		t.Fatalf("expected default background, got %q", theme.BackgroundColor)
	}
}

func TestReadableTextColor(t *testing.T) {
	tests := []struct {
		background string
		want       string
	}{
		{background: "#000000", want: lightTextColor},
		{background: "#FFFFFF", want: darkTextColor},
		{background: "#003366", want: lightTextColor},
		{background: defaultThemeBar, want: darkTextColor},
	}

	for _, test := range tests {
		got, ratio, err := ReadableTextColor(test.background)
		if err != nil {
			t.Fatalf("ReadableTextColor(%q): %v", test.background, err)
		}
		if got != test.want {
			t.Fatalf("ReadableTextColor(%q) = %s (%.2f), want %s", test.background, got, ratio, test.want)
		}
	}

	if _, _, err := ReadableTextColor("nope"); err == nil {
		t.Fatalf("expected error for invalid color")
	}
}
