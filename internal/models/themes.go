// internal/models/themes.go
package models

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const darkTextColor = "#000000"
const lightTextColor = "#FFFFFF"
const defaultHotelName = "HOTEL NORDIC SUN"
const defaultThemeBar = "#FFB100"
const defaultThemeHeading = "#FF6600"
const defaultThemeBackground = "#C0C0C0"
const defaultThemeSurface = "#FFFFFF"
const defaultThemeText = "#333333"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// Theme is the look of the desk screen for one hotel.
type Theme struct {
	HotelName       string `json:"hotelName"`
	BarColor        string `json:"barColor"`
	HeadingColor    string `json:"headingColor"`
	BackgroundColor string `json:"backgroundColor"`
	SurfaceColor    string `json:"surfaceColor"`
	TextColor       string `json:"textColor"`
}

func DefaultTheme() Theme {
	return Theme{
		HotelName:       defaultHotelName,
		BarColor:        defaultThemeBar,
		HeadingColor:    defaultThemeHeading,
		BackgroundColor: defaultThemeBackground,
		SurfaceColor:    defaultThemeSurface,
		TextColor:       defaultThemeText,
	}
}

// Merge returns t with every empty or malformed field taken from fallback.
func (t Theme) Merge(fallback Theme) Theme {
	if strings.TrimSpace(t.HotelName) == "" {
		t.HotelName = fallback.HotelName
	}
	t.BarColor = colorOrDefault(t.BarColor, fallback.BarColor)
	t.HeadingColor = colorOrDefault(t.HeadingColor, fallback.HeadingColor)
	t.BackgroundColor = colorOrDefault(t.BackgroundColor, fallback.BackgroundColor)
	t.SurfaceColor = colorOrDefault(t.SurfaceColor, fallback.SurfaceColor)
	t.TextColor = colorOrDefault(t.TextColor, fallback.TextColor)
	return t
}

// ButtonTextColor picks black or white, whichever reads better on the bar color.
func (t Theme) ButtonTextColor() string {
	text, _, err := ReadableTextColor(t.BarColor)
	if err != nil {
		return lightTextColor
	}
	return text
}

// ReadableTextColor returns the text color with the higher contrast against
// backgroundColor, and that contrast ratio.
func ReadableTextColor(backgroundColor string) (string, float64, error) {
	bestRatio := 0.0
	bestText := ""
	for _, textColor := range []string{darkTextColor, lightTextColor} {
		ratio, err := contrastRatio(textColor, backgroundColor)
		if err != nil {
			return "", 0, err
		}
		if ratio > bestRatio {
			bestRatio = ratio
			bestText = textColor
		}
	}
	return bestText, bestRatio, nil
}

func colorOrDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if !IsHexColor(trimmed) {
		return fallback
	}
	return trimmed
}

func contrastRatio(textColor, backgroundColor string) (float64, error) {
	textL, err := relativeLuminance(textColor)
	if err != nil {
		return 0, err
	}
	backgroundL, err := relativeLuminance(backgroundColor)
	if err != nil {
		return 0, err
	}
	lightest := math.Max(textL, backgroundL)
	darkest := math.Min(textL, backgroundL)
	return (lightest + 0.05) / (darkest + 0.05), nil
}

func relativeLuminance(hexColor string) (float64, error) {
	r, g, b, err := parseHexColor(hexColor)
	if err != nil {
		return 0, err
	}

	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b), nil
}

func parseHexColor(hexColor string) (float64, float64, float64, error) {
	if !hexColorRegex.MatchString(hexColor) {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}

	value, err := strconv.ParseUint(strings.TrimPrefix(hexColor, "#"), 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}

	r := float64((value >> 16) & 0xFF)
	g := float64((value >> 8) & 0xFF)
	b := float64(value & 0xFF)

	return r / 255, g / 255, b / 255, nil
}

func srgbToLinear(value float64) float64 {
	if value <= 0.03928 {
		return value / 12.92
	}
	return math.Pow((value+0.055)/1.055, 2.4)
}
