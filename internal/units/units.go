// Package units holds the pure unit and text normalizers shared by the
// extractor, the window selector and the report composers. Every function is
// total: bad input degrades to a zero value or a default, never an error.
package units

import (
	"math"
	"strconv"
	"strings"
)

// MetersToFeet converts a scraped metric wave height to whole feet.
// Non-numeric input yields 0.
func MetersToFeet(m string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return 0
	}
	return int(math.Round(v * 3.28))
}

// CelsiusToFahrenheit and FahrenheitToCelsius round to whole degrees, so a
// round trip can be off by one. That loss is expected.
func CelsiusToFahrenheit(c float64) int {
	return int(math.Round(c*9/5 + 32))
}

func FahrenheitToCelsius(f float64) int {
	return int(math.Round((f - 32) * 5 / 9))
}

// WindStateText folds the source's wind descriptors ("Glassy", "Light
// cross-off", ...) into plain English. Empty or unrecognized input lands in
// the "windy" bucket.
func WindStateText(state string) string {
	s := strings.ToLower(state)
	switch {
	case strings.Contains(s, "glass") || strings.Contains(s, "off"):
		return "calm"
	case strings.Contains(s, "cross") && !strings.Contains(s, "on"):
		return "light wind"
	default:
		return "windy"
	}
}

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// WindDirectionText maps wind degrees onto an 8-point compass. known=false
// (no reading) yields the empty string.
func WindDirectionText(degrees float64, known bool) string {
	if !known {
		return ""
	}
	idx := int(math.Round(degrees/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return compassPoints[idx]
}

// WetsuitForF is the Fahrenheit wetsuit ladder used by the daily report.
func WetsuitForF(tempF int) string {
	switch {
	case tempF < 60:
		return "full 4/3"
	case tempF < 65:
		return "3/2"
	case tempF < 70:
		return "spring"
	default:
		return "trunks"
	}
}

// WetsuitForC is the Celsius ladder used by the beach composers. Its
// boundaries were tuned separately from the Fahrenheit ladder and only
// approximately agree; keep them distinct.
func WetsuitForC(tempC int) string {
	switch {
	case tempC < 14:
		return "Full 4/3"
	case tempC < 17:
		return "3/2"
	case tempC < 20:
		return "Spring suit"
	default:
		return "Trunks OK"
	}
}
