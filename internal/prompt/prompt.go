package prompt

import (
	"fmt"
	"strings"
)

const (
	// maxPreferenceChars bounds the free-text user preference so the final
	// prompt stays short enough for every provider.
	maxPreferenceChars = 30
	maxFurnitureNames  = 3

	defaultFurniture  = "sofa, table, decor"
	defaultPreference = "modern cozy"
)

var styleByCostRange = map[string]string{
	"Low":    "simple elegant",
	"Medium": "stylish modern",
	"High":   "luxury premium",
}

// StyleFor maps a cost range to its prompt style descriptor. Unknown values
// fall back to a neutral descriptor instead of erroring.
func StyleFor(costRange string) string {
	if style, ok := styleByCostRange[costRange]; ok {
		return style
	}
	return "stylish"
}

// Build composes the generation prompt from the room parameters, catalog
// furniture names and the user's free-text preference. It is deterministic:
// identical inputs always produce the identical string.
//
// The room description is accepted for parity with the preview flow; the
// template intentionally leaves it out because image-conditioned providers
// see the source photo directly.
func Build(_, roomType, costRange, preference string, furniture []string) string {
	style := StyleFor(costRange)

	names := furniture
	if len(names) > maxFurnitureNames {
		names = names[:maxFurnitureNames]
	}
	furnitureStr := defaultFurniture
	if len(names) > 0 {
		furnitureStr = strings.Join(names, ", ")
	}

	userStyle := strings.TrimSpace(preference)
	if userStyle == "" {
		userStyle = defaultPreference
	} else if runes := []rune(userStyle); len(runes) > maxPreferenceChars {
		// Truncate by runes so multi-byte input is never split mid-character.
		userStyle = string(runes[:maxPreferenceChars])
	}

	return fmt.Sprintf("beautiful %s with %s, %s %s, interior design photo, 4k",
		roomType, furnitureStr, style, userStyle)
}
