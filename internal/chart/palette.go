package chart

import "github.com/jeromevaldez/applehealthproject/internal/config"

const (
	normalPointColor = "#4c78a8"
	lowPointColor    = "#d62728"
	markerLineColor  = "#888888"
	fallbackColor    = "#7f7f7f"
)

// colorFor resolves a workout category to its configured color, falling
// back to the default palette and finally to a neutral gray.
func colorFor(palette map[string]string, category string) string {
	if c, ok := palette[category]; ok {
		return c
	}
	if c, ok := config.DefaultPalette[category]; ok {
		return c
	}
	return fallbackColor
}
