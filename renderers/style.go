package renderers

import (
	"fmt"
	"image/color"
	"strings"

	maze "github.com/yalue/gradient_maze"
)

// The settings shared by every style. Not all styles use all of them.
type StyleOptions struct {
	PathStart color.RGBA
	PathEnd   color.RGBA
	Wall      color.RGBA
	// Inverts light and dark, for the styles that support it.
	Inverted bool
	// Required by the styles that draw random patterns.
	Random maze.RandomSource
}

// Returns the names accepted by NewStyle.
func StyleNames() []string {
	return []string{"plain", "invaders", "mosaic"}
}

// Returns the renderer for the named style.
func NewStyle(name string, options StyleOptions) (maze.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain":
		return &Plain{
			PathStart: options.PathStart,
			PathEnd:   options.PathEnd,
			Wall:      options.Wall,
		}, nil
	case "invaders":
		if options.Random == nil {
			return nil, fmt.Errorf("The invaders style needs a random source")
		}
		return &Invaders{
			Invader: options.PathStart,
			Wall:    options.Wall,
			Random:  options.Random,
		}, nil
	case "mosaic":
		if options.Random == nil {
			return nil, fmt.Errorf("The mosaic style needs a random source")
		}
		return &Mosaic{
			Inverted: options.Inverted,
			Random:   options.Random,
		}, nil
	}
	return nil, fmt.Errorf("Unknown style %q", name)
}
