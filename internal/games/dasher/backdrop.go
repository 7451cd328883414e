package dasher

import (
	"github.com/vovakirdan/dasher-arcade/internal/config"
	"github.com/vovakirdan/dasher-arcade/internal/core"
)

// Layer is one parallax strip of the city backdrop.
type Layer struct {
	Name   string
	Sheet  string
	Scroll core.ScrollLayer
	Color  core.Color
	Art    []string // Terminal skyline, tiled horizontally
}

// Backdrop is the ordered set of layers, drawn back to front.
type Backdrop struct {
	Layers []Layer
}

// Terminal skylines, one per default layer name. Every row of a skyline has
// the same width so tiles line up.
var skylines = map[string][]string{
	"far": {
		"      ▄▄            ",
		"  ▄   ██      ▄▄▄   ",
		" ███  ██  ▄▄  ███ ▄ ",
		" ███▄▄██  ██▄▄███ █ ",
		"▄███████▄▄████████▄▄",
	},
	"mid": {
		"   ▄▄▄          ▄▄  ",
		"   █▒█   ▄▄▄    ██  ",
		" ▄ █▒█   █▒█▄  ▄██▄ ",
		"██▄█▒█▄▄▄█▒██▄▄████▄",
	},
	"near": {
		"  ┬          ┬      ",
		"▁▁│▁▁▁▁▁▁▁▁▁▁│▁▁▁▁▁▁",
		"▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔",
	},
}

var layerColors = map[string]core.Color{
	"far":  core.ColorGray,
	"mid":  core.ColorBlue,
	"near": core.ColorMagenta,
}

// NewBackdrop builds the layers described by cfgs.
func NewBackdrop(cfgs []config.LayerConfig) *Backdrop {
	b := &Backdrop{Layers: make([]Layer, 0, len(cfgs))}
	for _, c := range cfgs {
		color, ok := layerColors[c.Name]
		if !ok {
			color = core.ColorGray
		}
		b.Layers = append(b.Layers, Layer{
			Name:  c.Name,
			Sheet: c.Path,
			Scroll: core.ScrollLayer{
				Width: c.Width,
				Scale: c.Scale,
				Speed: c.Speed,
			},
			Color: color,
			Art:   skylines[c.Name],
		})
	}
	return b
}

// Advance scrolls every layer by dt seconds.
func (b *Backdrop) Advance(dt float64) {
	for i := range b.Layers {
		b.Layers[i].Scroll.Advance(dt)
	}
}

// Draw appends the layers to dl, each spanning height world units.
func (b *Backdrop) Draw(dl *core.DrawList, height float64) {
	for _, l := range b.Layers {
		dl.Layer(l.Sheet, l.Scroll, height, l.Color, l.Art)
	}
}
