package core

import "math"

// DrawKind selects how a DrawCmd is interpreted.
type DrawKind int

const (
	DrawFillRect DrawKind = iota // Solid rectangle covering Box
	DrawCircle                   // Filled circle inscribed in Box
	DrawSprite                   // Sheet sub-rectangle Src drawn at Box
	DrawLayer                    // Repeating background drawn at Box.X and Box.X+Box.W
	DrawText                     // Text anchored at Box.X/Box.Y
)

// DrawCmd is one world-space drawing primitive.
// Graphical front ends use Sheet/Src; the terminal uses Glyph/Pattern.
type DrawCmd struct {
	Kind  DrawKind
	Box   Box   // Destination in world units
	Color Color // Tint / foreground colour

	Sheet string // Texture key for sprites and layers
	Src   Box    // Source rectangle within Sheet
	Scale float64

	Glyph   rune     // Terminal fill character for rects, circles and sprites
	Pattern []string // Terminal art: tiled for layers, centred for sprites

	Text     string
	TextSize float64 // Font size in world units
	Centered bool    // Center text horizontally on the world width
}

// DrawList is an ordered list of primitives for one frame, painted in order.
type DrawList struct {
	Width  float64 // World width in units
	Height float64 // World height in units
	Clear  Color   // Background colour
	Cmds   []DrawCmd
}

// NewDrawList creates an empty list for a world of the given size.
func NewDrawList(w, h float64, clear Color) *DrawList {
	return &DrawList{Width: w, Height: h, Clear: clear}
}

// Add appends a primitive.
func (d *DrawList) Add(cmd DrawCmd) {
	d.Cmds = append(d.Cmds, cmd)
}

// Rect appends a filled rectangle.
func (d *DrawList) Rect(b Box, c Color, glyph rune) {
	d.Add(DrawCmd{Kind: DrawFillRect, Box: b, Color: c, Glyph: glyph})
}

// Circle appends a filled circle centred at (cx, cy).
func (d *DrawList) Circle(cx, cy, r float64, c Color, glyph rune) {
	d.Add(DrawCmd{Kind: DrawCircle, Box: BoxAround(cx, cy, r, r), Color: c, Glyph: glyph})
}

// Sprite appends the current frame of an animation taken from sheet.
func (d *DrawList) Sprite(sheet string, a SpriteAnim, c Color, glyph rune) {
	d.Add(DrawCmd{
		Kind:  DrawSprite,
		Box:   a.Bounds(),
		Color: c,
		Sheet: sheet,
		Src:   a.Src,
		Scale: 1,
		Glyph: glyph,
	})
}

// SpriteArt appends a sprite that the terminal draws as fixed-size art
// centred on its bounds instead of a filled block.
func (d *DrawList) SpriteArt(sheet string, a SpriteAnim, c Color, art []string) {
	d.Sprite(sheet, a, c, 0)
	d.Cmds[len(d.Cmds)-1].Pattern = art
}

// Layer appends a scrolling background layer of the given on-screen height.
func (d *DrawList) Layer(sheet string, l ScrollLayer, height float64, c Color, pattern []string) {
	first, second := l.Positions()
	d.Add(DrawCmd{
		Kind:    DrawLayer,
		Box:     BoxAt(first, 0, second-first, height),
		Color:   c,
		Sheet:   sheet,
		Src:     BoxAt(0, 0, l.Width, 0),
		Scale:   l.Scale,
		Pattern: pattern,
	})
}

// Text appends a text string.
func (d *DrawList) Text(x, y, size float64, text string, c Color, centered bool) {
	d.Add(DrawCmd{
		Kind:     DrawText,
		Box:      BoxAt(x, y, 0, size),
		Color:    c,
		Text:     text,
		TextSize: size,
		Centered: centered,
	})
}

// Rasterize paints the list into a terminal screen, scaling world units to cells.
func (d *DrawList) Rasterize(dst *Screen) {
	dst.Clear()
	if d.Width <= 0 || d.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sx := float64(dst.Width()) / d.Width
	sy := float64(dst.Height()) / d.Height

	for _, cmd := range d.Cmds {
		switch cmd.Kind {
		case DrawFillRect:
			dst.DrawRectColor(cellRect(cmd.Box, sx, sy), glyphOr(cmd.Glyph, '█'), cmd.Color)
		case DrawSprite:
			rasterSprite(dst, cmd, sx, sy)
		case DrawCircle:
			rasterCircle(dst, cmd, sx, sy)
		case DrawLayer:
			rasterLayer(dst, cmd, sx, sy)
		case DrawText:
			row := int(math.Floor(cmd.Box.Y * sy))
			if cmd.Centered {
				col := (dst.Width() - len([]rune(cmd.Text))) / 2
				dst.DrawTextColor(col, row, cmd.Text, cmd.Color)
			} else {
				dst.DrawTextColor(int(math.Floor(cmd.Box.X*sx)), row, cmd.Text, cmd.Color)
			}
		}
	}
}

// cellRect converts a world box to the cells it touches, at least one cell
// in each non-empty direction.
func cellRect(b Box, sx, sy float64) Rect {
	x0 := int(math.Floor(b.Left() * sx))
	y0 := int(math.Floor(b.Top() * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

func rasterCircle(dst *Screen, cmd DrawCmd, sx, sy float64) {
	r := cellRect(cmd.Box, sx, sy)
	cx := cmd.Box.X + cmd.Box.W/2
	cy := cmd.Box.Y + cmd.Box.H/2
	rx := cmd.Box.W / 2
	ry := cmd.Box.H / 2
	if rx <= 0 || ry <= 0 {
		return
	}

	drawn := false
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			// Cell centre in world units
			wx := (float64(x) + 0.5) / sx
			wy := (float64(y) + 0.5) / sy
			nx := (wx - cx) / rx
			ny := (wy - cy) / ry
			if nx*nx+ny*ny <= 1 {
				dst.SetColor(x, y, glyphOr(cmd.Glyph, '●'), cmd.Color)
				drawn = true
			}
		}
	}

	// Circles smaller than a cell still show up
	if !drawn {
		dst.SetColor(int(cx*sx), int(cy*sy), glyphOr(cmd.Glyph, '●'), cmd.Color)
	}
}

func rasterSprite(dst *Screen, cmd DrawCmd, sx, sy float64) {
	r := cellRect(cmd.Box, sx, sy)
	if len(cmd.Pattern) == 0 {
		dst.DrawRectColor(r, glyphOr(cmd.Glyph, '█'), cmd.Color)
		return
	}

	width := 0
	for _, line := range cmd.Pattern {
		width = max(width, len([]rune(line)))
	}
	x0 := r.X + (r.W-width)/2
	y0 := r.Y + (r.H-len(cmd.Pattern))/2
	for i, line := range cmd.Pattern {
		for j, ch := range []rune(line) {
			if ch != ' ' {
				dst.SetColor(x0+j, y0+i, ch, cmd.Color)
			}
		}
	}
}

func rasterLayer(dst *Screen, cmd DrawCmd, sx, sy float64) {
	if len(cmd.Pattern) == 0 {
		return
	}
	bottom := int(math.Ceil(cmd.Box.Bottom()*sy)) - 1
	top := bottom - len(cmd.Pattern) + 1
	shift := int(math.Floor(cmd.Box.X * sx))

	for i, line := range cmd.Pattern {
		runes := []rune(line)
		if len(runes) == 0 {
			continue
		}
		y := top + i
		for x := 0; x < dst.Width(); x++ {
			idx := (x - shift) % len(runes)
			if idx < 0 {
				idx += len(runes)
			}
			if runes[idx] != ' ' {
				dst.SetColor(x, y, runes[idx], cmd.Color)
			}
		}
	}
}

func glyphOr(g, fallback rune) rune {
	if g == 0 {
		return fallback
	}
	return g
}
