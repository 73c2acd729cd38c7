package core

// Renderer is the drawing surface games paint on. Redraws are done per tag:
// Clear(tag) removes everything drawn under that tag, then the group is drawn
// again from scratch.
type Renderer interface {
	// Clear removes every item drawn with the given tag.
	Clear(tag string)

	// DrawCell fills one grid cell with a color under the given tag.
	DrawCell(c Coord, color Color, tag string)

	// DrawText places text centered on the top-left corner of grid cell pos.
	// Text is untagged and stays until the canvas is discarded.
	DrawText(pos Coord, text string, color Color)
}

// CellGlyph is the rune used to paint a filled grid cell.
const CellGlyph = '█'

type itemKind int

const (
	itemCell itemKind = iota
	itemText
)

type canvasItem struct {
	kind  itemKind
	tag   string
	pos   Coord
	color Color
	text  string
}

// Canvas is a tagged display list. Items are painted in the order they were
// drawn, so later items cover earlier ones.
type Canvas struct {
	items []canvasItem
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Clear implements Renderer.
func (c *Canvas) Clear(tag string) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.kind == itemCell && it.tag == tag {
			continue
		}
		kept = append(kept, it)
	}
	c.items = kept
}

// DrawCell implements Renderer.
func (c *Canvas) DrawCell(pos Coord, color Color, tag string) {
	c.items = append(c.items, canvasItem{kind: itemCell, tag: tag, pos: pos, color: color})
}

// DrawText implements Renderer.
func (c *Canvas) DrawText(pos Coord, text string, color Color) {
	c.items = append(c.items, canvasItem{kind: itemText, pos: pos, color: color, text: text})
}

// Paint draws the canvas into dst. Each grid cell is cellSize columns wide
// and one row tall; cells outside dst are clipped.
func (c *Canvas) Paint(dst *Screen, cellSize int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	dst.Clear()
	for _, it := range c.items {
		switch it.kind {
		case itemCell:
			r := NewRect(it.pos.X*cellSize, it.pos.Y, cellSize, 1)
			dst.DrawRect(r, Cell{Rune: CellGlyph, Color: it.color})
		case itemText:
			width := len([]rune(it.text))
			dst.DrawText(it.pos.X*cellSize-width/2, it.pos.Y, it.text, it.color)
		}
	}
}
