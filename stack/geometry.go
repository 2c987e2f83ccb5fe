package stack

import (
	"fmt"
	"math"
)

// Geometry holds the constants a layout is computed from. It is resolved by
// measuring the first item and stays fixed until the viewport size changes.
type Geometry struct {
	ViewportWidth  int
	ViewportHeight int

	ItemWidth  int
	ItemHeight int
	Margins    Margins

	// SlotHeight is the distance between two items in a stack.
	SlotHeight int
	// BoundaryHeight is the height of the top and bottom stack regions.
	BoundaryHeight int
	// MaxDepth is the largest number of items kept in one stack.
	MaxDepth int
}

// Pitch returns the distance between the tops of two neighbouring items in a
// flat arrangement.
func (g Geometry) Pitch() int {
	return g.Margins.Top + g.ItemHeight + g.Margins.Bottom
}

// TopBoundary returns the row above which items form the top stack.
func (g Geometry) TopBoundary() int {
	return g.BoundaryHeight
}

// BottomBoundary returns the row at or below which items form the bottom stack.
func (g Geometry) BottomBoundary() int {
	return g.ViewportHeight - g.BoundaryHeight
}

// Valid reports whether the geometry has been resolved.
func (g Geometry) Valid() bool {
	return g.ItemHeight > 0 && g.ViewportHeight > 0
}

// resolveGeometry measures a representative item and derives the stack
// constants for a viewport of width x height.
func (m *Manager) resolveGeometry(width, height int) error {
	item, err := m.adapter.CreateItem(0)
	if err != nil {
		return fmt.Errorf("create item 0: %w", err)
	}
	w, h := m.adapter.Measure(item)
	margins := item.Margins
	m.adapter.ReleaseItem(item)

	if h <= 0 {
		h = 1
	}
	if w <= 0 || w > width-margins.Left-margins.Right {
		w = max(width-margins.Left-margins.Right, 0)
	}

	slot := int(math.Round(m.slotSize * m.density))
	if slot < 1 {
		slot = 1
	}
	boundary := height / m.stackFraction
	depth := max(boundary/slot, 1)

	m.geom = Geometry{
		ViewportWidth:  width,
		ViewportHeight: height,
		ItemWidth:      w,
		ItemHeight:     h,
		Margins:        margins,
		SlotHeight:     slot,
		BoundaryHeight: boundary,
		MaxDepth:       depth,
	}
	m.log.Debug("resolved geometry",
		"viewport_width", width,
		"viewport_height", height,
		"item_height", h,
		"slot", slot,
		"boundary", boundary,
		"max_depth", depth,
	)
	return nil
}
