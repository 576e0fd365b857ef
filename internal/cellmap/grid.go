package cellmap

import (
	"github.com/agbru/tsapredictor/internal/arena"
	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

// grid is the sparse per-row bit-packed memory for one refinement
// level. Only rows in [g.y0, g.y1] are allocated; a row is nil outside
// that range and any read there is treated as allPOTW by convention
// (an out-of-grid cell can never be part of the filled set's interior).
type grid struct {
	g    geometry
	rows [][]uint32 // indexed by absolute row y
}

func newGrid(a *arena.Arena, g geometry) (*grid, error) {
	gr := &grid{g: g, rows: make([][]uint32, g.width)}
	lenWords := g.localLenWords()
	for y := g.y0; y <= g.y1; y++ {
		row, err := a.GetMemory(lenWords)
		if err != nil {
			return nil, err
		}
		for i := range row {
			row[i] = g.startWith
		}
		gr.rows[y] = row
	}
	return gr, nil
}

// forceGray clears every cell inside each of the given screen
// rectangles back to GRAY, the engine's initialization step 4.4.3.
func (gr *grid) forceGray(rects []numeric.ScreenRect) {
	for _, r := range rects {
		for y := r.Y0; y <= r.Y1; y++ {
			row := gr.rows[y]
			if row == nil {
				continue
			}
			for x := r.X0; x <= r.X1; x++ {
				wi := (x >> 5) - gr.g.mem0
				bit := x & 31
				row[wi] &^= 1 << uint(bit)
			}
		}
	}
}

// getCell reports whether cell (x, y) is POTW. Cells outside the
// allocated row range, or outside [0, width-1], are treated as POTW.
func (gr *grid) getCell(x, y int) bool {
	if y < gr.g.y0 || y > gr.g.y1 || x < 0 || x >= gr.g.width {
		return true
	}
	row := gr.rows[y]
	if row == nil {
		return true
	}
	wi := (x >> 5) - gr.g.mem0
	if wi < 0 || wi >= len(row) {
		return true
	}
	return getBit(row[wi], x&31)
}

// anyGray reports whether any allocated cell remains GRAY after the
// fixpoint loop — the certificate that the algorithm trapped an
// interior cell at this refinement level.
func (gr *grid) anyGray() bool {
	for y := gr.g.y0; y <= gr.g.y1; y++ {
		row := gr.rows[y]
		if row == nil {
			continue
		}
		for _, w := range row {
			if w != allPOTW {
				return true
			}
		}
	}
	return false
}

// pass performs one full scan of every allocated row/word, flipping
// GRAY cells to POTW wherever their interval image escapes local
// containment, escapes the global safety square, or overlaps any
// non-GRAY (POTW, or out-of-grid) cell. It returns whether any bit
// changed during the pass, driving the outer fixpoint loop to
// termination.
func (gr *grid) pass(shape polyfamily.Shape, seed polyfamily.Seed, g geometry) bool {
	changed := false
	for y := g.y0; y <= g.y1; y++ {
		row := gr.rows[y]
		if row == nil {
			continue
		}
		rowChanged := false
		for wi, word := range row {
			if word == allPOTW {
				continue
			}
			newWord := word
			for bit := 0; bit < arena.WordBits; bit++ {
				if getBit(newWord, bit) {
					continue
				}
				x := (g.mem0+wi)*arena.WordBits + bit
				cellRect := g.cellRect(x, y)
				bbx := shape.Bbox(seed, cellRect)

				if !g.local.Contains(bbx) || !completeContains(g, bbx) {
					newWord = setPOTW(newWord, bit)
					rowChanged = true
					continue
				}

				sx0, sx1, sy0, sy1 := g.screenRange(bbx)
				escapes := false
				for sy := sy0; sy <= sy1 && !escapes; sy++ {
					for sx := sx0; sx <= sx1; sx++ {
						if gr.getCell(sx, sy) {
							escapes = true
							break
						}
					}
				}
				if escapes {
					newWord = setPOTW(newWord, bit)
					rowChanged = true
				}
			}
			if newWord != word {
				row[wi] = newWord
			}
		}
		if rowChanged {
			changed = true
		}
	}
	return changed
}

func completeContains(g geometry, r numeric.PlaneRect) bool {
	return r.X0 >= g.complete0 && r.X1 <= g.complete1 && r.Y0 >= g.complete0 && r.Y1 <= g.complete1
}
