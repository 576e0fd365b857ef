package cellmap

import (
	"github.com/agbru/tsapredictor/internal/numeric"
)

// geometry captures everything about one refinement level that is fixed
// before the fixpoint loop starts: the pixel <-> plane mapping, the
// enclosure around the cycle's periodic points, and the local/global
// containment rectangles every cell image is tested against.
type geometry struct {
	level    int
	width    int // W = 1 << level
	cellSize numeric.Real

	complete0, complete1 numeric.Real // global safety square, [-R, R]

	// mem0/mem1 are the inclusive word-column bounds (in units of
	// arena.WordBits cells) covering the union enclosure.
	mem0, mem1 int
	// enclX0/enclX1 are the cell-exact (not word-aligned) inclusive
	// column bounds of the union enclosure ENCL, used for `local` and
	// the plane-coordinate basin rectangle — mem0/mem1 round ENCL
	// outward to whole words for memory addressing, which must not
	// leak into the containment geometry.
	enclX0, enclX1 int
	// y0/y1 are the inclusive row bounds of the union enclosure.
	y0, y1 int

	// local is the enclosure enlarged by one cell on the upper edges,
	// in plane coordinates, used for the cell-image containment test.
	local numeric.PlaneRect

	startWith uint32
}

// localLenWords is the number of words per allocated row.
func (g geometry) localLenWords() int {
	return g.mem1 - g.mem0 + 1
}

// toPlaneX/toPlaneY convert a screen cell index to its lower-left plane
// coordinate.
func (g geometry) toPlaneX(x int) numeric.Real {
	return g.complete0 + numeric.Real(x)*g.cellSize
}

func (g geometry) toPlaneY(y int) numeric.Real {
	return g.complete0 + numeric.Real(y)*g.cellSize
}

// cellRect returns the plane-coordinate square occupied by cell (x, y).
func (g geometry) cellRect(x, y int) numeric.PlaneRect {
	return numeric.PlaneRect{
		X0: g.toPlaneX(x), X1: g.toPlaneX(x + 1),
		Y0: g.toPlaneY(y), Y1: g.toPlaneY(y + 1),
	}
}

// screenRange converts a plane-coordinate rectangle to the inclusive
// cell-index range it overlaps, clamped to [0, width-1].
func (g geometry) screenRange(r numeric.PlaneRect) (x0, x1, y0, y1 int) {
	x0 = g.clampCell(int((r.X0 - g.complete0) / g.cellSize))
	x1 = g.clampCell(int((r.X1 - g.complete0) / g.cellSize))
	y0 = g.clampCell(int((r.Y0 - g.complete0) / g.cellSize))
	y1 = g.clampCell(int((r.Y1 - g.complete0) / g.cellSize))
	return
}

func (g geometry) clampCell(v int) int {
	if v < 0 {
		return 0
	}
	if v > g.width-1 {
		return g.width - 1
	}
	return v
}

// buildGeometry computes the per-level geometry for one refinement
// level around the given periodic points, following spec.md §4.4.1.
func buildGeometry(level int, lagrange numeric.Real, points []numeric.Complex, enclosementWidth int) geometry {
	g := geometry{level: level}
	g.width = 1 << level
	g.complete1 = lagrange
	g.complete0 = -lagrange
	g.cellSize = (g.complete1 - g.complete0) / numeric.Real(g.width)

	e := enclosementWidth
	if e < 0 {
		e = -e
		g.startWith = allGRAY
	} else {
		g.startWith = allPOTW
	}

	g.mem0, g.mem1 = g.width, -1
	g.y0, g.y1 = g.width, -1

	for _, p := range points {
		px := g.clampCell(int((real(p) - g.complete0) / g.cellSize))
		py := g.clampCell(int((imag(p) - g.complete0) / g.cellSize))
		x0 := g.clampCell(px - e)
		x1 := g.clampCell(px + e)
		y0 := g.clampCell(py - e)
		y1 := g.clampCell(py + e)
		if x0 < g.mem0 {
			g.mem0 = x0
		}
		if x1 > g.mem1 {
			g.mem1 = x1
		}
		if y0 < g.y0 {
			g.y0 = y0
		}
		if y1 > g.y1 {
			g.y1 = y1
		}
	}

	g.enclX0, g.enclX1 = g.mem0, g.mem1
	g.mem0 >>= 5
	g.mem1 >>= 5

	g.local = numeric.PlaneRect{
		X0: g.toPlaneX(g.enclX0),
		X1: g.toPlaneX(g.enclX1 + 1),
		Y0: g.toPlaneY(g.y0),
		Y1: g.toPlaneY(g.y1 + 1),
	}

	return g
}

// pointEnclosures returns, per periodic point, the screen rectangle
// that must be forced to GRAY at init time.
func pointEnclosures(g geometry, points []numeric.Complex, enclosementWidth int) []numeric.ScreenRect {
	e := enclosementWidth
	if e < 0 {
		e = -e
	}
	rects := make([]numeric.ScreenRect, 0, len(points))
	for _, p := range points {
		px := g.clampCell(int((real(p) - g.complete0) / g.cellSize))
		py := g.clampCell(int((imag(p) - g.complete0) / g.cellSize))
		rects = append(rects, numeric.ScreenRect{
			X0: g.clampCell(px - e), X1: g.clampCell(px + e),
			Y0: g.clampCell(py - e), Y1: g.clampCell(py + e),
		})
	}
	return rects
}
