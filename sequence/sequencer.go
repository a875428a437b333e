package sequence

import (
	"github.com/CourseplayPathEditor/course-generator/center"
	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/polygon"
)

// cornerKind identifies which of a block's four corners was struck while
// walking the headland.
type cornerKind int

const (
	cornerNone cornerKind = iota
	cornerBottomLeft
	cornerBottomRight
	cornerTopLeft
	cornerTopRight
)

// FindTrackToNextBlock walks the inner headland from index from to index to
// (stepping by step), looking for the entry corner of any not-yet-covered
// block. The first corner struck marks that block covered, records the
// walked sub-path (plus the entry corner point) as its TrackToThisBlock,
// derives its entry/exit directions, and returns the headland index of the
// expected exit corner as the new (from, to) pair for the caller's next
// call. If the walk completes without striking any uncovered block, found
// is false and the planner should stop (spec §9 Open Question: the caller
// is expected to additionally report the residual via ResidualReport).
func FindTrackToNextBlock(blocks []*center.Block, headland *polygon.Polygon, from, to, step int) (nextFrom, nextTo int, block *center.Block, found bool) {
	visited := geo.PolygonIterator(headland.Points(), from, to, step)

	var walked []geo.Point
	for _, iv := range visited {
		walked = append(walked, iv.Point)

		for _, b := range blocks {
			if b.Covered {
				continue
			}
			kind := cornerAtEdgeIndex(b, iv.Index)
			if kind == cornerNone {
				continue
			}

			b.Covered = true
			b.BottomToTop, b.LeftToRight = entryDirections(kind)
			b.TrackToThisBlock = append(append([]geo.Point(nil), walked...), entryPoint(b, kind))

			exitKind := expectedExitCorner(b, kind)
			exitIndex := edgeIndexForCorner(b, exitKind)
			n := headland.Len()
			newFrom := exitIndex
			newTo := geo.PolygonIndex(n, exitIndex-step)
			return newFrom, newTo, b, true
		}
	}

	return 0, 0, nil, false
}

func cornerAtEdgeIndex(b *center.Block, edgeIndex int) cornerKind {
	switch edgeIndex {
	case b.BottomLeft.EdgeIndex:
		return cornerBottomLeft
	case b.BottomRight.EdgeIndex:
		return cornerBottomRight
	case b.TopLeft.EdgeIndex:
		return cornerTopLeft
	case b.TopRight.EdgeIndex:
		return cornerTopRight
	}
	return cornerNone
}

func entryPoint(b *center.Block, kind cornerKind) geo.Point {
	switch kind {
	case cornerBottomLeft:
		return b.BottomLeft.Point
	case cornerBottomRight:
		return b.BottomRight.Point
	case cornerTopLeft:
		return b.TopLeft.Point
	case cornerTopRight:
		return b.TopRight.Point
	}
	return geo.Point{}
}

func edgeIndexForCorner(b *center.Block, kind cornerKind) int {
	switch kind {
	case cornerBottomLeft:
		return b.BottomLeft.EdgeIndex
	case cornerBottomRight:
		return b.BottomRight.EdgeIndex
	case cornerTopLeft:
		return b.TopLeft.EdgeIndex
	case cornerTopRight:
		return b.TopRight.EdgeIndex
	}
	return 0
}

// entryDirections maps an entry corner to the (bottomToTop, leftToRight)
// pair spec §4.9 assigns it.
func entryDirections(kind cornerKind) (bottomToTop, leftToRight bool) {
	switch kind {
	case cornerBottomLeft:
		return true, true
	case cornerBottomRight:
		return true, false
	case cornerTopLeft:
		return false, true
	case cornerTopRight:
		return false, false
	}
	return true, true
}

// expectedExitCorner computes the exit corner: the same vertical side as
// the entry corner when the block has an even track count, the opposite
// horizontal side when odd (alternating track direction flips parity).
func expectedExitCorner(b *center.Block, entry cornerKind) cornerKind {
	even := len(b.Tracks)%2 == 0
	switch entry {
	case cornerBottomLeft:
		if even {
			return cornerTopLeft
		}
		return cornerTopRight
	case cornerBottomRight:
		if even {
			return cornerTopRight
		}
		return cornerTopLeft
	case cornerTopLeft:
		if even {
			return cornerBottomLeft
		}
		return cornerBottomRight
	case cornerTopRight:
		if even {
			return cornerBottomRight
		}
		return cornerBottomLeft
	}
	return entry
}
