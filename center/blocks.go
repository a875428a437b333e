package center

import (
	"math"

	"github.com/CourseplayPathEditor/course-generator/geo"
)

// Block is a maximal run of consecutive, x-overlapping scan lines that can
// be worked without re-entering the headland.
type Block struct {
	Tracks      []*Track
	BottomLeft  Intersection
	BottomRight Intersection
	TopLeft     Intersection
	TopRight    Intersection

	Covered     bool
	BottomToTop bool
	LeftToRight bool

	// TrackToThisBlock is the connecting sub-path from the headland exit
	// (or the previous block's exit) to this block's entry corner.
	TrackToThisBlock []geo.Point
}

// SplitCenterIntoBlocks partitions tracks into blocks: each pass collects
// the two leftmost remaining intersections of every scan line that still
// x-overlaps the block built so far, consumes them, and starts a new block
// once a scan line breaks the overlap chain or the source tracks are
// exhausted. Any scan line with 3+ intersection pairs therefore contributes
// to more than one block, one pair per pass.
func SplitCenterIntoBlocks(tracks []*Track) []*Block {
	remaining := make([]*Track, len(tracks))
	for i, t := range tracks {
		remaining[i] = &Track{Y: t.Y, From: t.From, To: t.To, Intersections: append([]Intersection(nil), t.Intersections...)}
	}

	var blocks []*Block
	for {
		var block []*Track
		for _, rt := range remaining {
			if len(rt.Intersections) < 2 {
				continue
			}
			leftPair := []Intersection{rt.Intersections[0], rt.Intersections[1]}
			candidate := &Track{Y: rt.Y, Intersections: leftPair}

			if len(block) > 0 && !Overlaps(block[len(block)-1], candidate) {
				break
			}

			block = append(block, candidate)
			rt.Intersections = rt.Intersections[2:]
		}

		if len(block) == 0 {
			break
		}

		blocks = append(blocks, &Block{
			Tracks:      block,
			BottomLeft:  block[0].Intersections[0],
			BottomRight: block[0].Intersections[1],
			TopLeft:     block[len(block)-1].Intersections[0],
			TopRight:    block[len(block)-1].Intersections[1],
		})
	}

	return blocks
}

// Overlaps reports whether t1 and t2's x-ranges (defined by their
// intersection endpoints) overlap.
func Overlaps(t1, t2 *Track) bool {
	min1, max1 := xRange(t1)
	min2, max2 := xRange(t2)
	return min1 <= max2 && min2 <= max1
}

func xRange(t *Track) (lo, hi float64) {
	if len(t.Intersections) == 0 {
		return 0, 0
	}
	lo, hi = t.Intersections[0].Point.X, t.Intersections[0].Point.X
	for _, in := range t.Intersections {
		lo = math.Min(lo, in.Point.X)
		hi = math.Max(hi, in.Point.X)
	}
	return lo, hi
}
