// Package angle picks the scan-line direction that minimizes block
// fragmentation inside the innermost headland (spec §4.6).
package angle

import (
	"math"

	"github.com/CourseplayPathEditor/course-generator/center"
	"github.com/CourseplayPathEditor/course-generator/diag"
	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/polygon"
)

// ScanStepDeg is the angular resolution of the brute-force search.
const ScanStepDeg = 2.0

// MaxScanDeg is the last angle tried (inclusive); beyond 180° the scan
// lines of a non-oriented field repeat the same partition.
const MaxScanDeg = 178.0

// smallBlockThreshold is the track count below which a block counts as
// "small" for scoring purposes.
const smallBlockThreshold = 5

// candidate holds one scanned angle's score and its precomputed tracks,
// so the winning angle's tracks can be reused without rotating again.
type candidate struct {
	angleDeg float64
	score    int
	tracks   []*center.Track
	blocks   []*center.Block
}

// FindBestTrackAngle rotates innerHeadland by every angle in
// {0, 2, ..., 178}, generates parallel scan lines at each, and scores the
// resulting partition as
// 50*nSmallBlocks + 20*nBlocks + 5*nSplitTracks + nFullTracks.
// It returns the winning angle in radians, its generated tracks and
// blocks (already in the working frame rotated by that angle), or a
// fallback to innerHeadland.BestDirection.Dir (with nil tracks and blocks)
// if no angle produced any block at all.
func FindBestTrackAngle(innerHeadland *polygon.Polygon, width float64, logger diag.Logger) (angleRad float64, tracks []*center.Track, blocks []*center.Block) {
	if logger == nil {
		logger = diag.NoopLogger{}
	}

	center2 := geo.Point{}
	var best *candidate

	for deg := 0.0; deg <= MaxScanDeg; deg += ScanStepDeg {
		rad := deg * math.Pi / 180
		rotated := innerHeadland.Rotate(center2, rad)
		polygon.CalculatePolygonData(rotated)

		scanTracks := center.GenerateParallelTracks(rotated, width)
		scanBlocks := center.SplitCenterIntoBlocks(scanTracks)
		if len(scanBlocks) == 0 {
			continue
		}

		nFull, nSplit := countTracks(scanTracks, scanBlocks)
		nSmall := countSmallBlocks(scanBlocks)
		score := 50*nSmall + 20*len(scanBlocks) + 5*nSplit + nFull

		if best == nil || score < best.score {
			best = &candidate{angleDeg: deg, score: score, tracks: scanTracks, blocks: scanBlocks}
		}
	}

	if best == nil {
		logger.Warning("angle selector: no angle produced a valid block, falling back to bestDirection")
		return innerHeadland.BestDirection.Dir, nil, nil
	}

	logger.Progress("angle selector: chose %.0f deg, score %d", best.angleDeg, best.score)
	return best.angleDeg * math.Pi / 180, best.tracks, best.blocks
}

// countTracks reports how many of the original scan lines ended up
// contributing to exactly one block (nFullTracks) versus more than one
// (nSplitTracks), by grouping blocks' tracks back to their originating
// scan line via its y coordinate.
func countTracks(tracks []*center.Track, blocks []*center.Block) (nFullTracks, nSplitTracks int) {
	counts := map[float64]int{}
	for _, b := range blocks {
		for _, t := range b.Tracks {
			counts[t.Y]++
		}
	}
	for _, t := range tracks {
		n := counts[t.Y]
		switch {
		case n == 1:
			nFullTracks++
		case n > 1:
			nSplitTracks++
		}
	}
	return nFullTracks, nSplitTracks
}

// countSmallBlocks reports the number of blocks with fewer than
// smallBlockThreshold tracks.
func countSmallBlocks(blocks []*center.Block) int {
	n := 0
	for _, b := range blocks {
		if len(b.Tracks) < smallBlockThreshold {
			n++
		}
	}
	return n
}
