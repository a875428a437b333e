package coursegen

import (
	"github.com/CourseplayPathEditor/course-generator/angle"
	"github.com/CourseplayPathEditor/course-generator/center"
	"github.com/CourseplayPathEditor/course-generator/diag"
	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/headland"
	"github.com/CourseplayPathEditor/course-generator/polygon"
	"github.com/CourseplayPathEditor/course-generator/sequence"
	"github.com/CourseplayPathEditor/course-generator/smooth"
)

// Options bundles every parameter generateCourseForField takes beyond the
// field itself (spec §6 primary entry point).
type Options struct {
	ImplementWidth                 float64
	NHeadlandPasses                int
	HeadlandClockwise              bool
	HeadlandStartLocation          geo.Point
	OverlapPercent                 float64
	UseBoundaryAsFirstHeadlandPass bool
	NTracksToSkip                  int
	ExtendTracks                   float64
	MinVertexDistance              float64
	AngleThreshold                 float64
	DoSmooth                       bool

	Smoother smooth.Smoother
	Logger   diag.Logger
}

// GenerateCourseForField runs the full pipeline: boundary → headland
// passes → headland link → angle selection → center fill → block
// sequencing → final course (spec §2 data flow, §6 entry point). It
// mutates and returns field.
func GenerateCourseForField(field *Field, opts Options) *Field {
	logger := opts.Logger
	if logger == nil {
		logger = diag.NoopLogger{}
	}
	smoother := opts.Smoother
	if smoother == nil {
		smoother = smooth.Chaikin{}
	}

	field.HeadlandTracks = generateHeadlandPasses(field.Boundary, opts, smoother, logger)
	if len(field.HeadlandTracks) == 0 {
		logger.Error("no headland pass could be generated; course is empty")
		return field
	}

	link := headland.LinkHeadlandTracks(field.HeadlandTracks, opts.HeadlandClockwise, opts.HeadlandStartLocation, opts.DoSmooth, opts.AngleThreshold, smoother, logger)
	field.HeadlandPath = link.Path

	innerHeadland := field.HeadlandTracks[len(field.HeadlandTracks)-1]

	bestAngle, tracks, blocks := angle.FindBestTrackAngle(innerHeadland, opts.ImplementWidth, logger)
	field.BestAngle = bestAngle

	if len(blocks) == 0 {
		logger.Warning("empty block set: interior has no scan line with >=2 intersections")
		field.Course = append([]polygon.Vertex(nil), field.HeadlandPath...)
		return field
	}

	rotationCenter := geo.Point{}
	rotated := innerHeadland.Rotate(rotationCenter, bestAngle)
	polygon.CalculatePolygonData(rotated)

	field.Track = tracks
	field.Blocks = blocks
	field.NTracks = countWaypointTracks(blocks)

	for _, b := range blocks {
		center.AddWaypointsToTracks(b.Tracks, opts.ImplementWidth, opts.ExtendTracks, 0)
	}

	field.Course, field.ConnectingTracks = sequenceBlocks(field.HeadlandPath, rotated, blocks, opts, logger)
	return field
}

// generateHeadlandPasses produces nHeadlandPasses concentric inward
// offsets of boundary. When useBoundaryAsFirstHeadlandPass is set, pass 1
// is the boundary itself (zero offset); otherwise pass 1 is offset by half
// the implement width. Every later pass is offset a full pass width from
// the previous one, where overlapPercent shrinks that pass width below
// implementWidth, per the spec §6 parameter of the same name.
func generateHeadlandPasses(boundary *polygon.Polygon, opts Options, smoother smooth.Smoother, logger diag.Logger) []*polygon.Polygon {
	passWidth := opts.ImplementWidth * (1 - opts.OverlapPercent/100)

	var passes []*polygon.Polygon
	current := boundary
	targetOffset := 0.0

	for i := 0; i < opts.NHeadlandPasses; i++ {
		if i == 0 && opts.UseBoundaryAsFirstHeadlandPass {
			passes = append(passes, boundary)
			continue
		}
		if i == 0 {
			targetOffset = opts.ImplementWidth / 2
		} else {
			targetOffset = passWidth
		}

		next, diagnostics := headland.Generate(current, targetOffset, opts.MinVertexDistance, opts.AngleThreshold, opts.DoSmooth, smoother, logger)
		passes = append(passes, next)
		current = next

		if diagnostics.Degraded {
			logger.Warning("headland pass %d degraded, stopping at %d of %d requested passes", i+1, len(passes), opts.NHeadlandPasses)
			break
		}
	}

	return passes
}

// sequenceBlocks walks the inner headland repeatedly via
// FindTrackToNextBlock, linking each struck block's tracks in turn, until
// every block is covered or the walk finds nothing more. It returns the
// full course (headland path followed by each block's connector and
// waypoints) and the per-block connecting sub-paths.
func sequenceBlocks(headlandPath []polygon.Vertex, innerHeadland *polygon.Polygon, blocks []*center.Block, opts Options, logger diag.Logger) ([]polygon.Vertex, [][]geo.Point) {
	course := append([]polygon.Vertex(nil), headlandPath...)
	var connecting [][]geo.Point

	if len(headlandPath) == 0 {
		return course, connecting
	}

	step := innerHeadland.CircleStep
	if step == 0 {
		step = 1
	}
	from := headlandPath[len(headlandPath)-1].EdgeIndex
	to := geo.PolygonIndex(innerHeadland.Len(), from-step)

	entry := -1
	for {
		nextFrom, nextTo, block, found := sequence.FindTrackToNextBlock(blocks, innerHeadland, from, to, step)
		if !found {
			break
		}
		if entry < 0 {
			for i, b := range blocks {
				if b == block {
					entry = i
				}
			}
		}

		connecting = append(connecting, block.TrackToThisBlock)
		for _, p := range block.TrackToThisBlock {
			course = append(course, polygon.Vertex{Point: p})
		}

		verts := sequence.LinkParallelTracks(block.Tracks, block.BottomToTop, block.LeftToRight, opts.NTracksToSkip)
		course = append(course, verts...)

		from, to = nextFrom, nextTo
	}

	residual := sequence.BuildResidualReport(blocks, entry)
	if residual.UncoveredCount > 0 {
		logger.Warning("course sequencing left %d block(s) uncovered (%d unreachable, %d unvisited but linkable)",
			residual.UncoveredCount, len(residual.UnreachableBlocks), len(residual.UnvisitedButLinked))
	}

	return course, connecting
}

func countWaypointTracks(blocks []*center.Block) int {
	n := 0
	for _, b := range blocks {
		n += len(b.Tracks)
	}
	return n
}
