package sequence

import (
	"fmt"

	"github.com/CourseplayPathEditor/course-generator/center"
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// ResidualReport classifies every uncovered block left over after
// sequencing as either reachable-but-unvisited (a sequencer bug: the
// headland walk should have struck one of its corners) or genuinely
// unreachable (the field's topology disconnects it from the blocks the
// sequencer did visit). This answers the spec §9 Open Question that a
// production implementation should at least report the residual instead
// of silently leaving blocks uncovered.
type ResidualReport struct {
	UncoveredCount     int
	UnreachableBlocks  []int // indices into the blocks slice passed to BuildResidualReport
	UnvisitedButLinked []int
}

// BuildResidualReport builds an adjacency graph over blocks (an edge
// between two blocks whenever their track x-ranges overlap, approximating
// "the vehicle could drive from one directly into the other") and runs a
// breadth-first search from entryBlock to find which uncovered blocks are
// topologically reachable from it.
func BuildResidualReport(blocks []*center.Block, entryBlock int) ResidualReport {
	report := ResidualReport{}

	g := core.NewGraph()
	for i := range blocks {
		_ = g.AddVertex(blockVertexID(i))
	}
	for i := range blocks {
		for j := i + 1; j < len(blocks); j++ {
			if blocksOverlap(blocks[i], blocks[j]) {
				_, _ = g.AddEdge(blockVertexID(i), blockVertexID(j), 0)
			}
		}
	}

	uncovered := map[int]bool{}
	for i, b := range blocks {
		if !b.Covered {
			uncovered[i] = true
			report.UncoveredCount++
		}
	}
	if report.UncoveredCount == 0 {
		return report
	}
	if entryBlock < 0 || entryBlock >= len(blocks) || !g.HasVertex(blockVertexID(entryBlock)) {
		// No usable entry point in the graph: every uncovered block is
		// reported unreachable, since reachability can't be established.
		for i := range uncovered {
			report.UnreachableBlocks = append(report.UnreachableBlocks, i)
		}
		return report
	}

	result, err := bfs.BFS(g, blockVertexID(entryBlock))
	if err != nil {
		for i := range uncovered {
			report.UnreachableBlocks = append(report.UnreachableBlocks, i)
		}
		return report
	}

	reached := map[int]bool{}
	for _, id := range result.Order {
		reached[blockIndexFromVertexID(id)] = true
	}

	for i := range uncovered {
		if reached[i] {
			report.UnvisitedButLinked = append(report.UnvisitedButLinked, i)
		} else {
			report.UnreachableBlocks = append(report.UnreachableBlocks, i)
		}
	}
	return report
}

func blockVertexID(i int) string {
	return fmt.Sprintf("block-%d", i)
}

func blockIndexFromVertexID(id string) int {
	var i int
	_, _ = fmt.Sscanf(id, "block-%d", &i)
	return i
}

func blocksOverlap(a, b *center.Block) bool {
	for _, ta := range a.Tracks {
		for _, tb := range b.Tracks {
			if center.Overlaps(ta, tb) {
				return true
			}
		}
	}
	return false
}
