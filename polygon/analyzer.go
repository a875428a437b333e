package polygon

import (
	"math"

	"github.com/CourseplayPathEditor/course-generator/geo"
)

const directionBinWidthDeg = 10.0

// CalculatePolygonData computes every per-vertex and whole-polygon
// decoration: prevEdge/nextEdge/tangent, shortestEdgeLength, the direction
// histogram and bestDirection, isClockwise, and the bounding box. It is the
// single entry point re-run after any rotation/translation/offset pass.
func CalculatePolygonData(p *Polygon) {
	n := p.Len()
	if n < 2 {
		return
	}

	edges := make([]Edge, n)
	for i := 1; i <= n; i++ {
		from := p.At(i).Point
		to := p.At(i + 1).Point
		edges[i-1] = NewEdge(from, to)
	}

	p.ShortestEdgeLength = math.Inf(1)
	p.DirectionStats = map[int]*DirectionBin{}

	for i := 1; i <= n; i++ {
		v := p.At(i)
		next := edges[i-1]
		prev := edges[geo.PolygonIndex(n, i-1)-1]

		nextCopy := next
		prevCopy := prev
		v.NextEdge = &nextCopy
		v.PrevEdge = &prevCopy
		v.EdgeIndex = i

		tangentFrom := p.At(i - 1).Point
		tangentTo := p.At(i + 1).Point
		tAngle, tLen := geo.ToPolar(tangentTo.X-tangentFrom.X, tangentTo.Y-tangentFrom.Y)
		v.Tangent = Tangent{Angle: tAngle, Length: tLen}

		if next.Length < p.ShortestEdgeLength {
			p.ShortestEdgeLength = next.Length
		}

		addToDirectionStats(p.DirectionStats, next.Angle, next.Length)
	}

	p.BestDirection = computeBestDirection(p.DirectionStats)
	p.IsClockwise = computeIsClockwise(p)
	p.BoundingBox = geo.ComputeBoundingBox(p.Points())
}

func addToDirectionStats(stats map[int]*DirectionBin, angle, length float64) {
	deg := angle * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	bin := int(math.Floor(deg/directionBinWidthDeg)) * int(directionBinWidthDeg)
	b, ok := stats[bin]
	if !ok {
		b = &DirectionBin{CenterDeg: float64(bin) + directionBinWidthDeg/2}
		stats[bin] = b
	}
	b.Length += length
	b.Angles = append(b.Angles, angle)
}

func computeBestDirection(stats map[int]*DirectionBin) BestDirection {
	var best BestDirection
	var bestLen = -1.0
	for _, b := range stats {
		if b.Length > bestLen {
			bestLen = b.Length
			mean := 0.0
			for _, a := range b.Angles {
				mean += a
			}
			mean /= float64(len(b.Angles))
			best = BestDirection{
				CenterDeg: b.CenterDeg,
				Dir:       math.Floor(mean*180/math.Pi) * math.Pi / 180,
				Length:    b.Length,
			}
		}
	}
	return best
}

// computeIsClockwise derives orientation from the sign of the cumulative
// signed delta of successive prevEdge.angle values around the ring.
func computeIsClockwise(p *Polygon) bool {
	n := p.Len()
	sum := 0.0
	for i := 1; i <= n; i++ {
		cur := p.At(i).PrevEdge.Angle
		next := p.At(i + 1).PrevEdge.Angle
		sum += geo.GetDeltaAngle(cur, next)
	}
	return sum < 0
}
