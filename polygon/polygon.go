package polygon

import "github.com/CourseplayPathEditor/course-generator/geo"

// Vertex decorates a ring point with the per-vertex data the analyzer and
// downstream planner stages attach to it. It is a single record with
// optional fields rather than ad hoc attribute splicing, per the planner's
// design notes.
type Vertex struct {
	geo.Point

	PrevEdge *Edge
	NextEdge *Edge
	Tangent  Tangent

	// Course-level annotations, set by later planning stages.
	TurnStart  bool
	TurnEnd    bool
	PassNumber int
	Track      int

	// EdgeIndex is the index (1-based, within the owning Polygon) of the
	// edge that begins at this vertex. Center-fill intersections reference
	// polygon edges by this plain integer, never by pointer identity.
	EdgeIndex int
}

// DirectionBin accumulates the total edge length and contributing edge
// angles for one 10-degree-wide direction histogram bucket.
type DirectionBin struct {
	CenterDeg float64
	Length    float64
	Angles    []float64
}

// BestDirection is the direction histogram bucket holding the most edge
// length, summarized by the mean of its contributing angles.
type BestDirection struct {
	CenterDeg float64
	Dir       float64 // mean of contributing angles floored to a whole degree, in radians
	Length    float64
}

// Polygon is an ordered, implicitly-closed ring of vertices, decorated
// after CalculatePolygonData with orientation, bounding box and direction
// statistics.
type Polygon struct {
	Vertices []Vertex

	BoundingBox        geo.BoundingBox
	IsClockwise        bool
	ShortestEdgeLength float64
	DirectionStats     map[int]*DirectionBin
	BestDirection      BestDirection

	// Set by the headland generator/linker when this polygon is one pass
	// of a concentric offset sequence.
	CircleStart int
	CircleEnd   int
	CircleStep  int
}

// NewPolygon builds a Polygon from a closed ring of points, without running
// the analyzer (callers should call CalculatePolygonData next).
func NewPolygon(points []geo.Point) *Polygon {
	verts := make([]Vertex, len(points))
	for i, p := range points {
		verts[i] = Vertex{Point: p}
	}
	return &Polygon{Vertices: verts}
}

// Points returns the plain geo.Point ring, discarding decoration.
func (p *Polygon) Points() []geo.Point {
	out := make([]geo.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Point
	}
	return out
}

// At returns the vertex at the circular 1-based index i.
func (p *Polygon) At(i int) *Vertex {
	idx := geo.PolygonIndex(len(p.Vertices), i)
	return &p.Vertices[idx-1]
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.Vertices)
}

// Clone returns a deep copy of p. Intermediate rotation/translation
// passes always operate on a clone, never on the caller's polygon.
func (p *Polygon) Clone() *Polygon {
	cp := *p
	cp.Vertices = make([]Vertex, len(p.Vertices))
	copy(cp.Vertices, p.Vertices)
	if p.DirectionStats != nil {
		cp.DirectionStats = make(map[int]*DirectionBin, len(p.DirectionStats))
		for k, v := range p.DirectionStats {
			dup := *v
			dup.Angles = append([]float64(nil), v.Angles...)
			cp.DirectionStats[k] = &dup
		}
	}
	return &cp
}

// Rotate returns a deep copy of p with every vertex rotated by angle
// radians around center. Decoration (edges/tangents/direction stats) is
// stale afterward and must be recomputed with CalculatePolygonData.
func (p *Polygon) Rotate(center geo.Point, angle float64) *Polygon {
	cp := p.Clone()
	for i := range cp.Vertices {
		cp.Vertices[i].Point = cp.Vertices[i].Point.RotateAround(center, angle)
	}
	cp.DirectionStats = nil
	return cp
}

// Translate returns a deep copy of p with every vertex translated by dx,dy.
func (p *Polygon) Translate(dx, dy float64) *Polygon {
	cp := p.Clone()
	for i := range cp.Vertices {
		cp.Vertices[i].X += dx
		cp.Vertices[i].Y += dy
	}
	return cp
}
