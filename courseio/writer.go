package courseio

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/CourseplayPathEditor/course-generator/polygon"
)

// xmlCourse/xmlWaypoint mirror the host-defined XML course form the spec
// describes as "outside the core" — this is one concrete rendering of it.
type xmlCourse struct {
	XMLName   xml.Name      `xml:"course"`
	Waypoints []xmlWaypoint `xml:"waypoint"`
}

type xmlWaypoint struct {
	X          float64 `xml:"x,attr"`
	Y          float64 `xml:"y,attr"`
	Track      int     `xml:"track,attr"`
	PassNumber int     `xml:"pass,attr"`
	TurnStart  bool    `xml:"turnStart,attr,omitempty"`
	TurnEnd    bool    `xml:"turnEnd,attr,omitempty"`
}

// WriteCourseToFile serializes course to path as XML, the stand-in for
// the spec's writeCourseToFile(field, path).
func WriteCourseToFile(course []polygon.Vertex, path string) error {
	doc := xmlCourse{Waypoints: make([]xmlWaypoint, len(course))}
	for i, v := range course {
		doc.Waypoints[i] = xmlWaypoint{
			X:          v.X,
			Y:          v.Y,
			Track:      v.Track,
			PassNumber: v.PassNumber,
			TurnStart:  v.TurnStart,
			TurnEnd:    v.TurnEnd,
		}
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("courseio: marshal course: %w", err)
	}
	data = append([]byte(xml.Header), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("courseio: write course file: %w", err)
	}
	return nil
}
