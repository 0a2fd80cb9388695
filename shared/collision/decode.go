package collision

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fenwick/tilecollider/shared/gamemath"
)

// Shapes cross the persistence boundary as tagged JSON: a "kind" field plus
// kind-specific parameters. Decoding failures are recoverable by design; the
// caller skips the one collider and keeps going.

var (
	// ErrShapeDecode marks a blob that does not parse into a known shape.
	ErrShapeDecode = errors.New("undecodable collision shape")

	// ErrDegenerateShape marks a shape whose parameters cannot collide with
	// anything (a polygon with fewer than three points). Report it at load
	// time; it is never a tick-time failure.
	ErrDegenerateShape = errors.New("degenerate collision shape")
)

// Kind tags used in serialized shape blobs. These match the object type
// names used by the Tiled editor.
const (
	KindRectangle = "rectangle"
	KindEllipse   = "ellipse"
	KindPolygon   = "polygon"
	KindPolyline  = "polyline"
	KindPoint     = "point"
)

type shapeBlob struct {
	Kind   string      `json:"kind"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Points []pointBlob `json:"points,omitempty"`
}

type pointBlob struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DecodeShape parses a tagged shape blob into a CollisionShape variant.
// Malformed payloads and unknown kinds return errors wrapping ErrShapeDecode;
// a structurally valid but degenerate polygon wraps ErrDegenerateShape. Both
// mean "skip this collider", never "abort".
func DecodeShape(data []byte) (Shape, error) {
	var blob shapeBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeDecode, err)
	}

	switch blob.Kind {
	case KindRectangle:
		return Rectangle{X: blob.X, Y: blob.Y, W: blob.Width, H: blob.Height}, nil
	case KindEllipse:
		// Stored Tiled-style as a bounding box; convert to center + radii.
		return Ellipse{
			X:  blob.X + blob.Width/2,
			Y:  blob.Y + blob.Height/2,
			RX: blob.Width / 2,
			RY: blob.Height / 2,
		}, nil
	case KindPolygon:
		if len(blob.Points) < 3 {
			return nil, fmt.Errorf("polygon with %d points: %w", len(blob.Points), ErrDegenerateShape)
		}
		return Polygon{Points: blobPoints(blob)}, nil
	case KindPolyline:
		return Polyline{Points: blobPoints(blob)}, nil
	case KindPoint:
		return Point{X: blob.X, Y: blob.Y}, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q: %w", blob.Kind, ErrShapeDecode)
	}
}

// DecodeShapeList parses an array of tagged shape blobs, dropping entries
// that fail to decode. The second return value is the number of dropped
// entries so loaders can surface the diagnostic.
func DecodeShapeList(data []byte) ([]Shape, int, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrShapeDecode, err)
	}

	shapes := make([]Shape, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		shape, err := DecodeShape(raw)
		if err != nil {
			skipped++
			continue
		}
		shapes = append(shapes, shape)
	}
	return shapes, skipped, nil
}

// blobPoints converts a blob's point list to shape-local coordinates. Points
// are stored relative to the blob's x/y origin, matching Tiled.
func blobPoints(blob shapeBlob) []gamemath.Vec {
	points := make([]gamemath.Vec, len(blob.Points))
	for i, p := range blob.Points {
		points[i] = gamemath.Vec{X: blob.X + p.X, Y: blob.Y + p.Y}
	}
	return points
}
