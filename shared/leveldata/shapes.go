package leveldata

import (
	"log"

	"github.com/lafriks/go-tiled"

	"github.com/fenwick/tilecollider/shared/collision"
	"github.com/fenwick/tilecollider/shared/gamemath"
)

// shapeTable caches decoded collider shapes per (tileset, tile id) so every
// placement of a tile reuses the same decoded shapes. Decode failures happen
// once at load time and are counted, never repeated per tick.
type shapeTable struct {
	shapes  map[tileKey][]collision.Shape
	skipped int
}

type tileKey struct {
	tileset string
	id      uint32
}

func newShapeTable() *shapeTable {
	return &shapeTable{shapes: make(map[tileKey][]collision.Shape)}
}

// shapesFor returns the collider shapes bound to a placed layer tile,
// decoding and caching them on first sight.
func (t *shapeTable) shapesFor(tile *tiled.LayerTile) []collision.Shape {
	key := tileKey{tileset: tile.Tileset.Name, id: tile.ID}
	if shapes, ok := t.shapes[key]; ok {
		return shapes
	}

	shapes := t.decodeTile(tile)
	t.shapes[key] = shapes
	return shapes
}

func (t *shapeTable) decodeTile(tile *tiled.LayerTile) []collision.Shape {
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		// Tiles without tileset entries have no colliders.
		return nil
	}

	// A "colliders" property holds tagged JSON shape blobs and overrides the
	// tile's drawn object group. Bad entries are skipped, not fatal.
	if blob := tilesetTile.Properties.GetString("colliders"); blob != "" {
		shapes, skipped, err := collision.DecodeShapeList([]byte(blob))
		if err != nil {
			log.Printf("[leveldata] tile %d in %s: colliders property: %v", tile.ID, tile.Tileset.Name, err)
			t.skipped++
			return nil
		}
		if skipped > 0 {
			log.Printf("[leveldata] tile %d in %s: skipped %d undecodable shapes", tile.ID, tile.Tileset.Name, skipped)
			t.skipped += skipped
		}
		return shapes
	}

	var shapes []collision.Shape
	for _, og := range tilesetTile.ObjectGroups {
		for _, obj := range og.Objects {
			shape, ok := objectShape(obj)
			if !ok {
				log.Printf("[leveldata] tile %d in %s: skipped degenerate object %d", tile.ID, tile.Tileset.Name, obj.ID)
				t.skipped++
				continue
			}
			shapes = append(shapes, shape)
		}
	}
	return shapes
}

// objectShape converts a Tiled collision object to a tile-local shape. The
// second return value is false for degenerate geometry (a polygon with fewer
// than three points).
func objectShape(obj *tiled.Object) (collision.Shape, bool) {
	switch {
	case len(obj.Polygons) > 0:
		points := objectPoints(obj, obj.Polygons[0].Points)
		if len(points) < 3 {
			return nil, false
		}
		return collision.Polygon{Points: points}, true

	case len(obj.PolyLines) > 0:
		return collision.Polyline{Points: objectPoints(obj, obj.PolyLines[0].Points)}, true

	case len(obj.Ellipses) > 0:
		return collision.Ellipse{
			X:  obj.X + obj.Width/2,
			Y:  obj.Y + obj.Height/2,
			RX: obj.Width / 2,
			RY: obj.Height / 2,
		}, true

	case obj.Width == 0 && obj.Height == 0:
		// Tiled stores point objects as zero-size plain objects.
		return collision.Point{X: obj.X, Y: obj.Y}, true

	default:
		return collision.Rectangle{X: obj.X, Y: obj.Y, W: obj.Width, H: obj.Height}, true
	}
}

// objectPoints translates a Tiled point list, which is relative to the
// object's origin, into tile-local coordinates.
func objectPoints(obj *tiled.Object, points *tiled.Points) []gamemath.Vec {
	if points == nil {
		return nil
	}
	out := make([]gamemath.Vec, 0, len(*points))
	for _, p := range *points {
		out = append(out, gamemath.Vec{X: obj.X + p.X, Y: obj.Y + p.Y})
	}
	return out
}
