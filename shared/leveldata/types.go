// Package leveldata provides TMX level parsing shared between the engine and
// the server. Collider shapes are authored per tileset tile, decoded once at
// load time, and projected to world space for every placement. It has no
// dependencies on donburi or the network layer — pure data only.
package leveldata

// Level holds everything the physics engine needs from one parsed map.
type Level struct {
	Name        string
	PixelWidth  int
	PixelHeight int
	TileWidth   int
	TileHeight  int
	Colliders   *ColliderSet
	SpawnPoints []SpawnPoint

	// ShapesSkipped counts collider shapes dropped during load because they
	// failed to decode or were degenerate. Load-time diagnostics only; the
	// remaining colliders are unaffected.
	ShapesSkipped int
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
