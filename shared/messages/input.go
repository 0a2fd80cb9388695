package messages

// PlayerInput is sent from client to server each frame with the player's
// movement intent. The server clamps Axis and edge-triggers Jump; clients
// keep the sequence number for prediction reconciliation.
type PlayerInput struct {
	Sequence  uint32  // Incrementing ID for reconciliation
	Axis      float64 // Desired horizontal axis in [-1, 1]
	Jump      bool    // Jump button held
	Timestamp int64   // Client timestamp (Unix ms)
}
