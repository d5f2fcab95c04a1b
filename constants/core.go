package constants

import "time"

// Input Constants
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	// Terminals report auto-repeat but no release, so holding is emulated
	// Must exceed the first auto-repeat delay (typically 250-600 ms)
	KeyHoldWindow = 650 * time.Millisecond
)

// Spectator Constants
const (
	// SpectateBroadcastInterval is the spectator snapshot interval (20 Hz)
	SpectateBroadcastInterval = 50 * time.Millisecond

	// SpectateSendBuffer is the per-client frame buffer before the client is dropped
	SpectateSendBuffer = 16

	// SpectateWriteTimeout bounds a single websocket write
	SpectateWriteTimeout = 2 * time.Second
)

// Logging Constants
const (
	LogDir      = "logs"
	LogFileName = "spacewar.log"

	// MaxLogSize triggers rotation of the previous log file (10 MiB)
	MaxLogSize = 10 * 1024 * 1024
)
