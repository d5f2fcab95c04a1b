package spectate

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/spacewar/engine"
)

// Frame is one spectator update: the active mode and the round state
type Frame struct {
	Mode     string          `msgpack:"mode"`
	Snapshot engine.Snapshot `msgpack:"snapshot"`
}

// Encode marshals a frame to its msgpack wire form
func Encode(f *Frame) ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return data, nil
}

// Decode unmarshals a frame received from the feed
func Decode(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	return f, nil
}
