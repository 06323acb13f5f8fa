package pb

import (
	"testing"

	"foors"
)

func TestJSONCodecRoundTrip(t *testing.T) {
	var codec jsonCodec

	in := &AddNodeRequest{Type: foors.Sink, Position: foors.Position{X: 1.5, Y: -2}}
	data, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out AddNodeRequest
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Type != in.Type || out.Position != in.Position {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestJSONCodecName(t *testing.T) {
	var codec jsonCodec
	if codec.Name() != CodecName {
		t.Fatalf("Name() = %q, want %q", codec.Name(), CodecName)
	}
}
