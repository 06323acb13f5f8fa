// Package pb defines the wire messages and service descriptor for the
// foors daemon. There is no protoc code-generation step in this
// environment, so the request/response types below are hand-authored
// plain structs and the service is wired directly against grpc's
// ServiceDesc/MethodDesc machinery — the same shapes protoc-gen-go-grpc
// would emit, just written by hand. Messages travel as JSON rather than
// protobuf wire format, via the jsonCodec registered below and selected
// per call with grpc.CallContentSubtype.
package pb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return CodecName }
