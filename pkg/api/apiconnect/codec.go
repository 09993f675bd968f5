// Package apiconnect wires the api messages to Connect handlers and clients.
// The messages are plain Go structs, so they travel with a JSON codec that
// replaces Connect's protobuf defaults.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

const codecName = "json"

// Codec encodes messages with encoding/json.
type Codec struct{}

var _ connect.Codec = Codec{}

func (Codec) Name() string { return codecName }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	// Connect GET requests and empty unary bodies arrive as zero bytes.
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}
