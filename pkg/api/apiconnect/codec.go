// Package apiconnect wires the api messages to Connect handlers and clients.
//
// The services are served over the Connect protocol with a JSON codec
// registered under the standard "json" name, so browsers can call them
// with a plain fetch and a Content-Type of application/json.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec marshals api messages with encoding/json.
type Codec struct{}

var _ connect.Codec = Codec{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}

func withCodec[T any](opts []T, codec T) []T {
	return append([]T{codec}, opts...)
}
