// Package apiconnect wires the mosquefund services to Connect: a handler
// constructor and a client constructor per service, both using api.Codec.
package apiconnect

import (
	"connectrpc.com/connect"

	"github.com/mmynk/mosquefund/pkg/api"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
}
