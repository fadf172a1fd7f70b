package chat

import "context"

// ChatProvider opens streaming chat exchanges with one vendor.
type ChatProvider interface {
	// Open sends the request and returns a decoder over the response text.
	// The request is on the wire when Open returns: an unreachable endpoint
	// or a rejected request is reported here as a connection error, never
	// through the decoder.
	Open(ctx context.Context, req Request) (Decoder, error)
}
