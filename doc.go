// Package chat provides vendor-neutral types for streaming a single prompt to
// a hosted LLM provider.
//
// A [Request] names the prompt, an optional system instruction, a [Model]
// (which knows its [Provider]), the credential and an output token cap. The
// [github.com/spetersoncode/chat/client] package submits requests and returns
// a [Stream] of text fragments in generation order; the
// [github.com/spetersoncode/chat/model] package holds the model catalog.
//
// # Streaming
//
//	stream, err := c.Submit(ctx, chat.Request{
//	    Prompt:    "Say hi",
//	    Model:     model.GPT4o,
//	    APIKey:    os.Getenv("OPENAI_API_KEY"),
//	    MaxTokens: 16,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for fragment := range stream.All() {
//	    fmt.Print(fragment)
//	}
//	if err := stream.Err(); err != nil {
//	    log.Printf("stream ended early: %v", err)
//	}
//
// The end of the fragment sequence is the only in-band completion signal.
// A transport failure in the middle of a stream ends the sequence early; the
// failure is logged and reported by [Stream.Err].
//
// # Errors
//
// Submit fails synchronously with a categorized [*Error]:
//
//   - [ErrorConfiguration]: missing credential, unsupported provider, invalid cap
//   - [ErrorMalformedRequest]: empty prompt or text that cannot be encoded
//   - [ErrorConnection]: the vendor stream could not be opened
//
// Use [IsConfiguration], [IsConnection] and [IsMalformedRequest] to classify.
//
// # Cancellation
//
// Call [Stream.Close], or cancel the context passed to Submit, to abandon a
// stream. The producer goroutine releases the vendor connection and exits;
// [Stream.Done] is closed when it has.
package chat
