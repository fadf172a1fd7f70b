package openrouter

import (
	"errors"
	"io"

	"github.com/revrost/go-openrouter"
	ai "github.com/spetersoncode/chat"
)

// chunkStream is the receive side of an OpenRouter completion stream. The
// SDK's Close reports nothing and panics when called twice.
type chunkStream interface {
	Recv() (openrouter.ChatCompletionStreamResponse, error)
	Close()
}

// decoder yields content deltas. Chunks without choices or text are skipped.
type decoder struct {
	stream chunkStream
	cur    string
	err    error
	done   bool
	closed bool
}

func (d *decoder) Next() bool {
	d.cur = ""
	for !d.done {
		resp, err := d.stream.Recv()
		if errors.Is(err, io.EOF) {
			d.done = true
			return false
		}
		if err != nil {
			d.done = true
			d.err = wrapError(err)
			return false
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if text := resp.Choices[0].Delta.Content; text != "" {
			d.cur = text
			return true
		}
	}
	return false
}

func (d *decoder) Fragment() string { return d.cur }

func (d *decoder) Err() error { return d.err }

func (d *decoder) Close() error {
	d.done = true
	if !d.closed {
		d.closed = true
		d.stream.Close()
	}
	return nil
}

var (
	_ ai.Decoder  = (*decoder)(nil)
	_ chunkStream = (*openrouter.ChatCompletionStream)(nil)
)
