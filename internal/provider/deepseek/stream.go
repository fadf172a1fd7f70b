package deepseek

import (
	"errors"
	"io"

	"github.com/cohesion-org/deepseek-go"
	ai "github.com/spetersoncode/chat"
)

// chunkStream is the receive side of a DeepSeek completion stream.
type chunkStream interface {
	Recv() (*deepseek.StreamChatCompletionResponse, error)
	Close() error
}

// decoder yields content deltas. Reasoning deltas from deepseek-reasoner are
// not part of the answer and are skipped.
type decoder struct {
	stream chunkStream
	cur    string
	err    error
	done   bool
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
		if resp == nil || len(resp.Choices) == 0 {
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
	return d.stream.Close()
}

var _ ai.Decoder = (*decoder)(nil)
