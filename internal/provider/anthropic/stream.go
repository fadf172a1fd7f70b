package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	ai "github.com/spetersoncode/chat"
)

// decoder yields text deltas from a Messages event stream. Message and block
// boundaries, thinking and tool input deltas are skipped.
type decoder struct {
	stream *ssestream.Stream[anthropic.MessageStreamEventUnion]
	cur    string
}

func (d *decoder) Next() bool {
	for d.stream.Next() {
		event := d.stream.Current()
		if event.Type != "content_block_delta" {
			continue
		}
		delta := event.AsContentBlockDelta()
		if textDelta := delta.Delta.AsTextDelta(); textDelta.Type == "text_delta" && textDelta.Text != "" {
			d.cur = textDelta.Text
			return true
		}
	}
	d.cur = ""
	return false
}

func (d *decoder) Fragment() string { return d.cur }

func (d *decoder) Err() error { return wrapError(d.stream.Err()) }

func (d *decoder) Close() error { return d.stream.Close() }

var _ ai.Decoder = (*decoder)(nil)
