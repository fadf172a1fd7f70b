package openai

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/ssestream"
	ai "github.com/spetersoncode/chat"
)

// decoder yields the content deltas of a chat completion stream. Chunks with
// no choices (usage) or an empty delta (role, tool calls, finish) are skipped.
type decoder struct {
	stream *ssestream.Stream[openai.ChatCompletionChunk]
	cur    string
}

func (d *decoder) Next() bool {
	for d.stream.Next() {
		chunk := d.stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if text := chunk.Choices[0].Delta.Content; text != "" {
			d.cur = text
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
