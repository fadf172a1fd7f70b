package google

import (
	"strings"

	ai "github.com/spetersoncode/chat"
	"google.golang.org/genai"
)

// decoder yields the visible text of each streamed response. Thought parts
// and responses without text (usage, finish reason) are skipped.
type decoder struct {
	next    func() (*genai.GenerateContentResponse, error, bool)
	stop    func()
	pending *genai.GenerateContentResponse
	done    bool
	cur     string
	err     error
}

func (d *decoder) Next() bool {
	d.cur = ""
	for !d.done {
		resp := d.pending
		d.pending = nil
		if resp == nil {
			var err error
			var ok bool
			resp, err, ok = d.next()
			if !ok {
				d.done = true
				return false
			}
			if err != nil {
				d.done = true
				d.err = wrapError(err)
				return false
			}
		}

		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			d.done = true
			blocked := &BlockedError{Reason: string(resp.PromptFeedback.BlockReason)}
			d.err = ai.NewConnectionError("google: prompt blocked", 0, blocked)
			return false
		}

		if text := responseText(resp); text != "" {
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
	if d.stop != nil {
		d.stop()
	}
	return nil
}

// responseText concatenates the non-thought text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

var _ ai.Decoder = (*decoder)(nil)
