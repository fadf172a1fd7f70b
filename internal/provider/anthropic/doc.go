// Package anthropic streams Claude responses through the official Anthropic Go SDK.
//
// The system prompt travels in the dedicated system field, and only
// text_delta events of content_block_delta frames become fragments.
//
//	c := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//	dec, err := c.Open(ctx, chat.Request{
//	    Prompt: "Explain goroutines briefly.",
//	    Model:  model.Claude37,
//	})
//	if err != nil {
//	    return err
//	}
//	stream := chat.Relay(dec, cancel, log)
//
// SDK retries are disabled so that a rejected request is reported once.
package anthropic
