// Package model provides the chat model catalog for all supported providers.
//
// Models know their provider, enabling automatic routing in the client:
//
//	stream, err := c.Submit(ctx, chat.Request{
//	    Prompt: "Explain goroutines briefly.",
//	    Model:  model.Claude37,
//	    APIKey: os.Getenv("ANTHROPIC_API_KEY"),
//	})
//
// Models outside the catalog are selected with [Custom], which passes the
// identifier through unchanged:
//
//	m := model.Custom(chat.ProviderOpenAI, "gpt-4.1-nano")
//
// [Parse] resolves the names accepted by the command line.
package model
