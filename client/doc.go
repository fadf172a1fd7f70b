// Package client provides the multi-provider entry point for streaming chat.
//
// The Client routes each request to the provider of its model and returns a
// [chat.Stream] of text fragments:
//
//   - Model-centric routing: models know their provider; switching is automatic
//   - Fail-fast validation: missing keys and bad models never reach the network
//   - Event emission: observable operations via channel
//
// # Basic Usage
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{
//	        OpenAI:    os.Getenv("OPENAI_API_KEY"),
//	        Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
//	    },
//	    DefaultModel: model.GPT4o,
//	})
//
//	stream, err := c.Submit(ctx, chat.Request{Prompt: "Say hi", MaxTokens: 16})
//	if err != nil {
//	    return err // configuration, malformed request or connection error
//	}
//	for fragment := range stream.All() {
//	    fmt.Print(fragment)
//	}
//	if err := stream.Err(); err != nil {
//	    // the stream ended early
//	}
//
// # Model-Centric Routing
//
//	// Routes to Anthropic
//	c.Submit(ctx, chat.Request{Prompt: p, Model: model.Claude37})
//
//	// Routes to an OpenRouter upstream chosen by OpenRouter
//	c.Submit(ctx, chat.Request{Prompt: p, Model: model.OpenRouterAuto})
//
// # Gateways and test servers
//
// [Config].BaseURLs points a provider at another endpoint, for example an
// OpenAI-compatible gateway:
//
//	c := client.New(client.Config{
//	    BaseURLs: client.BaseURLs{OpenAI: "http://localhost:8080/v1/"},
//	})
//
// # Events
//
// Submit emits [EventSubmitStart], then either [EventSubmitError] or
// [EventStreamOpen] followed by [EventStreamEnd] once the stream finishes.
// Events are sent without blocking and dropped when the channel is full.
package client
