// Package llm provides a minimal client for chat-completions style LLM APIs.
//
// The client sends a {model, messages, temperature} payload and returns the
// first choice's message content. It is intentionally provider-agnostic:
// any endpoint speaking the OpenAI chat-completions wire format works.
//
// # Error Handling
//
// Non-200 responses are decoded through the common error envelope
// ({"error": {"message": ...}}) with fallbacks for providers that use
// "description" instead, so batch callers can surface actionable messages.
//
// # Timeouts
//
// Every request is bounded by the configured per-request timeout (default
// 60s) in addition to whatever deadline the caller's context carries.
package llm
