package llm

// Config holds configuration for the LLM chat-completions API.
type Config struct {
	// Endpoint is the URL of the chat-completions API.
	Endpoint string `mapstructure:"endpoint" default:"https://api.openai.com/v1/chat/completions"`
	// ApiKey is the bearer token used for authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// Model is the model identifier sent with each request.
	Model string `mapstructure:"model" default:"gpt-4o-mini"`
	// Temperature is the sampling temperature sent with each request.
	Temperature float64 `mapstructure:"temperature" default:"0.1"`
	// BatchSize is the number of entries sent per correction request.
	BatchSize int `mapstructure:"batch_size" default:"10"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
