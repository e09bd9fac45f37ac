package config

import "time"

// Config is the root configuration for the Sheets client.
type Config struct {
	Credentials CredentialsConfig `koanf:"credentials"`
	Log         LogConfig         `koanf:"log"`
	Retry       RetryConfig       `koanf:"retry"`
}

// CredentialsConfig locates the service account used for API access.
// An empty file path falls back to ambient credential discovery
// (GOOGLE_APPLICATION_CREDENTIALS, metadata server).
type CredentialsConfig struct {
	File string `koanf:"file"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `koanf:"pretty"`
}

// RetryConfig bounds the retry policy applied to every remote call.
// MaxRetries counts classified-transient failures absorbed before the
// single unconditional final attempt; Backoff is the fixed delay
// between attempts.
type RetryConfig struct {
	MaxRetries int           `koanf:"maxretries" validate:"gte=1"`
	Backoff    time.Duration `koanf:"backoff" validate:"gt=0"`
}
