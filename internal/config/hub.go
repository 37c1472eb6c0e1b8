package config

import (
	"os"
	"strings"
)

const (
	// DefaultBranch is the hub branch fetched when none is configured.
	DefaultBranch = "main"
	// DefaultDepth requests a shallow clone of the branch tip.
	DefaultDepth = 1

	// TokenEnvVar supplies a token for hub authentication when the spec has none.
	TokenEnvVar = "RULESGEN_TOKEN"
)

// HubConfig describes the hub repository fetched for a generation run.
type HubConfig struct {
	URL               string           `yaml:"url,omitempty"`
	Branch            string           `yaml:"branch,omitempty"`
	Depth             int              `yaml:"depth,omitempty"` // negative requests full history
	Auth              *AuthConfig      `yaml:"auth,omitempty"`
	MaxRetries        int              `yaml:"max_retries,omitempty"`
	RetryBackoff      RetryBackoffMode `yaml:"retry_backoff,omitempty"`
	RetryInitialDelay string           `yaml:"retry_initial_delay,omitempty"`
	RetryMaxDelay     string           `yaml:"retry_max_delay,omitempty"`
}

// AuthType enumerates supported authentication methods (stringly for YAML compatibility)
type AuthType string

const (
	AuthTypeNone  AuthType = "none"
	AuthTypeSSH   AuthType = "ssh"
	AuthTypeToken AuthType = "token"
	AuthTypeBasic AuthType = "basic"
)

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Type     AuthType `yaml:"type"` // ssh|token|basic|none
	Username string   `yaml:"username,omitempty"`
	Password string   `yaml:"password,omitempty"`
	Token    string   `yaml:"token,omitempty"`
	KeyPath  string   `yaml:"key_path,omitempty"`
}

// IsZero reports whether no auth method specified.
func (a *AuthConfig) IsZero() bool { return a == nil || a.Type == "" || a.Type == AuthTypeNone }

// RetryBackoffMode enumerates supported backoff strategies for fetch retries.
type RetryBackoffMode string

const (
	RetryBackoffFixed       RetryBackoffMode = "fixed"
	RetryBackoffLinear      RetryBackoffMode = "linear"
	RetryBackoffExponential RetryBackoffMode = "exponential"
)

// NormalizeRetryBackoff converts user input (case-insensitive) into a typed mode, returning empty string for unknown.
func NormalizeRetryBackoff(raw string) RetryBackoffMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(RetryBackoffFixed):
		return RetryBackoffFixed
	case string(RetryBackoffLinear):
		return RetryBackoffLinear
	case string(RetryBackoffExponential):
		return RetryBackoffExponential
	default:
		return ""
	}
}

func normalizeHub(raw *HubConfig) HubConfig {
	hub := HubConfig{}
	if raw != nil {
		hub = *raw
	}
	hub.URL = strings.TrimSpace(hub.URL)
	hub.Branch = strings.TrimSpace(hub.Branch)
	if hub.Branch == "" {
		hub.Branch = DefaultBranch
	}
	switch {
	case hub.Depth < 0:
		hub.Depth = 0
	case hub.Depth == 0:
		hub.Depth = DefaultDepth
	}
	if hub.MaxRetries < 0 {
		hub.MaxRetries = 0
	}
	if hub.RetryBackoff != "" {
		hub.RetryBackoff = NormalizeRetryBackoff(string(hub.RetryBackoff))
	}
	if hub.Auth.IsZero() {
		if token := os.Getenv(TokenEnvVar); token != "" {
			hub.Auth = &AuthConfig{Type: AuthTypeToken, Token: token}
		}
	}
	return hub
}
