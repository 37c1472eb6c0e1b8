package git

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"git.home.luguber.info/inful/rulesgen/internal/config"
	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

// authMethod creates a go-git AuthMethod for the hub auth config.
func authMethod(auth *config.AuthConfig) (transport.AuthMethod, error) {
	switch auth.Type {
	case config.AuthTypeNone, "":
		return nil, nil

	case config.AuthTypeSSH:
		keyPath := auth.KeyPath
		if keyPath == "" {
			home, _ := os.UserHomeDir()
			keyPath = filepath.Join(home, ".ssh", "id_rsa")
		}
		publicKeys, err := ssh.NewPublicKeysFromFile("git", keyPath, auth.Password)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryAuth, "failed to load SSH key").
				UserAction().
				WithContext("path", keyPath).
				Build()
		}
		return publicKeys, nil

	case config.AuthTypeToken:
		if auth.Token == "" {
			return nil, errors.AuthError("token authentication requires a token").
				WithContext("env", config.TokenEnvVar).
				Build()
		}
		username := auth.Username
		if username == "" {
			username = "token" // GitHub/GitLab accept any non-empty username with a token
		}
		return &http.BasicAuth{Username: username, Password: auth.Token}, nil

	case config.AuthTypeBasic:
		if auth.Username == "" || auth.Password == "" {
			return nil, errors.AuthError("basic authentication requires username and password").Build()
		}
		return &http.BasicAuth{Username: auth.Username, Password: auth.Password}, nil

	default:
		return nil, errors.ConfigError("unsupported authentication type: " + string(auth.Type)).
			WithContext("field", "hub.auth.type").
			Build()
	}
}
