// Package source picks the library a reel shows from the config.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/jellyfin"
	"github.com/depeter/jellyreel/internal/library"
)

// PasswordEnv names the environment variable read for a Jellyfin password.
const PasswordEnv = "JELLYREEL_PASSWORD"

// ErrNeedLogin means a server is configured without a saved token or a
// password to sign in with.
var ErrNeedLogin = errors.New("jellyfin server needs a login")

// Open returns the configured library source. A Jellyfin server wins over a
// poster folder; with neither, the demo library is used. A fresh sign-in
// stores the new token in cfg and the caller saves it.
func Open(ctx context.Context, cfg *config.Config) (library.Source, error) {
	if cfg.Server.URL == "" {
		if cfg.Library.Dir != "" {
			return library.DirSource{Root: cfg.Library.Dir}, nil
		}
		return library.DemoSource{}, nil
	}

	pass := os.Getenv(PasswordEnv)
	if cfg.Server.Token == "" && pass == "" {
		return nil, ErrNeedLogin
	}
	c, err := jellyfin.Connect(cfg.Server.URL, cfg.Server.Username, pass, cfg.Server.Token, cfg.Server.UserID)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Server.URL, err)
	}
	Remember(cfg, c)
	return c.WithContext(ctx), nil
}

// Remember copies a signed-in client's credentials into cfg.
func Remember(cfg *config.Config, c *jellyfin.Client) {
	cfg.Server.URL = c.ServerURL()
	cfg.Server.Token = c.Token()
	cfg.Server.UserID = c.UserID()
}
