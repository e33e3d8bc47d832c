package source

import (
	"context"
	"errors"
	"testing"

	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/jellyfin"
	"github.com/depeter/jellyreel/internal/library"
)

func TestOpen(t *testing.T) {
	t.Setenv(PasswordEnv, "")

	t.Run("demo", func(t *testing.T) {
		src, err := Open(context.Background(), config.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := src.(library.DemoSource); !ok {
			t.Errorf("source = %T, want DemoSource", src)
		}
	})

	t.Run("dir", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Library.Dir = "/srv/posters"
		src, err := Open(context.Background(), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if d, ok := src.(library.DirSource); !ok || d.Root != "/srv/posters" {
			t.Errorf("source = %#v", src)
		}
	})

	t.Run("server without credentials", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Server.URL = "http://jf.local:8096"
		cfg.Library.Dir = "/srv/posters"
		if _, err := Open(context.Background(), cfg); !errors.Is(err, ErrNeedLogin) {
			t.Errorf("err = %v, want ErrNeedLogin", err)
		}
	})

	t.Run("server with token", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Server.URL = "jf.local:8096/"
		cfg.Server.Token = "tok"
		cfg.Server.UserID = "u1"
		src, err := Open(context.Background(), cfg)
		if err != nil {
			t.Fatal(err)
		}
		c, ok := src.(*jellyfin.Client)
		if !ok {
			t.Fatalf("source = %T, want *jellyfin.Client", src)
		}
		if c.Token() != "tok" || c.UserID() != "u1" {
			t.Errorf("client token %q user %q", c.Token(), c.UserID())
		}
		if cfg.Server.URL != c.ServerURL() {
			t.Errorf("config url %q not updated to %q", cfg.Server.URL, c.ServerURL())
		}
	})
}
