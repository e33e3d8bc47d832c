// Command jellyreel-term browses a library reel in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/depeter/jellyreel/internal/cache"
	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/source"
	"github.com/depeter/jellyreel/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "jellyreel-term:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = filepath.Join(os.TempDir(), "jellyreel")
	}
	// The terminal is ours while the reel runs; log to a file instead.
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(filepath.Join(configDir, "term.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	token := cfg.Server.Token
	src, err := source.Open(context.Background(), cfg)
	if errors.Is(err, source.ErrNeedLogin) {
		return fmt.Errorf("%w: sign in with the desktop app or set %s", err, source.PasswordEnv)
	}
	if err != nil {
		return err
	}
	if cfg.Server.Token != token {
		if err := cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	// Posters are only sampled for a tint color, so keep them small.
	images, err := cache.NewImageCache(filepath.Join(configDir, "cache", "images"), 64, 96)
	if err != nil {
		log.Printf("Poster tints disabled: %v", err)
		images = nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app := term.New(screen, src, images, term.Options{
		Axis:            cfg.Axis(),
		CallbackInFling: cfg.Gallery.CallbackInFling,
		MinScale:        cfg.Gallery.MinScale,
		DPI:             cfg.Gallery.DPI,
		CardWidth:       cfg.Term.CardWidth,
		CardHeight:      cfg.Term.CardHeight,
		Limit:           cfg.Library.Limit,
		Shelf:           cfg.Library.Shelf,
		InitialIndex:    cfg.Gallery.InitialIndex,
	})
	if cfg.Term.Sound {
		clicker, err := term.NewClicker()
		if err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer clicker.Close()
			app.Clicker = clicker
		}
	}
	return app.Run()
}
