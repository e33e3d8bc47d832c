package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/jellyreel/assets/icon"
	"github.com/depeter/jellyreel/internal/app"
	"github.com/depeter/jellyreel/internal/cache"
	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/source"
	"github.com/depeter/jellyreel/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	cacheDir := filepath.Join(os.TempDir(), "jellyreel", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir, ui.PosterWidth*2, ui.PosterHeight*2)
	if err != nil {
		log.Fatalf("Failed to init image cache: %v", err)
	}

	game := app.NewGame(cfg, imgCache)
	sf := &screenFactory{game: game, cfg: cfg}

	token := cfg.Server.Token
	src, err := source.Open(context.Background(), cfg)
	switch {
	case errors.Is(err, source.ErrNeedLogin):
		sf.pushLogin()
	case err != nil:
		log.Printf("Library unavailable, showing login: %v", err)
		sf.pushLogin()
	default:
		if cfg.Server.Token != token {
			if err := cfg.Save(); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
		}
		sf.pushReel(src)
	}

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("JellyReel")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
