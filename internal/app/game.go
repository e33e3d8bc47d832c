package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/jellyreel/internal/cache"
	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Posters *ui.Posters
	Screens *ui.ScreenManager
	Keys    ui.Keymap

	Width, Height int
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, imgCache *cache.ImageCache) *Game {
	return &Game{
		Config:  cfg,
		Cache:   imgCache,
		Posters: ui.NewPosters(imgCache),
		Screens: ui.NewScreenManager(),
		Keys:    KeymapFromConfig(cfg.Keybinds, cfg.Axis()),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
}

// ReelOptions returns the reel settings from the config.
func (g *Game) ReelOptions() ui.ReelOptions {
	return ui.ReelOptions{
		Axis:            g.Config.Axis(),
		CallbackInFling: g.Config.Gallery.CallbackInFling,
		MinScale:        g.Config.Gallery.MinScale,
		DPI:             g.Config.Gallery.DPI,
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screens.Current())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
