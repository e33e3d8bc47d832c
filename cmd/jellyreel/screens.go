package main

import (
	"log"

	"github.com/depeter/jellyreel/internal/app"
	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/jellyfin"
	"github.com/depeter/jellyreel/internal/library"
	"github.com/depeter/jellyreel/internal/source"
	"github.com/depeter/jellyreel/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game *app.Game
	cfg  *config.Config
}

func (sf *screenFactory) pushLogin() {
	var (
		client   *jellyfin.Client
		username string
	)
	login := ui.NewLoginScreen(sf.cfg.Server.URL, sf.cfg.Server.Username)
	login.Connect = func(server, user, pass string) error {
		c, err := jellyfin.Connect(server, user, pass, "", "")
		if err != nil {
			return err
		}
		client, username = c, user
		return nil
	}
	login.OnConnected = func() {
		source.Remember(sf.cfg, client)
		sf.cfg.Server.Username = username
		if err := sf.cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		sf.pushReel(client)
	}
	sf.game.Screens.Replace(login)
}

func (sf *screenFactory) pushReel(src library.Source) {
	log.Printf("Showing library %s", src.Name())
	rs := ui.NewReelScreen(src, sf.game.Posters, ui.ReelScreenOptions{
		Reel:         sf.game.ReelOptions(),
		Keys:         sf.game.Keys,
		Limit:        sf.cfg.Library.Limit,
		Shelf:        sf.cfg.Library.Shelf,
		InitialIndex: sf.cfg.Gallery.InitialIndex,
	})
	rs.OnItemActivated = func(item library.Item) {
		sf.pushDetail(item, rs.StepSelection)
	}
	sf.game.Screens.Replace(rs)
}

func (sf *screenFactory) pushDetail(item library.Item, step func(int) (library.Item, bool)) {
	detail := ui.NewDetailScreen(item, sf.game.Posters, sf.game.Keys)
	detail.Step = step
	sf.game.Screens.Push(detail)
}
