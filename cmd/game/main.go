// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/audio"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/injector"
	"go-space-shooter/internal/logging"
	"go-space-shooter/internal/state"
	"go-space-shooter/internal/ui"
	"go-space-shooter/pkg/render/ebitendev"
)

type AppGame struct {
	stateMachine  *state.StateMachine
	width, height int
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	profileMode := flag.String("profile", "", "write a cpu or mem profile into the current directory")
	startInMenu := flag.Bool("menu", false, "start from the title screen")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileMode)
	}
	if *pprofAddr != "" {
		go func() {
			logger.Warn("pprof server stopped", zap.Error(http.ListenAndServe(*pprofAddr, nil)))
		}()
	}

	universe := injector.InitializeUniverse(cfg, logger)

	if cfg.Audio.Enabled {
		sfx := audio.New(logger.Named("audio"))
		if err := sfx.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			sfx.Subscribe(universe.Events)
			defer sfx.Close()
		}
	}

	face, err := ui.LoadFace(18)
	if err != nil {
		return err
	}
	atlas := ebitendev.NewAtlas(assets.SpriteGlyphs(), config.SpriteCellSize)
	dev := ebitendev.New(atlas, logger.Named("ebiten"))
	// без рендера игра продолжает работать, F5 повторит попытку
	_ = universe.AttachRenderer(app.NewRendererFactory(dev, app.NewShaderLibrary(cfg, logger), cfg, logger))

	sm := state.NewStateMachine()
	game := state.NewGameState(sm, universe, dev, face, cfg, logger)
	if *startInMenu {
		sm.SetState(state.NewMenuState(sm, game))
	} else {
		sm.SetState(game)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	logger.Info("starting", zap.String("title", cfg.Window.Title), zap.Int("max_sprites", cfg.Render.MaxSprites))
	return ebiten.RunGame(&AppGame{stateMachine: sm, width: cfg.Window.Width, height: cfg.Window.Height})
}
