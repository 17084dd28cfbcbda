// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/injector"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/logging"
	"go-space-shooter/pkg/render/termdev"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	fps := flag.Int("fps", 30, "frames per second")
	logPath := flag.String("log", "shooter-tui.log", "log file; the terminal is busy with the game")
	cpuProfile := flag.Bool("cpuprofile", false, "write a cpu profile into the current directory")
	flag.Parse()

	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}
	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}
	if cfg.Logging.Output == "" || cfg.Logging.Output == "stderr" || cfg.Logging.Output == "stdout" {
		cfg.Logging.Output = *logPath
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	universe := injector.InitializeUniverse(cfg, logger)
	dev := termdev.New(screen, assets.SpriteGlyphs(), logger.Named("term"))
	_ = universe.AttachRenderer(app.NewRendererFactory(dev, app.NewShaderLibrary(cfg, logger), cfg, logger))

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()
	keys := newAutoRelease(*fps / 2)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
					logger.Info("quit", zap.Int("score", universe.Session.Score))
					return nil
				}
				switch k := translate(ev); k {
				case input.KeyPause:
					universe.TogglePause()
					keys.clear()
					universe.Input.Clear()
				case input.KeyReload:
					if err := universe.ReloadRenderer(); err == nil {
						logger.Info("renderer reloaded")
					}
				default:
					keys.press(universe.Input, k)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			universe.Update()
			keys.tick(universe.Input)
			if !universe.HasRenderer() {
				screen.Clear()
			}
			universe.Render()
			drawStatus(screen, universe.Status())
			dev.Present()
		}
	}
}

func drawStatus(screen tcell.Screen, status string) {
	w, _ := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		screen.SetContent(x, 0, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		screen.SetContent(x, 0, ' ', nil, style)
	}
}
