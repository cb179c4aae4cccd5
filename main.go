package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"gridshooter/config"
	"gridshooter/driver/asset"
	ebitendriver "gridshooter/driver/ebiten"
	"gridshooter/driver/terminal"
	"gridshooter/engine"
	"gridshooter/game"
	"gridshooter/world"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gridshooter:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, flags)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	level, err := loadLevel(cfg.Level)
	if err != nil {
		return err
	}

	textures, err := cfg.TexturePaths()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var driver engine.Driver
	switch cfg.Driver {
	case "terminal":
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "open terminal")
		}
		if err := screen.Init(); err != nil {
			return errors.Wrap(err, "init terminal")
		}
		defer screen.Fini()

		images, err := asset.Images(textures)
		if err != nil {
			return err
		}
		driver = terminal.New(screen, images, terminal.Options{
			Width:  cfg.Screen.Width,
			Height: cfg.Screen.Height,
			FPS:    cfg.Screen.FPS,
		}, logger)
	default:
		driver, err = ebitendriver.New(ebitendriver.Options{
			Title:    "gridshooter",
			Width:    cfg.Screen.Width,
			Height:   cfg.Screen.Height,
			FPS:      cfg.Screen.FPS,
			Textures: textures,
			Sounds:   cfg.SoundPaths(),
		}, logger)
		if err != nil {
			return err
		}
	}

	g, err := game.New(driver, cfg, level, logger)
	if err != nil {
		return err
	}

	err = g.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Debug {
		zc = zap.NewDevelopmentConfig()
	}
	// stderr would scribble over the terminal game
	if cfg.Driver == "terminal" {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

func loadLevel(path string) (*world.Level, error) {
	if path == "" {
		return world.DefaultLevel(), nil
	}
	return world.OpenLevel(path)
}
