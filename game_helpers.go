package main

import (
	"context"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// loadConfig reads the config file, falling back to defaults when the default file is absent
func loadConfig(path string, explicit bool) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config, nil
	}
	if !explicit && os.IsNotExist(errors.Cause(err)) {
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// initializeGame builds an engine holding the first generation
func initializeGame(config utils.Config, stats *utils.Stats) (*model.Engine, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := model.NewEngine(config.Width, config.Height,
		model.WithRand(model.NewRand(seed)),
		model.WithStats(stats),
	)

	if config.Pattern == utils.PatternRandom {
		engine.Seed()
		return engine, nil
	}

	pattern, err := model.LookupPattern(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to load pattern")
	}
	engine.Place(pattern, (config.Width-pattern.Width)/2, (config.Height-pattern.Height)/2)
	return engine, nil
}

// runGame drives the engine on the configured display until it stops or ctx is cancelled
func runGame(ctx context.Context, config utils.Config, engine *model.Engine) (int, error) {
	if config.Renderer != utils.RendererScreen {
		renderer, err := model.NewTerminalRenderer(os.Stdout, config.Palette)
		if err != nil {
			return 0, err
		}
		return engine.Run(ctx, renderer, config.FrameRate)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, errors.Wrap(err, "[runGame] failed to open terminal screen")
	}
	renderer, err := model.NewScreenRenderer(screen, os.Stdout, config.Palette)
	if err != nil {
		return 0, err
	}

	// The simulation itself stays on one goroutine; the second only reads keys.
	var (
		eg, egCtx  = errgroup.WithContext(ctx)
		generation int
	)
	eg.Go(func() error {
		defer renderer.Close()
		var runErr error
		generation, runErr = engine.Run(egCtx, renderer, config.FrameRate)
		return runErr
	})
	eg.Go(renderer.PollQuit)

	err = eg.Wait()
	return generation, err
}

// isShutdown reports whether err only means the user asked to stop
func isShutdown(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, model.ErrQuit)
}
