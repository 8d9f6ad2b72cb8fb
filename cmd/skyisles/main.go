package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gekko3d/skyisles"
)

func main() {
	configPath := flag.String("config", "skyisles.yaml", "path to the YAML config file")
	watch := flag.Bool("watch", true, "reload the config file when it changes")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *watch, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, watch, debug bool) error {
	cfg, err := skyisles.LoadConfig(configPath)
	if err != nil {
		return err
	}
	cfg.Debug = cfg.Debug || debug

	logger := skyisles.NewDefaultLogger("skyisles", cfg.Debug)
	defer logger.Sync()

	window, err := createWindowState(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		return err
	}
	defer window.Destroy()

	var updates <-chan skyisles.Config
	if watch {
		watcher, err := skyisles.WatchConfig(configPath, logger)
		if err != nil {
			logger.Warnf("config hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			updates = watcher.Updates()
		}
	}

	app := skyisles.NewAppBuilder().
		UseModule(
			skyisles.LoggingModule{Logger: logger},
			skyisles.TimeModule{},
			skyisles.WorldModule{Config: cfg, Viewport: window},
			skyisles.ConfigReloadModule{Updates: updates},
			skyisles.InputModule{},
			windowModule{window: window},
			skyisles.CameraControlModule{},
			skyisles.AnimationModule{},
			skyisles.RenderModule{Name: "stats", Renderer: skyisles.NewFrameStatsRenderer(logger)},
		).
		Build()

	app.Run()
	logger.Infof("shutting down")
	return nil
}
