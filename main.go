/*
Hello example: opens an OpenGL ES window and cycles the clear colour
until the window is closed, escape is pressed or the process is signalled.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	"github.com/spaghettifunk/glengine/engine"
	"github.com/spaghettifunk/glengine/engine/config"
	"github.com/spaghettifunk/glengine/engine/core"
	"github.com/spaghettifunk/glengine/engine/platform/desktop"
	"github.com/spaghettifunk/glengine/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
}

// run owns every resource it starts, so deferred cleanup always happens
// before main decides the exit code.
func run(configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	applyLogLevel(cfg)

	app, err := cfg.Application()
	if err != nil {
		return err
	}

	if p := startProfile(cfg.Profile); p != nil {
		defer p.Stop()
	}

	if configPath != "" {
		watcher, err := config.Watch(configPath, applyLogLevel)
		if err != nil {
			core.LogWarn("config hot reload disabled: %s", err)
		} else {
			defer watcher.Close()
		}
	}

	p := desktop.New()
	defer p.Terminate()

	e := engine.New[*testbed.TestGame](p)
	tb := testbed.NewTestGame(p, nil)
	tb.Register(e)

	if err := e.CreateFromConfig(app); err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	if err := tb.Initialize(app); err != nil {
		return fmt.Errorf("initialize example: %w", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	// turn signals into a window close so the loop shuts down cleanly
	go func() {
		<-sigCh
		p.RequestClose()
	}()

	e.Loop(tb)
	return nil
}

func applyLogLevel(cfg *config.Config) {
	level, err := cfg.LogLevel()
	if err != nil {
		core.LogWarn("%s", err)
		return
	}
	core.LogSetLevel(level)
}

func startProfile(cfg config.ProfileConfig) interface{ Stop() } {
	var mode func(*profile.Profile)
	switch cfg.Mode {
	case config.ProfileCPU:
		mode = profile.CPUProfile
	case config.ProfileMem:
		mode = profile.MemProfile
	case config.ProfileTrace:
		mode = profile.TraceProfile
	default:
		return nil
	}
	opts := []func(*profile.Profile){mode, profile.NoShutdownHook}
	if cfg.Path != "" {
		opts = append(opts, profile.ProfilePath(cfg.Path))
	}
	return profile.Start(opts...)
}
