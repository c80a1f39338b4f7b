package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/1broseidon/sill/internal/mcp"
	"github.com/1broseidon/sill/platform"
	"github.com/1broseidon/sill/window"
)

func runWindow(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Path to config file (default: ~/.config/sill/config.yaml)")
	title := fs.String("title", "", "Window title (overrides config)")
	headless := fs.Bool("headless", false, "Use the in-memory backend instead of the display server")
	serveMCP := fs.Bool("mcp", false, "Expose the window over MCP on stdio")
	debug := fs.Bool("debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := newLogger(*debug)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		return 1
	}
	if *title != "" {
		cfg.Title = *title
	}

	backend, err := newBackend(*headless)
	if err != nil {
		log.Error("failed to connect to display", "error", err)
		return 1
	}
	defer backend.Shutdown()

	opts := cfg.WindowOptions()
	opts.Logger = log
	win, err := window.New(backend, opts)
	if err != nil {
		log.Error("failed to create window", "error", err)
		return 1
	}

	win.OnResize(func(size window.Size) {
		log.Debug("window resized", "width", size.Width, "height", size.Height)
	})
	win.OnFocus(func(focused bool) {
		log.Debug("focus changed", "focused", focused)
	})
	win.OnClosed(func() {
		log.Info("window closed")
	})

	// Signals arrive on an arbitrary goroutine; Close marshals onto the
	// pump thread.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("shutting down", "signal", sig.String())
		if err := win.Close(); err != nil {
			log.Warn("close on signal failed", "error", err)
		}
	}()

	if *serveMCP {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		server := mcp.NewServer(win, log)
		go func() {
			if err := server.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("mcp server stopped", "error", err)
			}
		}()
	}

	if err := win.Show(); err != nil {
		log.Error("failed to show window", "error", err)
		return 1
	}

	log.Info("window running", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	if err := win.Run(); err != nil {
		log.Error("event pump failed", "error", err)
		return 1
	}
	return 0
}

func newBackend(headless bool) (platform.Backend, error) {
	if headless {
		return platform.NewStubBackend(), nil
	}
	backend, err := platform.NewNativeBackend()
	if err != nil {
		return nil, fmt.Errorf("native backend: %w", err)
	}
	return backend, nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	// Human-readable logs on a terminal, JSON when redirected.
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
