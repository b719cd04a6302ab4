package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mindflow/src/pkg/canvas"
	"mindflow/src/pkg/cli"
	"mindflow/src/pkg/config"
	"mindflow/src/pkg/event"
	"mindflow/src/pkg/log"
	"mindflow/src/pkg/mindmap"
	"mindflow/src/pkg/session"
)

// frontend selects which interaction surface bootstrap starts.
type frontend int

const (
	frontendCanvas frontend = iota
	frontendREPL
)

// bootstrap initializes and runs the Mindflow application: it loads the
// configuration, starts the logger and event manager, creates the mind
// map controller and session, and hands control to the chosen frontend.
// Returns an error if any part of the initialization or execution fails.
func bootstrap(configPath string, fe frontend) error {
	// Set up channel to receive interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Load configuration
	if configPath != "" {
		config.ConfigSetPath(configPath)
	}
	if err := config.ConfigLoad(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := config.ConfigGet()

	// Initialize logger
	logger, err := log.NewLogger(cfg, log.LevelInfo)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close logger: %v\n", err)
		}
	}()

	ctx := context.Background()
	logger.Info(ctx, "Application started", log.Fields{"config": cfg})

	// Initialize event manager and the mind map controller. The audit
	// observer keeps a record of every mutation in the info log.
	eventManager := event.NewEventManager(logger)
	eventManager.LogMutations()
	controller := mindmap.NewController(cfg, eventManager, logger)
	sess := session.NewSession(controller, logger)

	logger.Info(ctx, "Mind map controller initialized", log.Fields{"activeID": controller.ActiveID()})

	// Create the chosen frontend
	var run func() error
	var stop func()
	switch fe {
	case frontendREPL:
		cliInstance, err := cli.NewCLI(sess)
		if err != nil {
			logger.Error(ctx, "Failed to initiate CLI", log.Fields{"error": err})
			return fmt.Errorf("failed to initiate CLI: %w", err)
		}
		run, stop = cliInstance.Run, cliInstance.Stop
	default:
		editor, err := canvas.NewEditor(sess, cfg.Canvas)
		if err != nil {
			logger.Error(ctx, "Failed to initiate canvas", log.Fields{"error": err})
			return fmt.Errorf("failed to initiate canvas: %w", err)
		}
		run, stop = editor.Run, editor.Stop
	}

	// An interrupt asks the frontend to wind down; the run call below
	// returns and the deferred logger close runs as usual.
	go func() {
		<-sigChan
		logger.Info(ctx, "Received interrupt signal, shutting down", nil)
		fmt.Println("\nReceived interrupt signal. Shutting down...")
		stop()
	}()

	if err := run(); err != nil {
		logger.Error(ctx, "Frontend error", log.Fields{"error": err})
		return err
	}

	logger.Info(ctx, "Application shutting down", nil)
	return nil
}
