package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/config"
	"digitalcafe/cafectl/internal/events"
	"digitalcafe/cafectl/internal/session"
	"digitalcafe/cafectl/internal/views"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Load the persisted session, if any
	sess := session.NewStore(cfg.SessionFile)
	if err := sess.Load(); err != nil {
		log.Fatalf("Failed to load session: %v", err)
	}

	// 3. Wire bus, API client and views
	bus := events.NewBus()
	client := api.NewClient(api.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.HTTPTimeout,
	}, sess, bus)
	v := views.New(client, sess, bus, os.Stdout)

	// The session-expired signal is consumed exactly once, here.
	bus.Subscribe(events.TopicSession, func(events.Topic) {
		fmt.Fprintln(os.Stderr, "Session expired. Sign in again with 'cafectl login'.")
	})

	// 4. Run; Ctrl-C cancels any in-flight request
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(v)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
