package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/az-ai-labs/en-itn/internal/server"
)

// ServeCmd runs the HTTP and WebSocket server until interrupted.
type ServeCmd struct {
	Addr string `help:"Listen address (default from PORT, :8080)"`
}

func (c *ServeCmd) Run(a *app) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	addr := c.Addr
	if addr == "" {
		addr = a.addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(e, a.logger).ListenAndServe(ctx, addr)
}
