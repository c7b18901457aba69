package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// run starts app and blocks until ctx is cancelled or app asks to shut down.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}
