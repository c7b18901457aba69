package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/polkiloo/bilemo/internal/config"
	"github.com/polkiloo/bilemo/internal/logger"
	"github.com/polkiloo/bilemo/internal/pkg/auth"
	"github.com/polkiloo/bilemo/internal/seed"
	"github.com/polkiloo/bilemo/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var seeder *seed.Seeder
	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		fx.Provide(func(s *postgres.Storage) seed.Transactor { return s }),
		seed.Module,
		fx.Populate(&seeder),
	)

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start seeder: %v\n", err)
		os.Exit(1)
	}

	_, runErr := seeder.Run(ctx)

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop seeder: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", runErr)
		os.Exit(1)
	}
}
