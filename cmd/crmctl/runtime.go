package main

import (
	"context"
	"fmt"

	"github.com/ldanie38/geniuscrm/internal/application/services"
	"github.com/ldanie38/geniuscrm/internal/config"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/infrastructure/database"
	"github.com/ldanie38/geniuscrm/pkg/logging"
	"go.uber.org/zap"
)

type tagSeeder interface {
	Seed(ctx context.Context, seeds []services.SeedTag) (int, error)
}

type operatorCreator interface {
	CreateOperator(ctx context.Context, username, email, password string, staff bool) (*models.User, error)
	SetStaff(ctx context.Context, username string, staff bool) (*models.User, error)
}

type greeter interface {
	Greet(ctx context.Context, pageID, to, name string) (*services.BirthdayResult, error)
}

// runtime is what the subcommands work against
type runtime struct {
	Migrate  func(ctx context.Context) error
	Tags     tagSeeder
	Users    operatorCreator
	Birthday greeter
	Close    func() error
}

// connectFunc opens a runtime; tests replace it with fakes
type connectFunc func(ctx context.Context) (*runtime, error)

// connectRuntime loads configuration and opens the database the same way
// the server does. Log output goes to the console only.
func connectRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger, closeLog, err := logging.New(logging.Options{
		Env:         cfg.Env,
		Level:       cfg.LogLevel,
		DisableFile: true,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("connect database: %w", err)
	}
	logger.Debug("connected", zap.String("host", cfg.DBHost), zap.String("database", cfg.DBName))

	sm := services.NewServiceManager(db, cfg, logger)
	return &runtime{
		Migrate: func(ctx context.Context) error {
			return database.Migrate(ctx, db.DB())
		},
		Tags:     sm.Tags,
		Users:    sm.Users,
		Birthday: sm.Birthday,
		Close: func() error {
			_ = closeLog()
			return db.Close()
		},
	}, nil
}
