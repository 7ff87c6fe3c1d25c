package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-HotelQuoteService/internal/config"
	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	roomTypeRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/roomtype"
	settingsRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/settings"
	roomTypesService "github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes"
	settingsService "github.com/m04kA/SMC-HotelQuoteService/internal/service/settings"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/logger"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/txmanager"
)

// app зависимости команд, которым нужна база данных
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	db        *sql.DB
	txManager *txmanager.TransactionManager
	roomTypes *roomTypesService.Service
	settings  *settingsService.Service
}

// loadConfig читает конфигурацию по флагу --config
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// openApp подключается к базе и собирает сервисы. Логи идут в stderr, чтобы не смешиваться с выводом команд.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	level, _ := cmd.Flags().GetString("log-level")
	log := logger.NewWithWriter(os.Stderr, level, nil)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(cmd.Context()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database (host=%s, db=%s): %w", cfg.Database.Host, cfg.Database.DBName, err)
	}

	defaults := domain.DefaultHotelSettings()
	txManager := txmanager.FromSQL(db)

	return &app{
		cfg:       cfg,
		log:       log,
		db:        db,
		txManager: txManager,
		roomTypes: roomTypesService.NewService(roomTypeRepo.NewRepository(db), txManager, log),
		settings:  settingsService.NewService(settingsRepo.NewRepository(db), defaults, log),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("Close: database close error: %v", err)
	}
}
