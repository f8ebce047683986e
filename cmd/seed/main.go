package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/carserv-vn/service-center/backend/internal/config"
	"github.com/carserv-vn/service-center/backend/internal/repository"
	"github.com/carserv-vn/service-center/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int

	flag.IntVar(&op, "op", 0, "operation to run (1: seed employees, 2: seed service centers, 3: seed shifts, 4: seed work-center assignments, 5: seed work schedules, 6: everything)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only prepares the pool, ping to verify the connection
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		slog.Info("employees seeded", slog.Int("count", seed.SeedEmployees(cfg, repo)))
	case 2:
		slog.Info("service centers seeded", slog.Int("count", seed.SeedCenters(repo)))
	case 3:
		slog.Info("shifts seeded", slog.Int("count", seed.SeedShifts(repo)))
	case 4:
		slog.Info("work-center assignments seeded", slog.Int("count", seed.SeedAssignments(repo)))
	case 5:
		slog.Info("work schedules seeded", slog.Int("count", seed.SeedSchedules(repo)))
	case 6:
		slog.Info("employees seeded", slog.Int("count", seed.SeedEmployees(cfg, repo)))
		slog.Info("service centers seeded", slog.Int("count", seed.SeedCenters(repo)))
		slog.Info("shifts seeded", slog.Int("count", seed.SeedShifts(repo)))
		slog.Info("work-center assignments seeded", slog.Int("count", seed.SeedAssignments(repo)))
		slog.Info("work schedules seeded", slog.Int("count", seed.SeedSchedules(repo)))
	default:
		slog.Error("unknown operation")
	}
}
