package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/vcresolve/internal/client/api"
	"github.com/iudanet/vcresolve/internal/client/cli"
	"github.com/iudanet/vcresolve/internal/client/config"
	"github.com/iudanet/vcresolve/internal/client/filetype"
	"github.com/iudanet/vcresolve/internal/client/iocli"
	"github.com/iudanet/vcresolve/internal/client/merge"
	"github.com/iudanet/vcresolve/internal/client/redundancy"
	"github.com/iudanet/vcresolve/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.Load(os.Args[1:], ".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.PrintUsage()
		return 1
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	if len(args) == 0 {
		cli.PrintUsage()
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// Ctrl+C прерывает хэширование и слияние
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	registry, err := filetype.NewRegistry(boltStorage, filetype.DefaultCacheSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	apiClient := api.NewClient(cfg.ServerURL, api.WithLogger(logger))
	fs := redundancy.NewOSFileSystem()
	detector := redundancy.NewDetector(fs, apiClient, merge.NewPropertyMerger(), logger)
	engine := merge.NewEngine(apiClient, fs, merge.NewGitMerger(cfg.GitPath), cfg.TempDir, logger)

	app := cli.New(cli.Deps{
		IO:          iocli.NewStdio(),
		Server:      apiClient,
		Metadata:    boltStorage,
		Registry:    registry,
		Detector:    detector,
		Content:     engine,
		FileSystem:  fs,
		Logger:      logger,
		User:        cfg.User,
		Concurrency: cfg.Concurrency,
	})

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("vcresolve\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
