package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/gophdraw/internal/client/api"
	"github.com/iudanet/gophdraw/internal/client/cli"
	"github.com/iudanet/gophdraw/internal/client/iocli"
	"github.com/iudanet/gophdraw/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/gophdraw/internal/client/sync"
	"github.com/iudanet/gophdraw/internal/validation"
	protocol "github.com/iudanet/gophdraw/pkg/api"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	room := flag.String("room", protocol.DefaultRoom, "Room name")
	name := flag.String("name", "", "Display name")
	dbPath := flag.String("db", "gophdraw-client.db", "Path to local cache")
	verbose := flag.Bool("verbose", false, "Log connection events")

	flag.Parse()

	out := iocli.NewStdio()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(out)
		os.Exit(1)
	}

	if err := validation.ValidateDisplayName(*name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, out, *serverURL, *room, *name, *dbPath, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, out iocli.IO, serverURL, room, name, dbPath string, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB кэш. Файл может держать другой процесс (например, watch):
	// тогда онлайн-команды работают без кэша.
	var cache clientsync.Cache
	var logs cli.LogReader
	boltStorage, err := boltdb.New(ctx, dbPath)
	switch {
	case err == nil:
		cache, logs = boltStorage, boltStorage
		defer func() {
			if err := boltStorage.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}()
	case args[0] == "log":
		return fmt.Errorf("failed to open database: %w", err)
	default:
		logger.Warn("Local cache unavailable, continuing without it", "path", dbPath, "error", err)
	}

	apiClient := api.NewClient(serverURL)

	session := clientsync.NewService(clientsync.Config{
		Dial: func(ctx context.Context) (clientsync.Conn, error) {
			conn, err := api.Dial(ctx, serverURL)
			if err != nil {
				return nil, err
			}
			return conn, nil
		},
		Cache:       cache,
		Logger:      logger,
		Room:        room,
		DisplayName: name,
	})

	c := cli.New(out, session, logs, apiClient, room)
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func printVersion() {
	fmt.Printf("GophDraw Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
