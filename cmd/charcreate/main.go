// charcreate runs character creation requests from a YAML file and prints
// a YAML report of every created character.
//
// Usage:
//
//	go run ./cmd/charcreate -requests requests.yaml
//	go run ./cmd/charcreate -config config/charcreate.yaml -requests requests.yaml -seed 42 -serve
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/charcreate/internal/account"
	"github.com/udisondev/charcreate/internal/config"
	"github.com/udisondev/charcreate/internal/creation"
	"github.com/udisondev/charcreate/internal/db"
	"github.com/udisondev/charcreate/internal/random"
	"github.com/udisondev/charcreate/internal/world"
)

const DefaultConfigPath = "config/charcreate.yaml"

type options struct {
	configPath   string
	requestsPath string
	seed         uint64
	serve        bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.configPath, "config", DefaultConfigPath, "path to YAML config")
	flag.StringVar(&opts.requestsPath, "requests", "", "path to YAML file with creation requests")
	flag.Uint64Var(&opts.seed, "seed", 0, "seed for starter item choices (0 = random)")
	flag.BoolVar(&opts.serve, "serve", false, "keep serving metrics after the batch")
	flag.Parse()

	if p := os.Getenv("CHARCREATE_CONFIG"); p != "" {
		opts.configPath = p
	}
	if opts.requestsPath == "" {
		fmt.Fprintln(os.Stderr, "error: -requests is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, opts, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel, _ := config.ParseLogLevel(cfg.LogLevel) // validated by Load
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
	slog.Info("charcreate starting",
		"expansion", cfg.Expansion,
		"siege", cfg.SiegeShard,
		"database", cfg.Database.Enabled)

	batch, err := loadBatch(opts.requestsPath)
	if err != nil {
		return err
	}

	slots, closeSlots, err := openSlots(ctx, cfg, batch.Accounts)
	if err != nil {
		return err
	}
	defer closeSlots()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := creation.NewMetrics(registry)

	rnd := random.Default()
	if opts.seed != 0 {
		rnd = random.NewSeeded(opts.seed)
	}

	policy := creation.DefaultNamePolicy()
	policy.Banned = append(policy.Banned, cfg.BannedNames...)

	scheduler := &waitScheduler{}
	creator, err := creation.NewCreator(creation.Config{
		Expansion:        cfg.Expansion,
		Siege:            cfg.SiegeShard,
		SkillCap:         cfg.SkillCap,
		NamePolicy:       policy,
		WelcomeMessageID: cfg.WelcomeMessageID,
		WelcomeDelay:     cfg.WelcomeDelay,
	}, creation.Deps{
		Slots:     slots,
		Placer:    world.Instance(),
		Scheduler: scheduler,
		Random:    rnd,
		Serials:   world.Serials(),
		Metrics:   metrics,
	})
	if err != nil {
		return fmt.Errorf("creating creator: %w", err)
	}

	ctx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddress != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			slog.Info("starting metrics server", "address", cfg.MetricsAddress)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		// Requests run one at a time: a seeded source is not safe for concurrent use.
		reports := make([]summary, 0, len(batch.Requests))
		for i := range batch.Requests {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := creator.Create(gctx, &batch.Requests[i])
			reports = append(reports, summarize(res, err))
		}

		slog.Info("waiting for welcome messages", "delay", cfg.WelcomeDelay)
		scheduler.Wait()

		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		if !opts.serve {
			stop()
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// openSlots picks the slot allocator: PostgreSQL when enabled, memory otherwise.
// Accounts listed in the batch are registered first.
func openSlots(ctx context.Context, cfg config.Config, accounts []accountEntry) (creation.SlotAllocator, func(), error) {
	if !cfg.Database.Enabled {
		store := account.NewStore(cfg.AccountCharLimit, cfg.AutoCreateAccounts)
		for _, a := range accounts {
			if err := store.Register(a.account()); err != nil {
				return nil, nil, fmt.Errorf("registering account: %w", err)
			}
		}
		return store, func() {}, nil
	}

	dsn := cfg.Database.DSN()
	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, dsn); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	for _, a := range accounts {
		existing, err := database.GetAccount(ctx, a.Login)
		if err != nil {
			database.Close()
			return nil, nil, err
		}
		if existing != nil {
			continue
		}
		if err := database.CreateAccount(ctx, a.account()); err != nil {
			database.Close()
			return nil, nil, err
		}
	}

	repo := db.NewSlotRepository(database.Pool(), cfg.AccountCharLimit, cfg.AutoCreateAccounts)
	return repo, database.Close, nil
}
