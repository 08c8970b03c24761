package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storeadmin/cmd"
	httpadapter "storeadmin/internal/adapters/in/http"
	kafkain "storeadmin/internal/adapters/in/kafka"
	kafkaout "storeadmin/internal/adapters/out/kafka"
	"storeadmin/internal/adapters/out/postgres"
	redisadapter "storeadmin/internal/adapters/out/redis"
	"storeadmin/internal/core/application/usecases/commands"
	"storeadmin/internal/core/ports"
	"storeadmin/internal/seed"

	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, config, logger); err != nil {
		log.Fatalf("Service stopped with error: %v", err)
	}
}

func run(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	db, err := gorm.Open(gorm_postgres.Open(config.DB.DSN()), &gorm.Config{})
	if err != nil {
		return err
	}
	if err = postgres.Migrate(db); err != nil {
		return err
	}
	if config.Seed {
		if err = seedStore(ctx, db, logger); err != nil {
			return err
		}
	}

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	defer redisClient.Close()
	cache := redisadapter.NewSummaryCache(redisClient, "", config.Redis.SummaryTTL)

	var publisher ports.EventPublisher
	if config.Kafka.Enabled() {
		p := kafkaout.NewPublisher(kafkaout.NewWriter(config.Kafka.Brokers, config.Kafka.Topic))
		defer p.Close()
		publisher = p
	}

	app := cmd.NewCompositionRoot(config, db, publisher, cache, logger)

	// The first load may fail while the store starts; the refresh job retries.
	if n, loadErr := app.CreateRefreshOrdersCommandHandler().Handle(ctx, commands.NewRefreshOrdersCommand()); loadErr != nil {
		logger.ErrorContext(ctx, "Initial order load failed", "error", loadErr)
	} else {
		logger.InfoContext(ctx, "Orders loaded", "orders", n)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), logger)
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", config.HTTP.Port),
		Handler:           otelhttp.NewHandler(e, "storeadmin"),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(ctx, "HTTP server listening", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})

	if config.Kafka.Enabled() {
		consumer := kafkain.NewStatusChangedConsumer(
			kafkain.NewReader(config.Kafka.Brokers, config.Kafka.Topic, config.Kafka.ConsumerGroup),
			app.OrderWorkingSet(),
			logger,
		)
		g.Go(func() error {
			return consumer.Run(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.HTTP.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func seedStore(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	seeded, err := postgres.Seed(ctx, db, postgres.Dataset{
		Products:  seed.Products(),
		Orders:    seed.Orders(),
		Customers: seed.Customers(),
	})
	if err != nil {
		return err
	}
	if seeded {
		logger.InfoContext(ctx, "Demo dataset loaded")
	} else {
		logger.InfoContext(ctx, "Store already has orders, seed skipped")
	}
	return nil
}
