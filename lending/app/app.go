package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/lending-registry/lending/config"
	"github.com/Astemirdum/lending-registry/lending/internal/chain"
	"github.com/Astemirdum/lending-registry/lending/internal/events"
	"github.com/Astemirdum/lending-registry/lending/internal/handler"
	"github.com/Astemirdum/lending-registry/lending/internal/ledger"
	"github.com/Astemirdum/lending-registry/lending/internal/server"
	"github.com/Astemirdum/lending-registry/lending/internal/service"
	"github.com/Astemirdum/lending-registry/lending/internal/stats"
	"github.com/Astemirdum/lending-registry/lending/migrations"
	"github.com/Astemirdum/lending-registry/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-registry/pkg/kafka"
	"github.com/Astemirdum/lending-registry/pkg/logger"
	"github.com/Astemirdum/lending-registry/pkg/middleware"
	"github.com/Astemirdum/lending-registry/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "lending")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("lending", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warn("close", zap.Error(err))
			}
		}
	}()

	valueLedger, err := newLedger(ctx, cfg, log)
	if err != nil {
		return err
	}
	if closer, ok := valueLedger.(interface{ Close() error }); ok {
		closers = append(closers, closer.Close)
	}

	publisher := events.NewNopPublisher(log)
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewAsyncProducer")
		}
		publisher = events.NewKafkaPublisher(producer, kafka.LendingTopic, log)
	}
	closers = append(closers, publisher.Close)

	svc, err := service.NewService(service.Policy{
		Operator:           cfg.Lending.Operator,
		LendingFeePercent:  cfg.Lending.FeePercent,
		MaxLendingPeriod:   cfg.Lending.MaxLendingPeriod,
		DepositRequirement: cfg.Lending.Deposit,
		MaxBooksPerUser:    cfg.Lending.MaxBooksPerUser,
	}, valueLedger, publisher, log)
	if err != nil {
		return err
	}

	gg, ctx := errgroup.WithContext(ctx)

	var statsSvc handler.StatsService
	if cfg.Kafka.Enabled && cfg.Lending.LedgerDriver == config.LedgerPostgres {
		pool, err := postgres.NewPool(ctx, &cfg.Database)
		if err != nil {
			return errors.Wrap(err, "stats pool")
		}
		closers = append(closers, func() error {
			pool.Close()
			return nil
		})
		repo := stats.NewRepository(pool, log)
		statsSvc = repo

		group, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
		if err != nil {
			return errors.Wrap(err, "kafka.NewConsumer")
		}
		gg.Go(func() error {
			return kafka.Consume(ctx, group, stats.NewConsumer(repo.Save, log), log, kafka.LendingTopic)
		})
	}

	authMW := echo.MiddlewareFunc(middleware.AuthContext)
	if cfg.Lending.JWTKey != "" {
		authMW = middleware.JwtAuthentication([]byte(cfg.Lending.JWTKey))
	}
	clock := chain.NewClock(cfg.Lending.Genesis, cfg.Lending.BlockInterval)
	h := handler.New(svc, statsSvc, clock, log)
	srv := server.NewServer(cfg.Server, h.NewRouter(authMW))
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	gg.Go(srv.Run)
	gg.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})
	return gg.Wait()
}

func newLedger(ctx context.Context, cfg *config.Config, log *zap.Logger) (service.ValueLedger, error) {
	switch cfg.Lending.LedgerDriver {
	case config.LedgerMemory:
		return ledger.NewMemory(nil), nil
	case config.LedgerPostgres:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return nil, errors.Wrap(err, "db init")
		}
		cb := circuit_breaker.New(20, 10*time.Second, 0.5, 5,
			circuit_breaker.WithFailurePredicate(ledger.IsOutage))
		return &closingLedger{
			Ledger: ledger.WithCircuitBreaker(ledger.NewPostgres(db, log), cb),
			close:  db.Close,
		}, nil
	}
	return nil, errors.Errorf("unknown ledger driver %q", cfg.Lending.LedgerDriver)
}

type closingLedger struct {
	ledger.Ledger
	close func() error
}

func (l *closingLedger) Close() error {
	return l.close()
}
