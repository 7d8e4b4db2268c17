package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/veltrixai/go-backend/internal/cfg"
	v1Http "github.com/veltrixai/go-backend/internal/delivery/v1/http"
	genaiInfra "github.com/veltrixai/go-backend/internal/infrastructure/genai"
	"github.com/veltrixai/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/veltrixai/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/veltrixai/go-backend/internal/repository/minio"
	"github.com/veltrixai/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/veltrixai/go-backend/internal/repository/pgdb/converter/generated"
	qdrantRepo "github.com/veltrixai/go-backend/internal/repository/qdrant"
	"github.com/veltrixai/go-backend/internal/repository/redis"
	redisConv "github.com/veltrixai/go-backend/internal/repository/redis/converter/generated"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/clients"
	"github.com/veltrixai/go-backend/pkg/closer"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
	"github.com/veltrixai/go-backend/pkg/postgres"
)

const (
	ensureTimeout   = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App держит все подключения и фоновые процессы приложения.
// Ресурсы регистрируются в closer в порядке запуска и закрываются в обратном.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	outboxWorker *kafka.OutboxWorker
	httpSrv      *v1Http.Server
	closer       *closer.Closer
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		return nil, err
	}

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		return nil, err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), ensureTimeout)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		return nil, err
	}
	minioCancel()

	qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		logger.Errorf(err, "failed to initialize qdrant")
		return nil, err
	}

	qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), ensureTimeout)
	if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
		qdrantCancel()
		logger.Errorf(err, "failed to initialize qdrant collection")
		return nil, err
	}
	qdrantCancel()

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		return nil, err
	}

	aiService, err := genaiInfra.NewService(context.Background(), cfg.Gemini, logger)
	if err != nil {
		logger.Errorf(err, "failed to initialize gemini client")
		return nil, err
	}

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		return nil, err
	}

	if err := producer.EnsureTopic(ensureTimeout); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		return nil, err
	}

	// Конвертеры сгенерированы goverter.
	productConv := pgdbConv.NewProductConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	receiptConv := pgdbConv.NewReceiptConverterImpl()
	chatConv := pgdbConv.NewChatConverterImpl()
	businessConv := pgdbConv.NewBusinessConverterImpl()
	userConv := pgdbConv.NewUserConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	cacheConv := redisConv.NewProductCacheConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	receiptRepo := pgdb.NewReceiptRepo(db.Pool, receiptConv)
	chatRepo := pgdb.NewChatRepo(db.Pool, chatConv)
	businessRepo := pgdb.NewBusinessRepo(db.Pool, businessConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	embRepo := qdrantRepo.NewEmbeddingRepo(qdrantClient.Client, cfg.Qdrant)
	cacheRepo := redis.NewCacheRepo(redisClient, cacheConv, cfg.Redis, logger)

	// Фоновая доочистка MinIO переживает запрос, но не приложение.
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, cleanupCtx)

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)

	authUC := usecase.NewAuthUC(userRepo, businessRepo, db.Pool, *cfg.Auth, logger)
	businessUC := usecase.NewBusinessUC(businessRepo, logger)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, outboxRepo, db.Pool, cacheRepo, logger)
	catalogUC := usecase.NewCatalogUC(productRepo, embRepo, cacheRepo, aiService, db.Pool, logger)
	analyticsUC := usecase.NewAnalyticsUC(orderRepo, productRepo, cacheRepo, aiService, logger)
	chatUC := usecase.NewChatUC(chatRepo, productRepo, orderRepo, aiService, logger)
	scannerUC := usecase.NewScannerUC(receiptRepo, aiService, imagesInfra, logger)
	documentUC := usecase.NewDocumentUC(businessRepo, orderRepo, aiService, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(v1Http.UseCases{
		Auth:      authUC,
		Business:  businessUC,
		Catalog:   catalogUC,
		Orders:    orderUC,
		Analytics: analyticsUC,
		Chat:      chatUC,
		Scanner:   scannerUC,
		Documents: documentUC,
	}, authUC, cfg.Auth)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	cl := closer.NewCloser(0)
	cl.Add(func(_ context.Context) error {
		db.Close()
		return nil
	})
	cl.Add(func(_ context.Context) error {
		return qdrantClient.Client.Close()
	})
	cl.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})
	cl.Add(func(_ context.Context) error {
		return producer.Close()
	})
	cl.Add(func(ctx context.Context) error {
		defer cleanupCancel()
		return imagesInfra.WaitForCleanup(ctx)
	})

	return &App{
		cfg:          cfg,
		logger:       logger,
		outboxWorker: outboxWorker,
		httpSrv:      httpSrv,
		closer:       cl,
	}, nil
}

func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	workerCancel()
	a.outboxWorker.Stop()
	a.logger.Infof("Outbox worker stopped")

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Resource shutdown finished with errors: %v", err)
	}

	a.logger.Infof("Application shutdown complete")

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
