// Command httpd runs the brand detection HTTP service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/llumos/brand-detector/internal/api"
	"github.com/llumos/brand-detector/internal/config"
	"github.com/llumos/brand-detector/internal/database"
	"github.com/llumos/brand-detector/internal/detector"
	"github.com/llumos/brand-detector/internal/filter"
	"github.com/llumos/brand-detector/internal/gazetteer"
	"github.com/llumos/brand-detector/internal/logger"
	"github.com/llumos/brand-detector/internal/ner"
	"github.com/llumos/brand-detector/internal/processor"
	"github.com/llumos/brand-detector/internal/storage"
	"github.com/llumos/brand-detector/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load(config.GetConfigPath(""))
	if err != nil {
		// Logger is not available yet
		panic(err)
	}

	log := logger.Must(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	defer func() { _ = log.Sync() }()

	log.Info("starting brand detector",
		logger.String("service", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port))

	// Postgres
	db, err := database.NewPostgresConnection(database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxConnections,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal("failed to connect to database", logger.Error(err))
	}
	defer db.Close()
	log.Info("database connected",
		logger.String("host", cfg.Database.Host),
		logger.String("database", cfg.Database.Database))

	orgRepo := database.NewOrgRepository(db)
	detectionRepo := database.NewDetectionRepository(db)

	// Elasticsearch indexing is optional
	var indexer api.DetectionIndexer
	if cfg.Elasticsearch.Enabled {
		esClient, esErr := es.NewClient(es.Config{
			Addresses: []string{cfg.Elasticsearch.URL},
			Username:  cfg.Elasticsearch.Username,
			Password:  cfg.Elasticsearch.Password,
		})
		if esErr != nil {
			log.Warn("failed to create Elasticsearch client, indexing disabled",
				logger.Error(esErr))
		} else {
			esStorage := storage.NewElasticsearchStorage(esClient, cfg.Elasticsearch.Index)
			pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Elasticsearch.Timeout)
			if pingErr := esStorage.TestConnection(pingCtx); pingErr != nil {
				log.Warn("Elasticsearch unreachable, indexing disabled",
					logger.String("url", cfg.Elasticsearch.URL),
					logger.Error(pingErr))
			} else {
				indexer = esStorage
				log.Info("Elasticsearch connected",
					logger.String("index", cfg.Elasticsearch.Index))
			}
			cancel()
		}
	}

	// NER fallback is optional; detection degrades to gazetteer-only without it
	var resolver ner.EntityResolver
	if cfg.NER.Enabled && cfg.NER.APIKey != "" {
		anthropicResolver, nerErr := ner.NewAnthropicResolver(cfg.NER.APIKey, cfg.NER.Model,
			ner.WithTimeout(cfg.NER.Timeout))
		if nerErr != nil {
			log.Warn("failed to create NER resolver, fallback disabled", logger.Error(nerErr))
		} else {
			limiter := processor.NewRateLimiter(cfg.NER.RatePerSecond, cfg.NER.RatePerSecond, log)
			resolver = ner.NewLimitedResolver(anthropicResolver, limiter)
			log.Info("NER fallback enabled", logger.String("model", cfg.NER.Model))
		}
	} else {
		log.Info("NER fallback disabled")
	}

	tp := telemetry.NewProvider()

	f := filter.New()
	store := gazetteer.NewStore(orgRepo, f, gazetteer.Config{
		HistoryWindow:   time.Duration(cfg.Detection.HistoryWindowDays) * 24 * time.Hour,
		HistoryMinCount: cfg.Detection.HistoryMinCount,
	}, tp, log)

	d := detector.New(f, store, resolver, tp, log, detector.Config{
		MaxResults:       cfg.Detection.MaxResults,
		MaxNERCandidates: cfg.NER.MaxCandidates,
	})

	batchProcessor := processor.NewBatchProcessor(d, cfg.Service.Concurrency, log)

	handler := api.NewHandler(d, batchProcessor, store, detectionRepo, indexer, db, log)
	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, tp.Handler(), log)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("server error", logger.Error(err))
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatal("graceful shutdown failed", logger.Error(err))
		}

		log.Info("server stopped gracefully")
	}
}
