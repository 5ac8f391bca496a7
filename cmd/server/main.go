package main

import (
	"context"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"lingkod-server/services/assistant-api/internal/config"
	assistantdomain "lingkod-server/services/assistant-api/internal/domain/assistant"
	"lingkod-server/services/assistant-api/internal/domain/conversation"
	"lingkod-server/services/assistant-api/internal/domain/faq"
	"lingkod-server/services/assistant-api/internal/infrastructure/crontab"
	"lingkod-server/services/assistant-api/internal/infrastructure/database"
	_ "lingkod-server/services/assistant-api/internal/infrastructure/database/dbschema"
	"lingkod-server/services/assistant-api/internal/infrastructure/database/repository/catalogrepo"
	"lingkod-server/services/assistant-api/internal/infrastructure/database/repository/conversationrepo"
	"lingkod-server/services/assistant-api/internal/infrastructure/database/repository/faqrepo"
	"lingkod-server/services/assistant-api/internal/infrastructure/inference"
	"lingkod-server/services/assistant-api/internal/infrastructure/logger"
	"lingkod-server/services/assistant-api/internal/interfaces/httpserver"
	v1 "lingkod-server/services/assistant-api/internal/interfaces/httpserver/routes/v1"
	assistantroute "lingkod-server/services/assistant-api/internal/interfaces/httpserver/routes/v1/assistant"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	crontab    *crontab.Crontab
}

func (application *Application) Start() {
	background := context.Background()
	ctx, cancel := context.WithCancel(background)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		err := application.crontab.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.httpServer.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.GetLogger()
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		bootLog := logger.GetLogger()
		bootLog.Fatal().Err(err).Msg("configure logger")
	}

	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if cfg.AutoMigrate {
		if err := database.Migration(db, database.TablePrefix); err != nil {
			log.Fatal().Err(err).Msg("run migrations")
		}
	}

	dataInitializer := &DataInitializer{db: db}
	if err := dataInitializer.Install(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("install seed data")
	}

	faqRepo := faqrepo.NewFAQGormRepository(db)
	convRepo := conversationrepo.NewConversationGormRepository(db)
	catalogRepo := catalogrepo.NewCatalogGormRepository(db)

	searchService := faq.NewSearchService(faqRepo, log)
	conversationService := conversation.NewService(convRepo)
	chain := inference.BuildChain(cfg, log)
	fallback := assistantdomain.NewFallbackResponder(catalogRepo, log)
	pipeline := assistantdomain.NewPipeline(
		searchService, faqRepo, conversationService, chain, fallback, catalogRepo, log)

	route := assistantroute.NewAssistantRoute(pipeline, conversationService, searchService)
	server := httpserver.NewHttpServer(v1.NewV1Route(route), log, cfg)

	log.Info().
		Int("port", cfg.HTTPPort).
		Strs("providers", chain.Providers()).
		Msg("assistant-api starting")

	application := &Application{
		httpServer: server,
		crontab:    crontab.NewCrontab(searchService),
	}
	application.Start()
}
