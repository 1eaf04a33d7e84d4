package internal

import (
	"context"
	"errors"
	"fmt"
	"listings-service/internal/adapters/auth"
	"listings-service/internal/adapters/catalog"
	logger_adapter "listings-service/internal/adapters/logger"
	"listings-service/internal/adapters/mailer"
	"listings-service/internal/adapters/noop"
	postgres_adapter "listings-service/internal/adapters/postgres"
	rabbitmq_adapter "listings-service/internal/adapters/rabbitmq"
	"listings-service/internal/adapters/rest"
	sqlite_adapter "listings-service/internal/adapters/sqlite"
	"listings-service/internal/configs"
	"listings-service/internal/core/port"
	"listings-service/internal/core/usecase"
	fluentlogger "listings-service/pkg/fluent_logger"
	"listings-service/pkg/postgres"
	"listings-service/pkg/rabbitmq/rabbitmq_common"
	"listings-service/pkg/rabbitmq/rabbitmq_producer"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout        = 10 * time.Second
	startupTimeout         = 15 * time.Second
	rabbitReconnectTimeout = 5 * time.Second
)

// App - структура приложения
type App struct {
	config    *configs.Config
	apiServer *rest.Server
	logger    port.LoggerPort

	// закрываются в обратном порядке после остановки сервера
	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
// Для каждой необязательной интеграции один раз выбирается настоящая
// реализация или заглушка.
func NewApp(appConfig *configs.Config) (app *App, err error) {
	application := &App{config: appConfig}
	defer func() {
		if err != nil {
			application.closeResources()
		}
	}()

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	baseLogger, err := application.initLogger()
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	application.logger = appLogger

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// --- 2. КАТАЛОГ ---
	propertyCatalog, err := loadCatalog(appConfig.CatalogPath)
	if err != nil {
		appLogger.Error("Failed to load property catalog", err, port.Fields{"path": appConfig.CatalogPath})
		return nil, fmt.Errorf("failed to load property catalog: %w", err)
	}
	appLogger.Info("Property catalog loaded.", port.Fields{"properties": propertyCatalog.Len(), "source": catalogSource(appConfig.CatalogPath)})

	// --- 3. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	mailerAdapter, err := newMailer(appConfig.Mail)
	if err != nil {
		appLogger.Error("Failed to create mailer", err, nil)
		return nil, err
	}
	appLogger.Info("Mailer selected.", port.Fields{"enabled": mailerAdapter.Enabled()})

	authenticator, err := newAuthenticator(appConfig.Auth)
	if err != nil {
		appLogger.Error("Failed to create authenticator", err, nil)
		return nil, err
	}
	appLogger.Info("Authenticator selected.", port.Fields{"enabled": appConfig.Auth.Enabled()})

	repository, err := application.newSubmissionRepository(ctx)
	if err != nil {
		appLogger.Error("Failed to initialize submission storage", err, nil)
		return nil, err
	}

	events, err := application.newEventPublisher(baseLogger)
	if err != nil {
		appLogger.Error("Failed to initialize event publisher", err, nil)
		return nil, err
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 4. USE CASES ---
	mailSettings := usecase.DefaultMailSettings()
	mailSettings.ContactEmail = appConfig.Mail.ContactEmail
	mailSettings.SiteURL = appConfig.Mail.SiteURL

	findPropertiesUC := usecase.NewFindPropertiesUseCase(propertyCatalog)
	getDetailsUC := usecase.NewGetPropertyDetailsUseCase(propertyCatalog)
	getGalleryUC := usecase.NewGetGalleryUseCase(propertyCatalog)
	getFilterOptionsUC := usecase.NewGetFilterOptionsUseCase(propertyCatalog)
	getFeaturedUC := usecase.NewGetFeaturedUseCase(propertyCatalog)
	moveCarouselUC := usecase.NewMoveCarouselUseCase(propertyCatalog)
	submitInquiryUC := usecase.NewSubmitInquiryUseCase(mailerAdapter, repository, events, mailSettings)
	subscribeUC := usecase.NewSubscribeNewsletterUseCase(mailerAdapter, repository, events, mailSettings)
	appLogger.Info("All use cases initialized.", nil)

	// --- 5. REST API ---
	router := rest.NewRouter(rest.RouterConfig{
		AllowedOrigins: appConfig.AllowedOrigins,
		Properties: rest.NewPropertiesHandler(findPropertiesUC, getDetailsUC, getGalleryUC,
			getFilterOptionsUC, getFeaturedUC, moveCarouselUC),
		Forms: rest.NewFormsHandler(submitInquiryUC, subscribeUC),
		Auth: rest.NewAuthHandler(authenticator, rest.AuthSettings{
			PublishableKey: appConfig.Auth.PublishableKey,
			SignInURL:      appConfig.Auth.SignInURL,
			SignUpURL:      appConfig.Auth.SignUpURL,
		}),
		AuthMiddleware: rest.NewAuthMiddleware(authenticator),
		Health:         rest.NewHealthHandler(mailerAdapter, authenticator, propertyCatalog.Len()),
	}, baseLogger)

	application.apiServer = rest.NewServer(appConfig.Port, router, baseLogger.WithFields(port.Fields{"component": "rest_server"}))
	appLogger.Info("REST API server configured.", nil)

	return application, nil
}

func (a *App) initLogger() (port.LoggerPort, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    logger_adapter.ParseLevel(a.config.StdoutLogger.Level),
		IsJSON:   a.config.StdoutLogger.JSON,
		UseColor: a.config.StdoutLogger.Color,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if a.config.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      a.config.FluentBit.Host,
			Port:      a.config.FluentBit.Port,
			TagPrefix: a.config.AppName,
			Timeout:   3 * time.Second,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, logger_adapter.ParseLevel(a.config.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, fmt.Errorf("failed to create fluentbit adapter: %w", err)
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
		// fluent закрывается последним, чтобы успеть отправить логи остановки
		a.closers = append([]namedCloser{{name: "fluent client", close: fluentAdapter.Close}}, a.closers...)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": a.config.AppName,
		"environment":  a.config.Environment,
	})
	baseLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": a.config.FluentBit.Enabled,
	})
	return baseLogger, nil
}

func loadCatalog(path string) (*catalog.StaticCatalog, error) {
	if path == "" {
		return catalog.LoadEmbedded()
	}
	return catalog.LoadFromFile(path)
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func newMailer(cfg configs.MailConfig) (port.MailerPort, error) {
	if !cfg.Enabled() {
		return mailer.NewDisabledMailer(), nil
	}
	m, err := mailer.NewResendMailer(cfg.ResendBaseURL, cfg.ResendAPIKey, cfg.From, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend mailer: %w", err)
	}
	return m, nil
}

func newAuthenticator(cfg configs.AuthConfig) (port.AuthenticatorPort, error) {
	if !cfg.Enabled() {
		return auth.NewDisabledAuthenticator(), nil
	}
	a, err := auth.NewJWTAuthenticator(cfg.PublicKeyPEM, cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create session authenticator: %w", err)
	}
	return a, nil
}

// newSubmissionRepository выбирает хранилище заявок: PostgreSQL, SQLite или заглушку.
func (a *App) newSubmissionRepository(ctx context.Context) (port.SubmissionRepositoryPort, error) {
	switch {
	case a.config.Postgres.DatabaseURL != "":
		dbPool, err := postgres.NewClient(ctx, postgres.Config{
			DatabaseURL:    a.config.Postgres.DatabaseURL,
			MaxConns:       int32(a.config.Postgres.MaxConns),
			ConnectTimeout: 5 * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		a.closers = append(a.closers, namedCloser{name: "postgres pool", close: func() error {
			dbPool.Close()
			return nil
		}})

		repo, err := postgres_adapter.NewSubmissionRepository(dbPool)
		if err != nil {
			return nil, err
		}
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare PostgreSQL schema: %w", err)
		}
		a.logger.Info("Submissions are stored in PostgreSQL.", nil)
		return repo, nil

	case a.config.SQLite.Path != "":
		repo, err := sqlite_adapter.Open(ctx, a.config.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite storage: %w", err)
		}
		a.closers = append(a.closers, namedCloser{name: "sqlite storage", close: repo.Close})
		a.logger.Info("Submissions are stored in SQLite.", port.Fields{"path": a.config.SQLite.Path})
		return repo, nil

	default:
		a.logger.Info("Submission storage is disabled.", nil)
		return noop.NewSubmissionRepository(), nil
	}
}

func (a *App) newEventPublisher(baseLogger port.LoggerPort) (port.EventPublisherPort, error) {
	if a.config.RabbitMQ.URL == "" {
		a.logger.Info("Event publishing is disabled.", nil)
		return noop.NewEventPublisher(), nil
	}

	commonCfg := rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}

	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewConnectionManager(commonCfg, connManagerBridge, rabbitReconnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.closers = append(a.closers, namedCloser{name: "rabbitmq connection", close: connManager.Close})
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   commonCfg,
		ExchangeName:             a.config.RabbitMQ.ExchangeName,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.closers = append(a.closers, namedCloser{name: "rabbitmq producer", close: producer.Close})

	adapter, err := rabbitmq_adapter.NewSubmissionEventsAdapter(producer)
	if err != nil {
		return nil, err
	}
	a.logger.Info("RabbitMQ Event Producer initialized.", port.Fields{"exchange": a.config.RabbitMQ.ExchangeName})
	return adapter, nil
}

// Run запускает HTTP-сервер и блокируется до отмены ctx или ошибки сервера.
// После этого сервер останавливается с таймаутом, ресурсы закрываются.
func (a *App) Run(ctx context.Context) error {
	defer a.closeResources()

	a.logger.Info("Application is starting...", port.Fields{"port": a.config.Port})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.apiServer.Start(); err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutdown sequence initiated...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.apiServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
			return err
		}
		return nil
	})

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("Application stopped with error", err, nil)
		return err
	}

	a.logger.Info("Application shut down gracefully.", nil)
	return nil
}

func (a *App) closeResources() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			if a.logger != nil {
				a.logger.Error("Error closing resource", err, port.Fields{"resource": c.name})
			} else {
				fmt.Printf("ERROR: Error closing %s: %v\n", c.name, err)
			}
		}
	}
	a.closers = nil
}
