package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/urfave/cli/v3"

	addMovieHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/add_movie"
	bookTicketHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/book_ticket"
	cancelTicketHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/cancel_ticket"
	currentUserHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/current_user"
	deleteMovieHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/delete_movie"
	getTicketsHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/get_tickets"
	listMoviesHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/list_movies"
	loginHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/logout"
	passwordResetHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/password_reset"
	registerHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/register"
	updateMovieHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/update_movie"
	updateTicketStatusHandler "github.com/m04kA/SMC-MovieBooking/internal/api/handlers/update_ticket_status"
	"github.com/m04kA/SMC-MovieBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MovieBooking/internal/config"
	catalogRepo "github.com/m04kA/SMC-MovieBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
	authService "github.com/m04kA/SMC-MovieBooking/internal/service/auth"
	moviesService "github.com/m04kA/SMC-MovieBooking/internal/service/movies"
	ticketsService "github.com/m04kA/SMC-MovieBooking/internal/service/tickets"
	"github.com/m04kA/SMC-MovieBooking/internal/session"
	bookTicketUC "github.com/m04kA/SMC-MovieBooking/internal/usecase/book_ticket"
	saveMovieUC "github.com/m04kA/SMC-MovieBooking/internal/usecase/save_movie"
	"github.com/m04kA/SMC-MovieBooking/pkg/logger"
	"github.com/m04kA/SMC-MovieBooking/pkg/metrics"
	"github.com/m04kA/SMC-MovieBooking/pkg/temporal"
)

func main() {
	cmd := &cli.Command{
		Name:  "movie-booking-bff",
		Usage: "HTTP фронт для бэкенда бронирования фильмов",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "путь к TOML конфигурации",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "запустить HTTP сервер",
				Action: serve,
			},
			{
				Name:   "check-config",
				Usage:  "проверить конфигурацию и выйти",
				Action: checkConfig,
			},
		},
		Action: serve,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("movie-booking-bff: %v\n", err)
		os.Exit(1)
	}
}

func checkConfig(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	fmt.Printf("Configuration %s is valid (backend=%s, show_times_format=%s)\n",
		path, cfg.Backend.URL, cfg.Wire.ShowTimesFormat)
	return nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	// Загружаем конфигурацию
	path := cmd.String("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting movie-booking-bff...")
	log.Info("Configuration loaded from %s", path)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сессия одна на процесс
	sessionStore := session.NewStore()

	// Инициализируем клиента бэкенда
	backendClient := moviebooking.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		moviebooking.WithTokenSource(sessionStore),
		moviebooking.WithMetrics(metricsCollector),
	)
	log.Info("Backend client initialized (url=%s timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Опции сервиса фильмов
	movieOpts := []moviesService.Option{
		moviesService.WithDefaultTheatre(cfg.Wire.TheatreForStatusUpdate),
	}
	if cfg.Cache.Enabled {
		movieOpts = append(movieOpts, moviesService.WithCache(
			cfg.Cache.MaxEntries,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		))
		log.Info("Movie list cache enabled (max_entries=%d ttl=%ds)", cfg.Cache.MaxEntries, cfg.Cache.TTLSeconds)
	}

	// Подключаемся к зеркалу каталога (если включено)
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Catalog mirror connected (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		movieOpts = append(movieOpts, moviesService.WithMirror(catalogRepo.NewRepository(db)))
	}

	// Инициализируем сервисы
	movieSvc := moviesService.NewService(backendClient, log, movieOpts...)
	ticketSvc := ticketsService.NewService(backendClient, sessionStore, movieSvc, log)
	authSvc := authService.NewService(backendClient, sessionStore, log)

	// Формат сеансов в исходящих payload
	shape, err := payload.ParseShape(cfg.Wire.ShowTimesFormat)
	if err != nil {
		return fmt.Errorf("invalid wire.show_times_format: %w", err)
	}
	builder := payload.NewBuilder(shape, temporal.Parser{})
	log.Info("Payload builder initialized (show_times_format=%s)", shape)

	// Инициализируем use cases
	saveMovieUseCase := saveMovieUC.NewUseCase(builder, backendClient, movieSvc, metricsCollector, log)
	bookTicketUseCase := bookTicketUC.NewUseCase(backendClient, movieSvc, metricsCollector, log)

	// Инициализируем handlers
	listMovies := listMoviesHandler.NewHandler(movieSvc, log)
	addMovie := addMovieHandler.NewHandler(saveMovieUseCase, log)
	updateMovie := updateMovieHandler.NewHandler(saveMovieUseCase, log)
	deleteMovie := deleteMovieHandler.NewHandler(movieSvc, log)
	updateTicketStatus := updateTicketStatusHandler.NewHandler(movieSvc, log)
	bookTicket := bookTicketHandler.NewHandler(bookTicketUseCase, log)
	getTickets := getTicketsHandler.NewHandler(ticketSvc, log)
	cancelTicket := cancelTicketHandler.NewHandler(ticketSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	currentUser := currentUserHandler.NewHandler(authSvc, log)
	passwordReset := passwordResetHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log), middleware.RequestID, middleware.Logging(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// Каталог фильмов и поиск
	api.HandleFunc("/movies", listMovies.Handle).Methods(http.MethodGet)

	// Аутентификация
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/password-reset", passwordReset.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/password-reset/confirm", passwordReset.HandleConfirm).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют сессию)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireSession(sessionStore))

	protected.HandleFunc("/auth/me", currentUser.Handle).Methods(http.MethodGet)

	// --- Фильмы (права администратора проверяет бэкенд) ---
	protected.HandleFunc("/movies", addMovie.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/movies/{movieName}/{theatreName}", updateMovie.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/movies/{movieName}/{theatreName}", deleteMovie.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/movies/{movieName}/{theatreName}/status/{status}", updateTicketStatus.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/movies/{movieName}/status/{status}", updateTicketStatus.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/movies/{movieName}/bookings", bookTicket.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tickets", getTickets.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tickets/{reference}", cancelTicket.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-sigCtx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
