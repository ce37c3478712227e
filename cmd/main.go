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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/protap/TAP-LandingService/internal/api"
	"github.com/protap/TAP-LandingService/internal/api/handlers"
	adminHandler "github.com/protap/TAP-LandingService/internal/api/handlers/admin"
	authHandler "github.com/protap/TAP-LandingService/internal/api/handlers/auth"
	dashboardHandler "github.com/protap/TAP-LandingService/internal/api/handlers/dashboard"
	landingsHandler "github.com/protap/TAP-LandingService/internal/api/handlers/landings"
	publicHandler "github.com/protap/TAP-LandingService/internal/api/handlers/public"
	"github.com/protap/TAP-LandingService/internal/api/middleware"
	"github.com/protap/TAP-LandingService/internal/auth"
	"github.com/protap/TAP-LandingService/internal/config"
	"github.com/protap/TAP-LandingService/internal/infra/migrations"
	appointmentRepo "github.com/protap/TAP-LandingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/protap/TAP-LandingService/internal/infra/storage/availability"
	contactRepo "github.com/protap/TAP-LandingService/internal/infra/storage/contact"
	landingRepo "github.com/protap/TAP-LandingService/internal/infra/storage/landing"
	professionalRepo "github.com/protap/TAP-LandingService/internal/infra/storage/professional"
	userRepo "github.com/protap/TAP-LandingService/internal/infra/storage/user"
	accountsService "github.com/protap/TAP-LandingService/internal/service/accounts"
	adminstatsService "github.com/protap/TAP-LandingService/internal/service/adminstats"
	agendaconfigService "github.com/protap/TAP-LandingService/internal/service/agendaconfig"
	landingsService "github.com/protap/TAP-LandingService/internal/service/landings"
	leadsService "github.com/protap/TAP-LandingService/internal/service/leads"
	profileService "github.com/protap/TAP-LandingService/internal/service/profile"
	"github.com/protap/TAP-LandingService/internal/service/prompts"
	bookAppointmentUC "github.com/protap/TAP-LandingService/internal/usecase/book_appointment"
	createLandingUC "github.com/protap/TAP-LandingService/internal/usecase/create_landing"
	getAgendaUC "github.com/protap/TAP-LandingService/internal/usecase/get_agenda"
	"github.com/protap/TAP-LandingService/pkg/dbmetrics"
	"github.com/protap/TAP-LandingService/pkg/logger"
	"github.com/protap/TAP-LandingService/pkg/metrics"
	"github.com/protap/TAP-LandingService/pkg/simpletxmanager"
	"github.com/protap/TAP-LandingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TAP-LandingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := migrations.Run(db, log); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		landings      *landingRepo.Repository
		contacts      *contactRepo.Repository
		appointments  *appointmentRepo.Repository
		availability  *availabilityRepo.Repository
		users         *userRepo.Repository
		professionals *professionalRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		landings = landingRepo.NewRepository(wrappedDB)
		contacts = contactRepo.NewRepository(wrappedDB)
		appointments = appointmentRepo.NewRepository(wrappedDB)
		availability = availabilityRepo.NewRepository(wrappedDB)
		users = userRepo.NewRepository(wrappedDB)
		professionals = professionalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		landings = landingRepo.NewRepository(db)
		contacts = contactRepo.NewRepository(db)
		appointments = appointmentRepo.NewRepository(db)
		availability = availabilityRepo.NewRepository(db)
		users = userRepo.NewRepository(db)
		professionals = professionalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Подписанные claim-токены для привязки анонимных лендингов
	claimTokens := auth.NewClaimTokens(
		cfg.Auth.ClaimSecret,
		time.Duration(cfg.Auth.ClaimTTLHours)*time.Hour,
	)

	// Инициализируем сервисы
	promptBuilder := prompts.NewBuilder(cfg.Sectors.TemplatesDir)
	accountsSvc := accountsService.NewService(users, landings, claimTokens, txMgr, log)
	landingsSvc := landingsService.NewService(landings, log)
	leadsSvc := leadsService.NewService(contacts, landings, log)
	profileSvc := profileService.NewService(professionals, log)
	agendaSvc := agendaconfigService.NewService(availability, landings, txMgr, log)
	adminSvc := adminstatsService.NewService(landings, users, log)

	// Инициализируем use cases
	createLandingUseCase := createLandingUC.NewUseCase(
		landings,
		promptBuilder,
		claimTokens,
		txMgr,
		cfg.Server.BaseURL,
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(appointments, txMgr, log)
	getAgendaUseCase := getAgendaUC.NewUseCase(availability, appointments, log)

	// Сессии и рендерер страниц
	session := handlers.NewSession(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.MaxAge)
	renderer, err := handlers.NewRenderer(api.Templates)
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}

	// Инициализируем handlers
	publicH := publicHandler.NewHandler(landingsSvc, getAgendaUseCase, profileSvc, renderer, session, log)
	landingsH := landingsHandler.NewHandler(
		createLandingUseCase,
		bookAppointmentUseCase,
		landingsSvc,
		leadsSvc,
		agendaSvc,
		renderer,
		session,
		log,
	)
	authH := authHandler.NewHandler(accountsSvc, renderer, session, log)
	dashboardH := dashboardHandler.NewHandler(leadsSvc, profileSvc, renderer, session, log)
	adminH := adminHandler.NewHandler(adminSvc, cfg.Server.BaseURL, renderer, session, log)

	authMW := middleware.NewAuth(session, accountsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.Use(authMW.CurrentUser)

	// Публичные страницы
	r.HandleFunc("/", publicH.Home).Methods(http.MethodGet)
	r.HandleFunc("/about", publicH.About).Methods(http.MethodGet)
	r.HandleFunc("/contacto", publicH.Contacto).Methods(http.MethodGet)
	r.HandleFunc("/profesionales", publicH.Professionals).Methods(http.MethodGet)
	r.HandleFunc("/profesionales/{id}", publicH.ProfessionalDetail).Methods(http.MethodGet)
	r.HandleFunc("/comenzar", landingsH.CreateForm).Methods(http.MethodGet)
	r.HandleFunc("/comenzar", landingsH.Create).Methods(http.MethodPost)
	r.HandleFunc("/resultado/{slug}", publicH.Result).Methods(http.MethodGet)
	r.HandleFunc("/p/{slug}", publicH.Profile).Methods(http.MethodGet)
	r.HandleFunc("/p/{slug}/contactar", landingsH.Contact).Methods(http.MethodPost)
	r.HandleFunc("/p/{slug}/cita", landingsH.Book).Methods(http.MethodPost)

	// Аутентификация
	r.HandleFunc("/registro", authH.RegisterForm).Methods(http.MethodGet)
	r.HandleFunc("/registro", authH.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", authH.LoginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", authH.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", authH.Logout).Methods(http.MethodGet)

	// Кабинет владельца (требует входа)
	protected := r.PathPrefix("").Subrouter()
	protected.Use(authMW.RequireAuth)

	protected.HandleFunc("/mis-landings", landingsH.List).Methods(http.MethodGet)
	protected.HandleFunc("/mis-landings/{id}", landingsH.Detail).Methods(http.MethodGet)
	protected.HandleFunc("/mis-landings/{id}/agenda", landingsH.ConfigureAgenda).Methods(http.MethodPost)

	protected.HandleFunc("/dashboard", dashboardH.Index).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/mensaje/{id}", dashboardH.Mensaje).Methods(http.MethodGet)
	protected.HandleFunc("/perfil/crear", dashboardH.ProfileCreateForm).Methods(http.MethodGet)
	protected.HandleFunc("/perfil/crear", dashboardH.ProfileCreate).Methods(http.MethodPost)
	protected.HandleFunc("/perfil/editar", dashboardH.ProfileEditForm).Methods(http.MethodGet)
	protected.HandleFunc("/perfil/editar", dashboardH.ProfileEdit).Methods(http.MethodPost)
	protected.HandleFunc("/servicios/crear", dashboardH.ServiceCreateForm).Methods(http.MethodGet)
	protected.HandleFunc("/servicios/crear", dashboardH.ServiceCreate).Methods(http.MethodPost)
	protected.HandleFunc("/servicios/{id}/editar", dashboardH.ServiceEditForm).Methods(http.MethodGet)
	protected.HandleFunc("/servicios/{id}/editar", dashboardH.ServiceEdit).Methods(http.MethodPost)
	protected.HandleFunc("/servicios/{id}/eliminar", dashboardH.ServiceDelete).Methods(http.MethodPost)

	// Админка
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(authMW.RequireAdmin)
	admin.HandleFunc("", adminH.Index).Methods(http.MethodGet)
	admin.HandleFunc("/", adminH.Index).Methods(http.MethodGet)
	admin.HandleFunc("/pedidos", adminH.Orders).Methods(http.MethodGet)

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
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
