package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createSessionHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/create_session"
	getAppointmentsHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/get_available_slots"
	getMessagesHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/get_messages"
	processTurnHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/process_turn"
	"github.com/m04kA/SMC-AssistantService/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantService/internal/config"
	calendarGen "github.com/m04kA/SMC-AssistantService/internal/infra/calendar"
	ledgerRepo "github.com/m04kA/SMC-AssistantService/internal/infra/storage/ledger"
	sessionsService "github.com/m04kA/SMC-AssistantService/internal/service/sessions"
	getAvailableSlotsUC "github.com/m04kA/SMC-AssistantService/internal/usecase/get_available_slots"
	processTurnUC "github.com/m04kA/SMC-AssistantService/internal/usecase/process_turn"
	startSessionUC "github.com/m04kA/SMC-AssistantService/internal/usecase/start_session"
	"github.com/m04kA/SMC-AssistantService/pkg/logger"
	"github.com/m04kA/SMC-AssistantService/pkg/metrics"
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

	log.Info("Starting SMC-AssistantService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Генерируем календарь доступности на окно бронирования
	generator := calendarGen.NewGenerator(
		cfg.Scheduler.HorizonBusinessDays,
		cfg.Scheduler.DailySlotTimeStrings(),
	)
	availability := generator.Generate(time.Now())
	log.Info("Availability calendar generated: days=%d, times_per_day=%d",
		availability.Len(), len(cfg.Scheduler.DailySlotTimes))

	// Инициализируем журнал подтверждённых бронирований
	ledger := ledgerRepo.NewRepository()

	// Инициализируем use cases
	startSessionUseCase := startSessionUC.NewUseCase(log)
	processTurnUseCase := processTurnUC.NewUseCase(
		availability,
		ledger,
		cfg.Scheduler.MaxAlternatives,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(availability, ledger, log)

	// Инициализируем сервис сессий
	sessionsSvc := sessionsService.NewService(
		startSessionUseCase,
		processTurnUseCase,
		ledger,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionsSvc, log)
	processTurn := processTurnHandler.NewHandler(sessionsSvc, log)
	getMessages := getMessagesHandler.NewHandler(sessionsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(sessionsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Создание сессии диалога
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Обработка реплики пользователя
	api.HandleFunc("/sessions/{sessionId}/turns", processTurn.Handle).Methods(http.MethodPost)

	// Транскрипт сессии
	api.HandleFunc("/sessions/{sessionId}/messages", getMessages.Handle).Methods(http.MethodGet)

	// Подтверждённые бронирования
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// Свободные слоты (всё окно или конкретная дата через ?date=)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
