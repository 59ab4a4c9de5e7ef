// cmd/flow3d/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/config"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/handler"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/repository"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/service"
)

func main() {
	root := &cobra.Command{
		Use:   "flow3d",
		Short: "Strategic-planning management backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the schema and seed the admin user, then exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate()
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func serve() error {
	logger := newLogger()
	slog.SetDefault(logger)

	cfg := config.Load()

	db, hasher, err := setupDatabase(cfg)
	if err != nil {
		return err
	}

	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
	userRepo := repository.NewUserRepository(db, hasher)
	authService := service.NewAuthService(userRepo, hasher, tokenManager, logger)

	deps := handler.Dependencies{
		Tokens: tokenManager,
		Auth:   authService,

		Users:              userRepo,
		Organizations:      repository.NewOrganizationRepository(db),
		Departments:        repository.NewDepartmentRepository(db),
		StrategyPlans:      repository.NewStrategyPlanRepository(db),
		StrategicGoals:     repository.NewStrategicGoalRepository(db),
		HrDevPlans:         repository.NewHrDevPlanRepository(db),
		HrDevInitiatives:   repository.NewHrDevInitiativeRepository(db),
		DigitalDevPlans:    repository.NewDigitalDevPlanRepository(db),
		DigitalInitiatives: repository.NewDigitalInitiativeRepository(db),
		ActionPlans:        repository.NewActionPlanRepository(db),
		ActionItems:        repository.NewActionItemRepository(db),
		RiskPlans:          repository.NewRiskManagementPlanRepository(db),
		Risks:              repository.NewRiskRepository(db),
		Dashboards:         repository.NewDashboardRepository(db),
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Mount(cfg.Server.BasePath+"/api", handler.Routes(deps))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "driver", cfg.Database.Driver)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func migrate() error {
	logger := newLogger()
	slog.SetDefault(logger)

	cfg := config.Load()

	_, _, err := setupDatabase(cfg)
	if err != nil {
		return err
	}

	logger.Info("migration complete", "driver", cfg.Database.Driver)
	return nil
}

// setupDatabase opens the configured store, runs migrations, and seeds
// the default admin account.
func setupDatabase(cfg *config.Config) (db *gorm.DB, hasher *auth.PasswordHasher, err error) {
	var dsn string
	switch cfg.Database.Driver {
	case "postgres":
		dsn = cfg.PostgresDSN()
	default:
		dsn = cfg.Database.Path
	}

	conn, err := repository.Open(cfg.Database.Driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up database: %w", err)
	}

	if err := repository.Migrate(conn); err != nil {
		return nil, nil, fmt.Errorf("migrating database: %w", err)
	}

	hasher = auth.NewPasswordHasher()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repository.SeedAdmin(ctx, conn, hasher); err != nil {
		return nil, nil, fmt.Errorf("seeding admin user: %w", err)
	}

	return conn, hasher, nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"error":"Server Error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
