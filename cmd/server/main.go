package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"scholarlink/internal/config"
	"scholarlink/internal/handler"
	"scholarlink/internal/port"
	"scholarlink/internal/repository/memory"
	"scholarlink/internal/repository/postgres"
	"scholarlink/internal/repository/seed"
	"scholarlink/internal/router"
	"scholarlink/internal/service"
	memstorage "scholarlink/internal/storage/memory"
	s3storage "scholarlink/internal/storage/s3"
	"scholarlink/internal/verifier"
	"scholarlink/internal/verifier/gemini"
)

// @title ScholarLink API
// @version 1.0
// @description Connects students seeking sponsorship with donors and verifies uploaded marks memos.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type stores struct {
	students port.StudentRepository
	donors   port.DonorRepository
	sessions port.SessionRepository
	db       *sqlx.DB
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(cfg)
	if err != nil {
		return err
	}
	if st.db != nil {
		defer st.db.Close()
	}

	if cfg.Store.Seed {
		if err := seed.Students(ctx, st.students); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	documents, err := openDocumentStorage(ctx, cfg)
	if err != nil {
		return err
	}

	// Initialize verification
	gemini.Register()
	strategy, err := verifier.NewFromConfig(&cfg.Verifier)
	if err != nil {
		return fmt.Errorf("failed to initialize verifier: %w", err)
	}
	gateway := verifier.NewGateway(strategy)
	log.Printf("Document verification provider: %s", gateway.Provider())

	limits := service.UploadLimits{MaxBytes: cfg.Storage.MaxFileSizeMB * 1024 * 1024}

	// Initialize services
	studentSvc := service.NewStudentService(st.students, documents, gateway, limits)
	donorSvc := service.NewDonorService(st.donors, service.NewPlaceholderMatcher(st.students), documents)
	sessionSvc := service.NewSessionService(st.sessions)
	verificationSvc := service.NewVerificationService(gateway, gateway.Provider(), limits)

	// Initialize handlers
	var pinger handler.Pinger
	if st.db != nil {
		pinger = st.db
	}
	r := router.Setup(router.Handlers{
		Health:  handler.NewHealthHandler(pinger, gateway.Provider()),
		Verify:  handler.NewVerifyHandler(verificationSvc),
		Student: handler.NewStudentHandler(studentSvc),
		Donor:   handler.NewDonorHandler(donorSvc),
		Session: handler.NewSessionHandler(sessionSvc),
	}, cfg.CORS.AllowedOrigins, limits.MaxBytes)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (%s)", cfg.Server.Port, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStores(cfg *config.Config) (*stores, error) {
	if cfg.Store.Driver == "postgres" {
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Printf("Using postgres store at %s:%d/%s", cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)
		return &stores{
			students: postgres.NewStudentRepo(db),
			donors:   postgres.NewDonorRepo(db),
			sessions: postgres.NewSessionRepo(db),
			db:       db,
		}, nil
	}

	log.Println("Using in-memory store; data is lost on restart")
	return &stores{
		students: memory.NewStudentRepo(),
		donors:   memory.NewDonorRepo(),
		sessions: memory.NewSessionRepo(),
	}, nil
}

func openDocumentStorage(ctx context.Context, cfg *config.Config) (port.DocumentStorage, error) {
	if cfg.Storage.Driver == "s3" {
		store, err := s3storage.NewDocumentStore(ctx, &cfg.S3,
			time.Duration(cfg.Storage.PresignExpiry)*time.Second)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		return store, nil
	}
	return memstorage.NewStore(), nil
}
