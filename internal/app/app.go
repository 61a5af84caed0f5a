package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cheickthiam/portfolio/internal/config"
	"github.com/cheickthiam/portfolio/internal/db"
	"github.com/cheickthiam/portfolio/internal/repository"
	"github.com/cheickthiam/portfolio/internal/service"
	"github.com/cheickthiam/portfolio/internal/session"
	"github.com/cheickthiam/portfolio/internal/storage"
)

const sessionCleanupInterval = time.Minute

type App struct {
	Cfg      *config.Config
	DB       *db.Conn
	Repos    *repository.Set
	Sessions *session.Tracker

	AuthService          *service.AuthService
	EmailService         *service.EmailService
	FileService          *service.FileService
	ExperienceService    *service.ExperienceService
	ProjectService       *service.ProjectService
	CertificationService *service.CertificationService
	ContactService       *service.ContactService
	ProfileService       *service.ProfileService
	SeedService          *service.SeedService
}

// New connects the database and object store and wires every service.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	conn := db.New(cfg.DBDriver, cfg.DBConnection, cfg.MongoDatabase)
	err := conn.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Storage is optional: without credentials uploads answer StorageNotConfigured
	var fileStorage storage.Storage
	s3, err := storage.New(ctx, cfg)
	switch {
	case err == nil:
		fileStorage = s3
	case errors.Is(err, storage.ErrNotConfigured):
		slog.Warn("object storage not configured, uploads disabled")
	default:
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app, err := Assemble(cfg, conn, fileStorage)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}
	app.Sessions.Start(sessionCleanupInterval)

	if cfg.AdminPassword != "" {
		created, err := app.AuthService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
		}
		if created {
			slog.Info("admin account created from environment", "email", cfg.AdminEmail)
		}
	}

	return app, nil
}

// Assemble wires repositories and services on top of an open connection.
// fileStorage may be nil.
func Assemble(cfg *config.Config, conn *db.Conn, fileStorage storage.Storage) (*App, error) {
	var repos *repository.Set
	switch conn.Driver() {
	case db.DriverMongo:
		repos = repository.NewMongo(conn.Mongo())
	case db.DriverSQLite, db.DriverPostgres:
		repos = repository.NewSQL(conn.SQL())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", conn.Driver())
	}

	sessions := session.NewTracker(cfg.SessionIdleTimeout)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AdminEmail,
		cfg.EmailRatePerSecond,
		cfg.IsDevelopment(),
	)
	fileService := service.NewFileService(fileStorage, cfg.S3PresignExpiryPrivate)
	authService := service.NewAuthService(repos.Admins, sessions, cfg.JWTSecret, cfg.JWTExpiry)

	return &App{
		Cfg:      cfg,
		DB:       conn,
		Repos:    repos,
		Sessions: sessions,

		AuthService:          authService,
		EmailService:         emailService,
		FileService:          fileService,
		ExperienceService:    service.NewExperienceService(repos.Experiences),
		ProjectService:       service.NewProjectService(repos.Projects, fileService),
		CertificationService: service.NewCertificationService(repos.Certifications, fileService),
		ContactService:       service.NewContactService(repos.Contacts, emailService),
		ProfileService:       service.NewProfileService(repos.Profiles, fileService),
		SeedService:          service.NewSeedService(repos.Experiences, repos.Projects),
	}, nil
}

// Close waits for pending contact notifications, then releases the
// session tracker and the database.
func (a *App) Close() error {
	a.ContactService.Wait()
	a.Sessions.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.DB.Close(ctx)
}
