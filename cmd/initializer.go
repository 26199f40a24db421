package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	firebase "firebase.google.com/go"
	_ "github.com/go-sql-driver/mysql"
	"google.golang.org/api/option"

	"rentalBack/internal/config"
	"rentalBack/internal/handlers"
	"rentalBack/internal/repositories"
	"rentalBack/internal/services"
	"rentalBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	db       *sql.DB

	tokenManager *utils.Manager

	authHandler        *handlers.AuthHandler
	userHandler        *handlers.UserHandler
	rentalHandler      *handlers.RentalHandler
	messageHandler     *handlers.MessageHandler
	notifyTokenHandler *handlers.NotifyTokenHandler

	userService *services.UserService
	wsManager   *WebSocketManager
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	rentalRepo := repositories.RentalRepository{DB: db}
	messageRepo := repositories.MessageRepository{DB: db}

	pictures, err := newPictureStore(cfg)
	if err != nil {
		return nil, err
	}

	pushService, err := newPushService(cfg, db)
	if err != nil {
		return nil, err
	}

	wsManager := NewWebSocketManager()

	// Services
	authService := &services.AuthService{UserRepo: &userRepo, TokenManager: tokenManager}
	userService := &services.UserService{UserRepo: &userRepo}
	rentalService := &services.RentalService{RentalRepo: &rentalRepo, UserRepo: &userRepo, Pictures: pictures}
	messageService := &services.MessageService{
		MessageRepo: &messageRepo,
		RentalRepo:  &rentalRepo,
		UserRepo:    &userRepo,
		Notifier:    wsManager,
		Push:        pushService,
	}

	// Handlers
	authHandler := &handlers.AuthHandler{Service: authService}
	userHandler := &handlers.UserHandler{Service: userService}
	rentalHandler := &handlers.RentalHandler{Service: rentalService}
	messageHandler := &handlers.MessageHandler{Service: messageService}

	var notifyTokenHandler *handlers.NotifyTokenHandler
	if pushService != nil {
		notifyTokenHandler = &handlers.NotifyTokenHandler{Push: pushService}
	}

	return &application{
		errorLog:           errorLog,
		infoLog:            infoLog,
		cfg:                cfg,
		db:                 db,
		tokenManager:       tokenManager,
		authHandler:        authHandler,
		userHandler:        userHandler,
		rentalHandler:      rentalHandler,
		messageHandler:     messageHandler,
		notifyTokenHandler: notifyTokenHandler,
		userService:        userService,
		wsManager:          wsManager,
	}, nil
}

func newPictureStore(cfg config.Config) (services.PictureStore, error) {
	switch cfg.Uploads.Driver {
	case "", "disk":
		return &utils.DiskStore{Dir: cfg.Uploads.Dir, BaseURL: cfg.Server.BaseURL}, nil
	case "s3":
		return &utils.S3Store{
			Bucket:    cfg.Uploads.S3.Bucket,
			Region:    cfg.Uploads.S3.Region,
			Endpoint:  cfg.Uploads.S3.Endpoint,
			AccessKey: cfg.Uploads.S3.AccessKey,
			SecretKey: cfg.Uploads.S3.SecretKey,
		}, nil
	default:
		return nil, fmt.Errorf("unknown uploads driver %q", cfg.Uploads.Driver)
	}
}

// newPushService returns nil when no firebase credentials are configured;
// push is simply disabled in that case.
func newPushService(cfg config.Config, db *sql.DB) (*services.PushService, error) {
	if cfg.Firebase.CredentialsFile == "" {
		return nil, nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging: %w", err)
	}

	return &services.PushService{
		Client:    client,
		TokenRepo: &repositories.NotifyTokenRepository{DB: db},
	}, nil
}

func openDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
