package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	authDelivery "planner-backend/internal/auth/delivery"
	authdomain "planner-backend/internal/auth/domain"
	authRepo "planner-backend/internal/auth/repository"
	authUsecase "planner-backend/internal/auth/usecase"
	eventDelivery "planner-backend/internal/event/delivery"
	eventdomain "planner-backend/internal/event/domain"
	eventRepo "planner-backend/internal/event/repository"
	eventUsecase "planner-backend/internal/event/usecase"
	profileDelivery "planner-backend/internal/profile/delivery"
	profiledomain "planner-backend/internal/profile/domain"
	profileRepo "planner-backend/internal/profile/repository"
	profileUsecase "planner-backend/internal/profile/usecase"
	taskDelivery "planner-backend/internal/task/delivery"
	taskdomain "planner-backend/internal/task/domain"
	taskRepo "planner-backend/internal/task/repository"
	taskUsecase "planner-backend/internal/task/usecase"
	"planner-backend/pkg/ai"
	"planner-backend/pkg/config"
	"planner-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Models lists every table the service owns, in creation order.
func Models() []interface{} {
	return []interface{}{
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&profiledomain.Profile{},
		&eventdomain.Event{},
		&taskdomain.Task{},
	}
}

type Handler struct {
	config          *config.Config
	authUsecase     authUsecase.AuthUsecase
	authHandler     *authDelivery.AuthHandler
	userHandler     *authDelivery.UserHandler
	eventHandler    *eventDelivery.EventHandler
	chatHandler     *eventDelivery.ChatHandler
	taskHandler     *taskDelivery.TaskHandler
	profileHandler  *profileDelivery.ProfileHandler
	settingsHandler *SettingsHandler
}

// AIConfig maps the service configuration onto the provider factory's.
func AIConfig(cfg *config.Config) ai.Config {
	return ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
		GeminiAPIKey:  cfg.GeminiApiKey,
		GeminiModel:   cfg.GeminiModel,
	}
}

// NewHandler wires repositories, use cases and HTTP handlers.
func NewHandler(db *gorm.DB, cfg *config.Config) (*Handler, error) {
	validation.Register()

	// Initialize AI service
	aiCfg := AIConfig(cfg)
	completion, err := ai.NewCompletionService(aiCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AI service: %w", err)
	}
	info := ai.Describe(aiCfg)
	log.Printf("[AI] Provider %s, model %s, configured=%t", info.Provider, info.Model, info.Configured)

	// Repositories
	userRepository := authRepo.NewUserRepository(db)
	eventRepository := eventRepo.NewGormEventRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	profileRepository := profileRepo.NewProfileRepository(db)

	// Use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	userUc := authUsecase.NewUserUsecase(userRepository)
	eventUc := eventUsecase.NewEventUsecase(eventRepository)
	chatUc := eventUsecase.NewChatUsecase(eventRepository, ai.NewEventExtractor(completion))
	taskUc := taskUsecase.NewTaskUsecase(taskRepository)
	profileUc := profileUsecase.NewProfileUsecase(profileRepository)

	cookies := authDelivery.CookieOptions{
		Secure:     cfg.CookieSecure,
		SessionTTL: cfg.JWTAccessExpiry,
	}

	return &Handler{
		config:          cfg,
		authUsecase:     authUc,
		authHandler:     authDelivery.NewAuthHandler(authUc, cookies),
		userHandler:     authDelivery.NewUserHandler(userUc),
		eventHandler:    eventDelivery.NewEventHandler(eventUc),
		chatHandler:     eventDelivery.NewChatHandler(chatUc),
		taskHandler:     taskDelivery.NewTaskHandler(taskUc),
		profileHandler:  profileDelivery.NewProfileHandler(profileUc),
		settingsHandler: NewSettingsHandler(aiCfg),
	}, nil
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.Default()
	SetupRoutes(r, h)
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Start(ctx context.Context, addr string) error {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   h.config.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", authDelivery.CSRFHeader, "Accept", "Origin", "X-Requested-With"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           corsHandler.Handler(h.Router()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
