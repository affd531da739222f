package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "planner-backend/cmd/api"
	authRepo "planner-backend/internal/auth/repository"
	authdto "planner-backend/internal/auth/dto"
	authUsecase "planner-backend/internal/auth/usecase"
	"planner-backend/pkg/config"
	"planner-backend/pkg/database"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func main() {
	app := &cli.App{
		Name:  "planner-backend",
		Usage: "calendar, task and profile API with chat-to-event",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update database tables",
				Action: migrate,
			},
			{
				Name:  "create-admin",
				Usage: "create a staff user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"ADMIN_PASSWORD"}},
				},
				Action: createAdmin,
			},
		},
		// No subcommand means serve
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openDatabase loads configuration, connects and migrates.
func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg := config.Load()

	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db, api.Models()...); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return cfg, db, nil
}

func serve(c *cli.Context) error {
	cfg, db, err := openDatabase()
	if err != nil {
		return err
	}

	handler, err := api.NewHandler(db, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return handler.Start(ctx, ":"+cfg.Port)
}

func migrate(c *cli.Context) error {
	if _, _, err := openDatabase(); err != nil {
		return err
	}
	log.Println("[Database] Migration complete")
	return nil
}

func createAdmin(c *cli.Context) error {
	_, db, err := openDatabase()
	if err != nil {
		return err
	}

	req := &authdto.CreateUserRequest{
		RegisterRequest: authdto.RegisterRequest{
			Username: c.String("username"),
			Email:    c.String("email"),
			Password: c.String("password"),
		},
		IsStaff: true,
	}

	userRepository := authRepo.NewUserRepository(db)
	users := authUsecase.NewUserUsecase(userRepository)
	user, err := users.CreateUser(req)
	if errors.Is(err, authUsecase.ErrUsernameTaken) {
		return promote(userRepository, users, req.Username)
	}
	if err != nil {
		return err
	}

	log.Printf("[Auth] Created staff user %s (%s)", user.Username, user.ID)
	return nil
}

// promote marks an existing user as staff.
func promote(userRepository authRepo.UserRepository, users authUsecase.UserUsecase, username string) error {
	existing, err := userRepository.FindByUsername(username)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("user %q not found", username)
	}
	staff := true
	if _, err := users.UpdateUser(existing.ID, &authdto.UpdateUserRequest{IsStaff: &staff}); err != nil {
		return err
	}
	log.Printf("[Auth] User %s already existed, granted staff", username)
	return nil
}
