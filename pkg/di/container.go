package di

import (
	"fmt"

	"gorm.io/gorm"

	"tasktracker/application/serviceimpl"
	"tasktracker/domain/ports"
	"tasktracker/domain/repositories"
	"tasktracker/infrastructure/memory"
	"tasktracker/infrastructure/messaging"
	"tasktracker/infrastructure/postgres"
	"tasktracker/infrastructure/redis"
	"tasktracker/interfaces/api/handlers"
	"tasktracker/pkg/config"
	"tasktracker/pkg/logger"
	"tasktracker/pkg/scheduler"
	"tasktracker/pkg/tokens"
)

// Container wires configuration, storage, messaging and services together and
// owns their lifecycle.
type Container struct {
	config *config.Config

	db          *gorm.DB
	redisClient *redis.Client
	publisher   *messaging.NATSTaskEventPublisher
	scheduler   scheduler.EventScheduler

	userRepo repositories.UserRepository
	taskRepo repositories.TaskRepository

	tokenService *tokens.Service
	services     *handlers.Services
}

func NewContainer() (*Container, error) {
	c := &Container{}
	if err := c.initialize(); err != nil {
		c.Cleanup()
		return nil, err
	}
	return c, nil
}

func (c *Container) initialize() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.config = cfg

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := c.initStorage(); err != nil {
		return err
	}

	// Redis is optional. Without it, tokens stay valid until they expire.
	var revocationList tokens.RevocationList
	if cfg.Redis.URL != "" {
		client, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.redisClient = client
		revocationList = redis.NewRevocationList(client)
		logger.Info("Token revocation list enabled")
	}

	c.tokenService = tokens.NewService(cfg.JWT.Secret, cfg.JWT.TokenTTL, revocationList)

	// NATS is optional. Without it, task events are not published.
	var events ports.TaskEventPublisher
	if cfg.NATS.URL != "" {
		publisher, err := messaging.NewNATSTaskEventPublisher(cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to nats: %w", err)
		}
		c.publisher = publisher
		events = publisher
		logger.Info("Task event publishing enabled")
	}

	c.services = &handlers.Services{
		UserService:  serviceimpl.NewUserService(c.userRepo, c.tokenService),
		TaskService:  serviceimpl.NewTaskService(c.taskRepo, events),
		TokenService: c.tokenService,
	}

	return c.initScheduler()
}

func (c *Container) initStorage() error {
	switch c.config.Database.Driver {
	case "memory":
		c.userRepo = memory.NewUserRepository()
		c.taskRepo = memory.NewTaskRepository()
		logger.Info("Using in-memory storage")
	default:
		db, err := postgres.NewDatabase(postgres.DatabaseConfig{
			Host:     c.config.Database.Host,
			Port:     c.config.Database.Port,
			User:     c.config.Database.User,
			Password: c.config.Database.Password,
			DBName:   c.config.Database.DBName,
			SSLMode:  c.config.Database.SSLMode,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.db = db
		c.userRepo = postgres.NewUserRepository(db)
		c.taskRepo = postgres.NewTaskRepository(db)
	}
	return nil
}

func (c *Container) initScheduler() error {
	c.scheduler = scheduler.NewEventScheduler()

	monitor := serviceimpl.NewOverdueMonitor(c.taskRepo)
	if err := c.scheduler.AddJob("overdue-task-report", "*/15 * * * *", monitor.Run); err != nil {
		return fmt.Errorf("failed to schedule overdue task report: %w", err)
	}

	c.scheduler.Start()
	return nil
}

func (c *Container) Cleanup() {
	if c.scheduler != nil && c.scheduler.IsRunning() {
		c.scheduler.Stop()
	}

	if c.publisher != nil {
		c.publisher.Close()
	}

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			logger.Error("Failed to close redis client", "error", err)
		}
	}

	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Failed to close database connection", "error", err)
			}
		}
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return c.services
}
