package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinequiz_backend/internal/config"
	"cinequiz_backend/internal/controller"
	"cinequiz_backend/internal/repository"
	"cinequiz_backend/internal/service"
	"cinequiz_backend/pkg/database"
	"cinequiz_backend/pkg/logger"
	"cinequiz_backend/pkg/monitoring"
	"cinequiz_backend/pkg/security"
	"cinequiz_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	question  *repository.QuestionRepository
	archetype *repository.ArchetypeRepository
	result    *repository.ResultRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	storage    *service.StorageService
	question   *service.QuestionService
	archetype  *service.ArchetypeService
	assessment *service.AssessmentService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	question   *controller.QuestionController
	archetype  *controller.ArchetypeController
	assessment *controller.AssessmentController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a reloaded configuration and notifies subscribers.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		question:  repository.NewQuestionRepository(db),
		archetype: repository.NewArchetypeRepository(db),
		result:    repository.NewResultRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.question = service.NewQuestionService(repos.question, rdb)
	s.archetype = service.NewArchetypeService(repos.archetype, rdb)
	s.assessment = service.NewAssessmentService(repos.question, repos.archetype, repos.result, repos.user)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user, s.storage),
		question:   controller.NewQuestionController(s.question),
		archetype:  controller.NewArchetypeController(s.archetype),
		assessment: controller.NewAssessmentController(s.assessment, s.question),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("cinequiz-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
