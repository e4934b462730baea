package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nihongo_backend/internal/config"
	"nihongo_backend/internal/controller"
	"nihongo_backend/internal/repository"
	"nihongo_backend/internal/service"
	"nihongo_backend/pkg/configwatcher"
	"nihongo_backend/pkg/database"
	"nihongo_backend/pkg/logger"
	"nihongo_backend/pkg/monitoring"
	"nihongo_backend/pkg/security"
	"nihongo_backend/pkg/tracing"

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
	user       *repository.UserRepository
	kanji      *repository.KanjiRepository
	kana       *repository.KanaRepository
	vocabulary *repository.VocabularyRepository
	grammar    *repository.GrammarRepository
	submission *repository.SubmissionRepository
	miniTest   *repository.MiniTestRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	content  *service.ContentService
	grammar  *service.GrammarService
	miniTest *service.MiniTestService
	storage  *service.StorageService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	content  *controller.ContentController
	grammar  *controller.GrammarController
	miniTest *controller.MiniTestController
	upload   *controller.UploadController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		kanji:      repository.NewKanjiRepository(db),
		kana:       repository.NewKanaRepository(db),
		vocabulary: repository.NewVocabularyRepository(db),
		grammar:    repository.NewGrammarRepository(db),
		submission: repository.NewSubmissionRepository(db),
		miniTest:   repository.NewMiniTestRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, rdb)
	s.content = service.NewContentService(repos.kanji, repos.kana, repos.vocabulary)
	s.grammar = service.NewGrammarService(repos.grammar, repos.submission, s.user)
	s.miniTest = service.NewMiniTestService(repos.miniTest, s.user)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, s.user),
		user:     controller.NewUserController(s.user),
		content:  controller.NewContentController(s.content),
		grammar:  controller.NewGrammarController(s.grammar),
		miniTest: controller.NewMiniTestController(s.miniTest),
		upload:   controller.NewUploadController(s.storage),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks runs the stale-streak sweep once at startup, then every
// day shortly after local midnight.
func (a *App) startBackgroundTasks(s *services) {
	go func() {
		s.user.SweepStaleStreaks(time.Now())

		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), 0, 5, 0, 0, now.Location()).AddDate(0, 0, 1)
			time.Sleep(time.Until(next))
			s.user.SweepStaleStreaks(time.Now())
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("logger initialized")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("nihongo-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("config reloaded")
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

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
