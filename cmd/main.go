package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"gog_sync_v1_202601/internal/controller"
	"gog_sync_v1_202601/internal/model"
	"gog_sync_v1_202601/internal/repository"
	"gog_sync_v1_202601/internal/router"
	"gog_sync_v1_202601/internal/service"
	"gog_sync_v1_202601/internal/task"
	"gog_sync_v1_202601/pkg/database"
)

func main() {
	// 0. 加载 .env（没有就用系统环境变量）
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] 未找到 .env，使用系统环境变量")
	}

	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动后台任务
	initTasks(deps)

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers)

	// 5. 启动服务
	startServer(r, deps)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
	MediaTask   *task.MediaUploadTask
}

// Repositories 仓库集合
type Repositories struct {
	Taxonomy *repository.TaxonomyRepo
	Game     *repository.GameRepo
	Media    *repository.MediaRepo
	SyncRun  *repository.SyncRunRepo
}

// Services 服务集合
type Services struct {
	Catalog  *service.CatalogService
	Scrape   *service.ScrapeService
	Media    *service.MediaService
	Populate *service.PopulateService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	return database.InitDB(
		buildDSN(),
		// 分类
		&model.Developer{}, &model.Publisher{}, &model.Category{}, &model.Platform{},
		// 游戏与媒体
		&model.Game{}, &model.MediaAsset{}, &model.MediaTask{},
		// 同步运行记录
		&model.SyncRun{},
	)
}

// buildDSN 从环境变量拼 Postgres 连接串
func buildDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "gog_sync"),
		getEnv("DB_PASSWORD", "gog_sync"),
		getEnv("DB_NAME", "gog_sync"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Taxonomy: repository.NewTaxonomyRepo(db),
		Game:     repository.NewGameRepo(db),
		Media:    repository.NewMediaRepo(db),
		SyncRun:  repository.NewSyncRunRepo(db),
	}

	// -------- 存储 --------
	storage := initStorage()

	// -------- 业务服务 --------
	services := &Services{
		Catalog: service.NewCatalogService(&service.CatalogConfig{
			BaseURL: getEnv("GOG_CATALOG_URL", ""),
		}),
		Scrape: service.NewScrapeService(&service.ScrapeConfig{
			BaseURL: getEnv("GOG_SITE_URL", ""),
		}),
		Media: service.NewMediaService(repos.Media, storage),
	}
	services.Populate = service.NewPopulateService(
		services.Catalog, services.Scrape, services.Media,
		repos.Taxonomy, repos.Game, repos.SyncRun,
	)

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Sync:   controller.NewSyncController(services.Populate, repos.SyncRun, repos.Taxonomy),
		Game:   controller.NewGameController(repos.Game, repos.Media),
		Upload: controller.NewUploadController(services.Media),
	}

	// -------- 后台任务 --------
	mediaTask := task.NewMediaUploadTask(repos.Media, services.Media)
	mediaTask.SetLimits(
		getEnvInt("MEDIA_CONCURRENCY", 5),
		getEnvInt("MEDIA_BATCH_SIZE", 50),
		getEnvInt("MEDIA_MAX_ATTEMPTS", 3),
		time.Duration(getEnvInt("MEDIA_RETRY_BASE_SEC", 60))*time.Second,
	)

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
		MediaTask:   mediaTask,
	}
}

// initStorage 初始化存储提供者
// 拿不到可用配置直接退出：没有存储，媒体任务全会失败
func initStorage() service.StorageProvider {
	storage, err := service.NewStorageProvider(&service.StorageConfig{
		Provider:  getEnv("STORAGE_PROVIDER", "local"),
		Bucket:    getEnv("AWS_BUCKET", ""),
		Region:    getEnv("AWS_REGION", ""),
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		CDNDomain: getEnv("AWS_CDN_DOMAIN", ""),
		BasePath:  getEnv("STORAGE_BASE_PATH", "gog-media"),
		LocalDir:  getEnv("LOCAL_STORAGE_DIR", "./storage/media"),
	})
	if err != nil {
		log.Fatalf("[Storage] 存储服务初始化失败: %v", err)
	}
	return storage
}

// ==================== 后台任务 ====================

// initTasks 启动后台任务
func initTasks(deps *Dependencies) {
	deps.MediaTask.Start()
	log.Println("[Main] 后台任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动 HTTP 服务并等待退出信号
func startServer(r *gin.Engine, deps *Dependencies) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("[Main] 服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[Main] 服务启动失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Main] 正在关闭服务...")

	// 先停后台任务，等正在消费的批次收尾
	deps.MediaTask.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Main] 服务强制关闭: %v", err)
	}

	log.Println("[Main] 服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
