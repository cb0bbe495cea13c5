package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gog_sync_v1_202601/internal/controller"

	_ "gog_sync_v1_202601/docs"
)

// Controllers 路由层依赖的控制器集合
type Controllers struct {
	Sync   *controller.SyncController
	Game   *controller.GameController
	Upload *controller.UploadController
}

// SetupRouter 注册所有路由
func SetupRouter(ctls *Controllers) *gin.Engine {
	r := gin.Default()

	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 2. API 路由组
	api := r.Group("/api")
	{
		// sync 同步触发与运行记录
		sync := api.Group("/sync")
		{
			// POST /api/sync/populate 管理端手动触发，不走定时
			sync.POST("/populate", ctls.Sync.Populate)
			sync.GET("/runs", ctls.Sync.GetRuns)
			sync.GET("/runs/:id", ctls.Sync.GetRun)
		}

		// taxonomy 分类实体查询
		api.GET("/taxonomy", ctls.Sync.GetTaxonomy)

		// game 游戏查询
		games := api.Group("/games")
		{
			games.GET("", ctls.Game.GetGames)
			games.GET("/:id", ctls.Game.GetGame)
			games.GET("/:id/media", ctls.Game.GetGameMedia)
		}

		// upload 手动挂载附件
		api.POST("/upload", ctls.Upload.Upload)
	}

	return r
}
