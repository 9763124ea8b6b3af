package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/omazm/asset-manager/config"
	"github.com/omazm/asset-manager/controllers"
	_ "github.com/omazm/asset-manager/docs"
	"github.com/omazm/asset-manager/middleware"
	"github.com/omazm/asset-manager/services/container"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer, db, cfg)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	db *gorm.DB,
	cfg *config.Config,
) {
	// API 路由根路径，按IP限流
	api := r.Group("/api")
	api.Use(middleware.RateLimiter(50, 100))

	// 健康检查
	health := controllers.NewHealthCheckController(db, cfg)
	api.GET("/ping", health.Ping)
	api.GET("/health", health.Health)

	// 资产类型
	assetTypes := api.Group("/asset_types")
	{
		assetTypes.GET("", controllers.HandleAssetTypeFunc(container, "getAssetTypes"))
		assetTypes.POST("", controllers.HandleAssetTypeFunc(container, "createAssetType"))
		assetTypes.GET("/:id", controllers.HandleAssetTypeFunc(container, "getAssetType"))
	}

	// 资产
	assets := api.Group("/assets")
	{
		assets.GET("", controllers.HandleAssetFunc(container, "getAssets"))
		assets.POST("", controllers.HandleAssetFunc(container, "createAsset"))
		assets.PUT("/:id", controllers.HandleAssetFunc(container, "updateAsset"))
	}

	// 楼层与楼层物品（直接写库的管理操作）
	floors := api.Group("/floors")
	{
		floors.GET("", controllers.HandleFloorFunc(container, "getFloors"))
		floors.POST("", controllers.HandleFloorFunc(container, "createFloor"))
		floors.GET("/:id", controllers.HandleFloorFunc(container, "getFloor"))
		floors.PUT("/:id", controllers.HandleFloorFunc(container, "updateFloor"))
		floors.POST("/:id/items", controllers.HandleFloorFunc(container, "createFloorItem"))
		floors.PUT("/:id/items/:item_id", controllers.HandleFloorFunc(container, "updateFloorItem"))
		floors.DELETE("/:id/items/:item_id", controllers.HandleFloorFunc(container, "deleteFloorItem"))
	}

	// 人员名册
	api.GET("/resources", controllers.HandleResourceFunc(container, "getResources"))

	// 平面图编辑（暂存写路径）与提交
	floorMap := api.Group("/floor_map")
	{
		floorMap.PUT("/items/:item_id/position", controllers.HandleFloorMapFunc(container, "updateItemPosition"))
		floorMap.POST("/floors/:id/assets", controllers.HandleFloorMapFunc(container, "placeNewAsset"))
		floorMap.POST("/floors/:id/assets/:asset_id", controllers.HandleFloorMapFunc(container, "placeExistingAsset"))
		floorMap.POST("/commit", controllers.HandleFloorMapFunc(container, "commitStagedFloors"))
		floorMap.POST("/refresh", controllers.HandleFloorMapFunc(container, "refreshStagedData"))
	}
}
