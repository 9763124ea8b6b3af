package container

import (
	"gorm.io/gorm"

	"github.com/omazm/asset-manager/config"
	"github.com/omazm/asset-manager/models"
	"github.com/omazm/asset-manager/services"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 暂存与缓存层
	stagingService services.InterfaceStagingService
	cacheService   services.InterfaceCacheService

	// 暂存写路径与同步
	floorPlanService services.InterfaceFloorPlanService
	syncService      services.InterfaceSyncService

	// 业务服务（直接写库）
	assetTypeService services.InterfaceAssetTypeService
	assetService     services.InterfaceAssetService
	floorService     services.InterfaceFloorService
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	// 暂存存储是其余各层的共享底座
	c.stagingService = services.NewStagingService(c.config)

	// 读穿缓存网关，人员名册为注入的只读名单
	c.cacheService = services.NewCacheService(c.db, c.stagingService, models.DefaultResources)

	// 暂存写路径与同步提交
	c.floorPlanService = services.NewFloorPlanService(c.stagingService, c.cacheService)
	c.syncService = services.NewSyncService(c.db, c.stagingService, models.DefaultResources)

	// 业务服务
	c.assetTypeService = services.NewAssetTypeService(c.db, c.stagingService)
	c.assetService = services.NewAssetService(c.db, c.stagingService)
	c.floorService = services.NewFloorService(c.db, c.stagingService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "staging":
		return c.stagingService
	case "cache":
		return c.cacheService
	case "floor_plan":
		return c.floorPlanService
	case "sync":
		return c.syncService
	case "asset_type":
		return c.assetTypeService
	case "asset":
		return c.assetService
	case "floor":
		return c.floorService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}
