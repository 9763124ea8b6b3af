package services

import (
	"gorm.io/gorm"

	"github.com/omazm/asset-manager/config"
	"github.com/omazm/asset-manager/models"
)

// InterfaceCacheService 定义读穿缓存网关接口。
// 每个集合优先返回暂存副本，缺失时从数据库拉取、
// 转换为规范形态并回填暂存文件
type InterfaceCacheService interface {
	GetAssetTypes() []models.AssetType
	GetAllAssets() []models.Asset
	GetFloors() []models.FloorPlan
	GetResources() []models.Resource
	Invalidate(key string)
}

// CacheService 提供读穿缓存网关
type CacheService struct {
	DB      *gorm.DB
	Staging InterfaceStagingService
	Roster  []models.Resource
}

// NewCacheService 创建一个新的缓存网关
func NewCacheService(db *gorm.DB, staging InterfaceStagingService, roster []models.Resource) InterfaceCacheService {
	return &CacheService{
		DB:      db,
		Staging: staging,
		Roster:  roster,
	}
}

// 1. GetAssetTypes 获取资产类型集合。
// 数据库读取失败时退化为空集合，绝不向调用方抛错
func (s *CacheService) GetAssetTypes() []models.AssetType {
	if assetTypes, ok := s.Staging.ReadAssetTypes(); ok {
		return assetTypes
	}

	var assetTypes []models.AssetType
	if err := s.DB.Order("created_at desc").Find(&assetTypes).Error; err != nil {
		config.Error("获取资产类型列表失败: %v", err)
		return []models.AssetType{}
	}

	if err := s.Staging.WriteAssetTypes(assetTypes); err != nil {
		config.Warning("回填资产类型暂存失败: %v", err)
	}
	return assetTypes
}

// 2. GetAllAssets 获取资产集合
func (s *CacheService) GetAllAssets() []models.Asset {
	if assets, ok := s.Staging.ReadAssets(); ok {
		return assets
	}

	var assets []models.Asset
	if err := s.DB.Order("created_at desc").Find(&assets).Error; err != nil {
		config.Error("获取资产列表失败: %v", err)
		return []models.Asset{}
	}

	if err := s.Staging.WriteAssets(assets); err != nil {
		config.Warning("回填资产暂存失败: %v", err)
	}
	return assets
}

// 3. GetFloors 获取楼层集合。数据库行转换为规范形态：
// 物品内嵌为数组，posX/posY 折叠为 pos，空的可选列省略
func (s *CacheService) GetFloors() []models.FloorPlan {
	if floors, ok := s.Staging.ReadFloors(); ok {
		return floors
	}

	var rows []models.Floor
	if err := s.DB.Preload("Items").Order("created_at desc").Find(&rows).Error; err != nil {
		config.Error("获取楼层列表失败: %v", err)
		return []models.FloorPlan{}
	}

	floors := make([]models.FloorPlan, 0, len(rows))
	for i := range rows {
		floors = append(floors, rows[i].ToFloorPlan())
	}

	if err := s.Staging.WriteFloors(floors); err != nil {
		config.Warning("回填楼层暂存失败: %v", err)
	}
	return floors
}

// 4. GetResources 获取人员名册，来源是注入的只读名单
func (s *CacheService) GetResources() []models.Resource {
	if resources, ok := s.Staging.ReadResources(); ok {
		return resources
	}

	resources := make([]models.Resource, len(s.Roster))
	copy(resources, s.Roster)

	if err := s.Staging.WriteResources(resources); err != nil {
		config.Warning("回填人员名册暂存失败: %v", err)
	}
	return resources
}

// 5. Invalidate 使某个集合的暂存副本失效，
// 供直接写库的操作保持缓存一致
func (s *CacheService) Invalidate(key string) {
	s.Staging.Invalidate(key)
}
