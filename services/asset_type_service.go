package services

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/omazm/asset-manager/models"
	"github.com/omazm/asset-manager/utils"
)

// InterfaceAssetTypeService 定义资产类型服务接口
type InterfaceAssetTypeService interface {
	GetAllAssetTypes() ([]models.AssetType, error)
	GetAssetTypeByID(id string) (*models.AssetType, error)
	CreateAssetType(name, svgData string) (*models.AssetType, error)
}

// AssetTypeService 提供资产类型相关的服务
type AssetTypeService struct {
	DB      *gorm.DB
	Staging InterfaceStagingService
}

// NewAssetTypeService 创建一个新的资产类型服务
func NewAssetTypeService(db *gorm.DB, staging InterfaceStagingService) InterfaceAssetTypeService {
	return &AssetTypeService{
		DB:      db,
		Staging: staging,
	}
}

// 1. GetAllAssetTypes 获取所有资产类型，按创建时间倒序
func (s *AssetTypeService) GetAllAssetTypes() ([]models.AssetType, error) {
	var assetTypes []models.AssetType
	if err := s.DB.Order("created_at desc").Find(&assetTypes).Error; err != nil {
		return nil, err
	}
	return assetTypes, nil
}

// 2. GetAssetTypeByID 根据ID获取资产类型
func (s *AssetTypeService) GetAssetTypeByID(id string) (*models.AssetType, error) {
	var assetType models.AssetType
	if err := s.DB.First(&assetType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetTypeNotFound
		}
		return nil, err
	}
	return &assetType, nil
}

// 3. CreateAssetType 创建新资产类型。
// 名称全局唯一，重名时直接失败不写库；图标描述必须是合法JSON
func (s *AssetTypeService) CreateAssetType(name, svgData string) (*models.AssetType, error) {
	name = strings.TrimSpace(name)
	svgData = strings.TrimSpace(svgData)

	if name == "" {
		return nil, errors.New("资产类型名称不能为空")
	}
	if svgData == "" {
		return nil, ErrInvalidIconData
	}
	if !json.Valid([]byte(svgData)) {
		return nil, ErrInvalidIconData
	}

	// 验证名称唯一性
	var count int64
	if err := s.DB.Model(&models.AssetType{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAssetTypeExists
	}

	assetType := models.AssetType{
		BaseModel: models.BaseModel{ID: utils.GenerateID()},
		Name:      name,
		SvgData:   svgData,
	}
	if err := s.DB.Create(&assetType).Error; err != nil {
		return nil, err
	}

	// 直接写库成功后使暂存副本失效，下次读穿时重建
	s.Staging.Invalidate(models.StorageKeyAssetTypes)

	return &assetType, nil
}
