package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/omazm/asset-manager/models"
	"github.com/omazm/asset-manager/utils"
)

// InterfaceAssetService 定义资产服务接口
type InterfaceAssetService interface {
	GetAllAssets() ([]models.Asset, error)
	GetAssetByID(id string) (*models.Asset, error)
	GetAssetsByType(assetTypeID string) ([]models.Asset, error)
	CreateAsset(label, assignedTo, assetTypeID string) (*models.Asset, error)
	UpdateAsset(id string, updates map[string]interface{}) (*models.Asset, error)
}

// AssetService 提供资产相关的服务
type AssetService struct {
	DB      *gorm.DB
	Staging InterfaceStagingService
}

// NewAssetService 创建一个新的资产服务
func NewAssetService(db *gorm.DB, staging InterfaceStagingService) InterfaceAssetService {
	return &AssetService{
		DB:      db,
		Staging: staging,
	}
}

// 1. GetAllAssets 获取所有资产，按创建时间倒序
func (s *AssetService) GetAllAssets() ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.DB.Order("created_at desc").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// 2. GetAssetByID 根据ID获取资产
func (s *AssetService) GetAssetByID(id string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.DB.First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// 3. GetAssetsByType 获取某个资产类型下的所有资产
func (s *AssetService) GetAssetsByType(assetTypeID string) ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.DB.Where("asset_type_id = ?", assetTypeID).Order("created_at desc").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// 4. CreateAsset 创建新资产，表单创建时分配人必填
func (s *AssetService) CreateAsset(label, assignedTo, assetTypeID string) (*models.Asset, error) {
	label = strings.TrimSpace(label)
	assignedTo = strings.TrimSpace(assignedTo)

	if label == "" {
		return nil, errors.New("资产标签不能为空")
	}
	if assignedTo == "" {
		return nil, errors.New("分配人不能为空")
	}
	if assetTypeID == "" {
		return nil, errors.New("资产类型不能为空")
	}

	// 资产类型必须存在
	var count int64
	if err := s.DB.Model(&models.AssetType{}).Where("id = ?", assetTypeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrAssetTypeNotFound
	}

	asset := models.Asset{
		BaseModel:   models.BaseModel{ID: utils.GenerateID()},
		Label:       label,
		AssignedTo:  assignedTo,
		AssetTypeID: assetTypeID,
	}
	if err := s.DB.Create(&asset).Error; err != nil {
		return nil, err
	}

	s.Staging.Invalidate(models.StorageKeyAssets)

	return &asset, nil
}

// 5. UpdateAsset 更新资产信息
func (s *AssetService) UpdateAsset(id string, updates map[string]interface{}) (*models.Asset, error) {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return nil, err
	}

	// 只允许更新展示属性
	allowed := map[string]interface{}{}
	for _, field := range []string{"label", "assigned_to", "asset_type_id"} {
		if v, ok := updates[field]; ok {
			allowed[field] = v
		}
	}
	if len(allowed) == 0 {
		return asset, nil
	}

	if err := s.DB.Model(asset).Updates(allowed).Error; err != nil {
		return nil, err
	}

	s.Staging.Invalidate(models.StorageKeyAssets)

	return asset, nil
}
