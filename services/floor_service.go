package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/omazm/asset-manager/models"
	"github.com/omazm/asset-manager/utils"
)

// InterfaceFloorService 定义楼层服务接口。
// 这些是直接写库的管理操作；拖拽编辑期间的位置变更
// 走 FloorPlanService 的暂存路径
type InterfaceFloorService interface {
	GetAllFloors() ([]models.Floor, error)
	GetFloorByID(id string) (*models.Floor, error)
	CreateFloor(name string, width, height int) (*models.Floor, error)
	UpdateFloor(id string, updates map[string]interface{}) (*models.Floor, error)
	CreateFloorItem(floorID string, item *models.FloorItem) error
	UpdateFloorItem(floorID, itemID string, updates map[string]interface{}) (*models.FloorItem, error)
	DeleteFloorItem(floorID, itemID string) error
}

// FloorService 提供楼层相关的服务
type FloorService struct {
	DB      *gorm.DB
	Staging InterfaceStagingService
}

// NewFloorService 创建一个新的楼层服务
func NewFloorService(db *gorm.DB, staging InterfaceStagingService) InterfaceFloorService {
	return &FloorService{
		DB:      db,
		Staging: staging,
	}
}

// 1. GetAllFloors 获取所有楼层（含内嵌物品），按创建时间倒序
func (s *FloorService) GetAllFloors() ([]models.Floor, error) {
	var floors []models.Floor
	if err := s.DB.Preload("Items").Order("created_at desc").Find(&floors).Error; err != nil {
		return nil, err
	}
	return floors, nil
}

// 2. GetFloorByID 根据ID获取楼层
func (s *FloorService) GetFloorByID(id string) (*models.Floor, error) {
	var floor models.Floor
	if err := s.DB.Preload("Items").First(&floor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, err
	}
	return &floor, nil
}

// 3. CreateFloor 创建新楼层，宽高必须为正
func (s *FloorService) CreateFloor(name string, width, height int) (*models.Floor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("楼层名称不能为空")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("楼层尺寸必须为正数")
	}

	floor := models.Floor{
		BaseModel: models.BaseModel{ID: utils.GenerateID()},
		Name:      name,
		Width:     width,
		Height:    height,
	}
	if err := s.DB.Create(&floor).Error; err != nil {
		return nil, err
	}

	s.Staging.Invalidate(models.StorageKeyFloors)

	return &floor, nil
}

// 4. UpdateFloor 更新楼层信息
func (s *FloorService) UpdateFloor(id string, updates map[string]interface{}) (*models.Floor, error) {
	floor, err := s.GetFloorByID(id)
	if err != nil {
		return nil, err
	}

	allowed := map[string]interface{}{}
	for _, field := range []string{"name", "width", "height"} {
		if v, ok := updates[field]; ok {
			allowed[field] = v
		}
	}
	if len(allowed) > 0 {
		if err := s.DB.Model(floor).Updates(allowed).Error; err != nil {
			return nil, err
		}
		s.Staging.Invalidate(models.StorageKeyFloors)
	}
	return floor, nil
}

// 5. CreateFloorItem 在楼层上直接创建物品（不经过暂存）
func (s *FloorService) CreateFloorItem(floorID string, item *models.FloorItem) error {
	if _, err := s.GetFloorByID(floorID); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = utils.GenerateID()
	}
	item.FloorID = floorID
	pos := models.NewPosition(item.PosX, item.PosY)
	item.PosX = pos.X
	item.PosY = pos.Y

	if err := s.DB.Create(item).Error; err != nil {
		return err
	}

	s.Staging.Invalidate(models.StorageKeyFloors)
	return nil
}

// 6. UpdateFloorItem 更新楼层物品（不经过暂存）
func (s *FloorService) UpdateFloorItem(floorID, itemID string, updates map[string]interface{}) (*models.FloorItem, error) {
	var item models.FloorItem
	if err := s.DB.First(&item, "id = ? AND floor_id = ?", itemID, floorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorItemNotFound
		}
		return nil, err
	}

	allowed := map[string]interface{}{}
	for _, field := range []string{"type", "pos_x", "pos_y", "rotation", "label", "assigned_to"} {
		if v, ok := updates[field]; ok {
			allowed[field] = v
		}
	}
	if len(allowed) > 0 {
		if err := s.DB.Model(&item).Updates(allowed).Error; err != nil {
			return nil, err
		}
		s.Staging.Invalidate(models.StorageKeyFloors)
	}
	return &item, nil
}

// 7. DeleteFloorItem 删除楼层物品。删除直接写库，
// 同时使楼层暂存失效，避免被删物品从陈旧的暂存副本中复活
func (s *FloorService) DeleteFloorItem(floorID, itemID string) error {
	result := s.DB.Where("id = ? AND floor_id = ?", itemID, floorID).Delete(&models.FloorItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFloorItemNotFound
	}

	s.Staging.Invalidate(models.StorageKeyFloors)
	return nil
}
