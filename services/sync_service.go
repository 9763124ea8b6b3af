package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/omazm/asset-manager/config"
	"github.com/omazm/asset-manager/models"
)

// InterfaceSyncService 定义暂存区与数据库之间的同步接口
type InterfaceSyncService interface {
	CommitStagedFloors() (int, error)
	RefreshStagedData() error
}

// SyncService 负责把暂存的楼层/资产状态合并进数据库，
// 以及反向把数据库状态全量刷回暂存文件
type SyncService struct {
	DB      *gorm.DB
	Staging InterfaceStagingService
	Roster  []models.Resource
}

// NewSyncService 创建一个新的同步服务
func NewSyncService(db *gorm.DB, staging InterfaceStagingService, roster []models.Resource) InterfaceSyncService {
	return &SyncService{
		DB:      db,
		Staging: staging,
		Roster:  roster,
	}
}

// 1. CommitStagedFloors 把暂存的全部楼层和资产持久化到数据库。
//
// 楼层阶段在单个事务内完成：逐楼层按ID upsert（存在则更新
// 名称/宽高，不存在则以暂存ID为主键插入，绝不重新生成ID），
// 然后删除该楼层在库中的全部物品并整体插入暂存的物品列表，
// 使库中物品集合成为暂存集合的精确副本。事务中任何错误回滚
// 整个楼层阶段，库状态保持调用前原样。
//
// 资产阶段在楼层事务提交之后单独执行，逐资产按ID upsert；
// 此阶段失败不回滚已提交的楼层，返回已提交楼层数和
// ErrAssetSyncPartial，调用方据此区分部分成功与整体失败。
//
// 返回成功提交的楼层数
func (s *SyncService) CommitStagedFloors() (int, error) {
	floors, ok := s.Staging.ReadFloors()
	if !ok {
		return 0, ErrNothingToCommit
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range floors {
			if err := upsertFloor(tx, &floors[i]); err != nil {
				return err
			}

			// 物品集合整体替换：先删后插，暂存ID原样保留
			if err := tx.Where("floor_id = ?", floors[i].ID).Delete(&models.FloorItem{}).Error; err != nil {
				return err
			}

			items := make([]models.FloorItem, 0, len(floors[i].Items))
			for j := range floors[i].Items {
				items = append(items, floors[i].Items[j].ToFloorItem(floors[i].ID))
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		config.Error("提交暂存楼层失败: %v", err)
		return 0, err
	}

	config.Info("已提交 %d 个暂存楼层", len(floors))

	// 资产阶段：楼层事务之外逐个 upsert
	if assets, ok := s.Staging.ReadAssets(); ok {
		for i := range assets {
			if err := upsertAsset(s.DB, &assets[i]); err != nil {
				config.Error("同步资产 %s 失败: %v", assets[i].ID, err)
				return len(floors), ErrAssetSyncPartial
			}
		}
	}

	return len(floors), nil
}

// upsertFloor 按ID更新或插入楼层
func upsertFloor(tx *gorm.DB, plan *models.FloorPlan) error {
	var existing models.Floor
	err := tx.First(&existing, "id = ?", plan.ID).Error
	if err == nil {
		return tx.Model(&existing).Updates(map[string]interface{}{
			"name":   plan.Name,
			"width":  plan.Width,
			"height": plan.Height,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	floor := models.Floor{
		BaseModel: models.BaseModel{ID: plan.ID},
		Name:      plan.Name,
		Width:     plan.Width,
		Height:    plan.Height,
	}
	return tx.Create(&floor).Error
}

// upsertAsset 按ID更新或插入资产
func upsertAsset(db *gorm.DB, asset *models.Asset) error {
	var existing models.Asset
	err := db.First(&existing, "id = ?", asset.ID).Error
	if err == nil {
		return db.Model(&existing).Updates(map[string]interface{}{
			"label":         asset.Label,
			"assigned_to":   asset.AssignedTo,
			"asset_type_id": asset.AssetTypeID,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(asset).Error
}

// 2. RefreshStagedData 用数据库当前状态全量重建暂存文件，
// 覆盖四个集合键的暂存副本
func (s *SyncService) RefreshStagedData() error {
	var assetTypes []models.AssetType
	if err := s.DB.Order("created_at desc").Find(&assetTypes).Error; err != nil {
		return err
	}
	if err := s.Staging.WriteAssetTypes(assetTypes); err != nil {
		return err
	}

	var assets []models.Asset
	if err := s.DB.Order("created_at desc").Find(&assets).Error; err != nil {
		return err
	}
	if err := s.Staging.WriteAssets(assets); err != nil {
		return err
	}

	var rows []models.Floor
	if err := s.DB.Preload("Items").Order("created_at desc").Find(&rows).Error; err != nil {
		return err
	}
	floors := make([]models.FloorPlan, 0, len(rows))
	for i := range rows {
		floors = append(floors, rows[i].ToFloorPlan())
	}
	if err := s.Staging.WriteFloors(floors); err != nil {
		return err
	}

	if err := s.Staging.WriteResources(s.Roster); err != nil {
		return err
	}

	config.Info("暂存数据已从数据库刷新: %d 资产类型, %d 资产, %d 楼层", len(assetTypes), len(assets), len(floors))
	return nil
}
