package services

import (
	"github.com/omazm/asset-manager/models"
	"github.com/omazm/asset-manager/utils"
)

// InterfaceFloorPlanService 定义楼层平面图的暂存写路径接口。
// 三个操作只改动本地暂存，不碰数据库；改动由之后的
// 同步提交（SyncService）落库
type InterfaceFloorPlanService interface {
	UpdateItemPosition(itemID string, x, y float64) error
	PlaceNewAssetOnFloor(floorID, assetTypeID, assetTypeName string, x, y float64) (*models.Asset, *models.FloorPlanItem, error)
	PlaceExistingAssetOnFloor(floorID, assetID string, x, y float64) (*models.FloorPlanItem, error)
}

// FloorPlanService 提供拖拽编辑期间的暂存变更操作。
// 读取经由缓存网关，集合未暂存时先读穿回填再改动，
// 不因暂存目录为空而拒绝操作
type FloorPlanService struct {
	Staging InterfaceStagingService
	Cache   InterfaceCacheService
}

// NewFloorPlanService 创建一个新的楼层平面图服务
func NewFloorPlanService(staging InterfaceStagingService, cache InterfaceCacheService) InterfaceFloorPlanService {
	return &FloorPlanService{
		Staging: staging,
		Cache:   cache,
	}
}

// ensureFloorsStaged 楼层集合未暂存时先经缓存网关回填
func (s *FloorPlanService) ensureFloorsStaged() {
	if _, ok := s.Staging.ReadFloors(); !ok {
		s.Cache.GetFloors()
	}
}

// 1. UpdateItemPosition 更新某个楼层物品的位置。
// 在所有暂存楼层中查找物品，命中的第一个物品的坐标被替换，
// 其余字段保持不变；找不到物品时返回不存在错误
func (s *FloorPlanService) UpdateItemPosition(itemID string, x, y float64) error {
	pos := models.NewPosition(x, y)

	s.ensureFloorsStaged()

	return s.Staging.MutateFloors(func(floors []models.FloorPlan, ok bool) ([]models.FloorPlan, error) {
		if !ok {
			return nil, ErrFloorItemNotFound
		}
		for i := range floors {
			for j := range floors[i].Items {
				if floors[i].Items[j].ID == itemID {
					floors[i].Items[j].Pos = pos
					return floors, nil
				}
			}
		}
		return nil, ErrFloorItemNotFound
	})
}

// 2. PlaceNewAssetOnFloor 拖放时在楼层上创建新资产。
// 合成一条新的资产记录（生成的ID、按类型名加时间戳的自动标签、
// 暂不分配人员）并前插到暂存资产集合；同时合成对应的楼层物品
// 追加到目标楼层的物品列表。两个集合不存在时均就地初始化：
// 资产集合从空集合起步，楼层集合先从数据库读穿回填
func (s *FloorPlanService) PlaceNewAssetOnFloor(floorID, assetTypeID, assetTypeName string, x, y float64) (*models.Asset, *models.FloorPlanItem, error) {
	asset := models.Asset{
		BaseModel:   models.BaseModel{ID: utils.GenerateID()},
		Label:       utils.GenerateAssetLabel(assetTypeName),
		AssetTypeID: assetTypeID,
	}

	item := models.FloorPlanItem{
		ID:       utils.GenerateID(),
		Type:     assetTypeName,
		Pos:      models.NewPosition(x, y),
		Rotation: 0,
		Label:    asset.Label,
	}

	// 先确认目标楼层存在并追加物品
	if err := s.appendItemToFloor(floorID, item); err != nil {
		return nil, nil, err
	}

	if err := s.Staging.AppendAsset(asset); err != nil {
		return nil, nil, err
	}

	return &asset, &item, nil
}

// 3. PlaceExistingAssetOnFloor 把已有资产摆放到楼层上。
// 按ID在资产集合中查找（集合未暂存时经缓存网关回填，
// 资产不存在时报错），以资产当前的类型名/标签/分配人快照
// 生成楼层物品
func (s *FloorPlanService) PlaceExistingAssetOnFloor(floorID, assetID string, x, y float64) (*models.FloorPlanItem, error) {
	assets, ok := s.Staging.ReadAssets()
	if !ok {
		assets = s.Cache.GetAllAssets()
	}

	var asset *models.Asset
	for i := range assets {
		if assets[i].ID == assetID {
			asset = &assets[i]
			break
		}
	}
	if asset == nil {
		return nil, ErrAssetNotFound
	}

	item := models.FloorPlanItem{
		ID:         utils.GenerateID(),
		Type:       s.resolveTypeName(asset.AssetTypeID),
		Pos:        models.NewPosition(x, y),
		Rotation:   0,
		Label:      asset.Label,
		AssignedTo: asset.AssignedTo,
	}

	if err := s.appendItemToFloor(floorID, item); err != nil {
		return nil, err
	}

	return &item, nil
}

// appendItemToFloor 把物品追加到暂存楼层的物品列表末尾，
// 楼层集合缺失时先回填，目标楼层仍不存在时报错
func (s *FloorPlanService) appendItemToFloor(floorID string, item models.FloorPlanItem) error {
	s.ensureFloorsStaged()

	return s.Staging.MutateFloors(func(floors []models.FloorPlan, ok bool) ([]models.FloorPlan, error) {
		if !ok {
			return nil, ErrFloorNotFound
		}
		for i := range floors {
			if floors[i].ID == floorID {
				floors[i].Items = append(floors[i].Items, item)
				return floors, nil
			}
		}
		return nil, ErrFloorNotFound
	})
}

// resolveTypeName 把资产类型ID解析为类型名称。
// 楼层物品的 type 字段存的是名称，渲染端按名称忽略大小写匹配，
// ID本身精确比较；解析不到时退化为直接使用ID
func (s *FloorPlanService) resolveTypeName(assetTypeID string) string {
	assetTypes, ok := s.Staging.ReadAssetTypes()
	if !ok {
		assetTypes = s.Cache.GetAssetTypes()
	}
	for i := range assetTypes {
		if assetTypes[i].ID == assetTypeID {
			return assetTypes[i].Name
		}
	}
	return assetTypeID
}
