package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/omazm/asset-manager/models"
)

// newFloorPlanFixture 组装楼层平面图服务及其依赖
func newFloorPlanFixture(t *testing.T) (*gorm.DB, InterfaceStagingService, InterfaceFloorPlanService) {
	t.Helper()

	db := newTestDB(t)
	staging := newTestStaging(t)
	cache := NewCacheService(db, staging, models.DefaultResources)
	return db, staging, NewFloorPlanService(staging, cache)
}

func TestUpdateItemPosition(t *testing.T) {
	_, staging, svc := newFloorPlanFixture(t)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))

	require.NoError(t, svc.UpdateItemPosition("item-b1", 250, 260))

	floors, _ := staging.ReadFloors()
	moved := floors[1].Items[0]
	assert.Equal(t, models.Position{X: 250, Y: 260}, moved.Pos)
	// 位置以外的字段保持不变
	assert.Equal(t, "Desk B1", moved.Label)
	assert.Equal(t, "3", moved.AssignedTo)
	assert.Equal(t, float64(90), moved.Rotation)
	// 其他楼层的物品不受影响
	assert.Equal(t, models.Position{X: 100, Y: 120}, floors[0].Items[0].Pos)
}

func TestUpdateItemPositionNotFound(t *testing.T) {
	_, staging, svc := newFloorPlanFixture(t)

	// 暂存和数据库均为空
	err := svc.UpdateItemPosition("item-a1", 10, 10)
	assert.ErrorIs(t, err, ErrFloorItemNotFound)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))
	err = svc.UpdateItemPosition("no-such-item", 10, 10)
	assert.ErrorIs(t, err, ErrFloorItemNotFound)
}

func TestUpdateItemPositionSanitizesCoords(t *testing.T) {
	_, staging, svc := newFloorPlanFixture(t)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))
	require.NoError(t, svc.UpdateItemPosition("item-a1", math.NaN(), math.Inf(1)))

	floors, _ := staging.ReadFloors()
	assert.Equal(t, models.Position{X: 0, Y: 0}, floors[0].Items[0].Pos)
}

func TestPlaceNewAssetOnFloor(t *testing.T) {
	_, staging, svc := newFloorPlanFixture(t)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))

	asset, item, err := svc.PlaceNewAssetOnFloor("floor-a", "type-1", "Desk", 400, 410)
	require.NoError(t, err)
	require.NotNil(t, asset)
	require.NotNil(t, item)

	assert.NotEmpty(t, asset.ID)
	assert.Equal(t, "type-1", asset.AssetTypeID)
	// 自动标签以类型名开头，暂不分配人员
	assert.Contains(t, asset.Label, "Desk-")
	assert.Empty(t, asset.AssignedTo)

	assert.NotEmpty(t, item.ID)
	assert.NotEqual(t, asset.ID, item.ID)
	assert.Equal(t, "Desk", item.Type)
	assert.Equal(t, models.Position{X: 400, Y: 410}, item.Pos)
	assert.Equal(t, float64(0), item.Rotation)
	assert.Equal(t, asset.Label, item.Label)

	// 物品追加到目标楼层末尾
	floors, _ := staging.ReadFloors()
	require.Len(t, floors[0].Items, 3)
	assert.Equal(t, item.ID, floors[0].Items[2].ID)

	// 资产集合就地初始化并前插
	assets, ok := staging.ReadAssets()
	require.True(t, ok)
	require.Len(t, assets, 1)
	assert.Equal(t, asset.ID, assets[0].ID)
}

func TestPlaceNewAssetWithEmptyStaging(t *testing.T) {
	db, staging, svc := newFloorPlanFixture(t)
	cache := NewCacheService(db, staging, models.DefaultResources)

	// 楼层只在数据库中，暂存目录为空
	require.NoError(t, db.Create(&models.Floor{
		BaseModel: models.BaseModel{ID: "floor-1"},
		Name:      "First Floor",
		Width:     1000,
		Height:    600,
		Items: []models.FloorItem{
			{BaseModel: models.BaseModel{ID: "desk-1"}, Type: "Desk", PosX: 150, PosY: 150},
		},
	}).Error)

	asset, item, err := svc.PlaceNewAssetOnFloor("floor-1", "type-99", "Desk", 120, 80)
	require.NoError(t, err)

	// 两个集合就地初始化：资产可见，物品挂到回填后的楼层上
	assets := cache.GetAllAssets()
	require.Len(t, assets, 1)
	assert.Equal(t, asset.ID, assets[0].ID)

	floors := cache.GetFloors()
	require.Len(t, floors, 1)
	require.Len(t, floors[0].Items, 2)
	assert.Equal(t, "desk-1", floors[0].Items[0].ID)
	assert.Equal(t, item.ID, floors[0].Items[1].ID)
	assert.Equal(t, models.Position{X: 120, Y: 80}, floors[0].Items[1].Pos)
}

func TestPlaceNewAssetOnMissingFloor(t *testing.T) {
	_, staging, svc := newFloorPlanFixture(t)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))

	_, _, err := svc.PlaceNewAssetOnFloor("no-such-floor", "type-1", "Desk", 10, 10)
	assert.ErrorIs(t, err, ErrFloorNotFound)

	// 失败时不留下孤儿资产
	_, ok := staging.ReadAssets()
	assert.False(t, ok)
}

func TestPlaceExistingAssetOnFloor(t *testing.T) {
	_, staging, svc := newFloorPlanFixture(t)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))
	require.NoError(t, staging.WriteAssetTypes([]models.AssetType{
		{BaseModel: models.BaseModel{ID: "type-1"}, Name: "Desk", SvgData: `{"type":"desk"}`},
	}))
	require.NoError(t, staging.WriteAssets([]models.Asset{
		{BaseModel: models.BaseModel{ID: "asset-1"}, Label: "Standing Desk", AssignedTo: "7", AssetTypeID: "type-1"},
	}))

	item, err := svc.PlaceExistingAssetOnFloor("floor-b", "asset-1", 30, 40)
	require.NoError(t, err)

	// 类型ID解析为类型名，标签和分配人取快照
	assert.Equal(t, "Desk", item.Type)
	assert.Equal(t, "Standing Desk", item.Label)
	assert.Equal(t, "7", item.AssignedTo)
	assert.Equal(t, models.Position{X: 30, Y: 40}, item.Pos)

	floors, _ := staging.ReadFloors()
	require.Len(t, floors[1].Items, 2)
	assert.Equal(t, item.ID, floors[1].Items[1].ID)
}

func TestPlaceExistingAssetWithEmptyStaging(t *testing.T) {
	db, staging, svc := newFloorPlanFixture(t)

	// 楼层、资产、类型都只在数据库中
	require.NoError(t, db.Create(&models.Floor{
		BaseModel: models.BaseModel{ID: "floor-1"},
		Name:      "First Floor",
		Width:     1000,
		Height:    600,
	}).Error)
	require.NoError(t, db.Create(&models.AssetType{
		BaseModel: models.BaseModel{ID: "type-1"},
		Name:      "Desk",
		SvgData:   `{"type":"desk"}`,
	}).Error)
	require.NoError(t, db.Create(&models.Asset{
		BaseModel:   models.BaseModel{ID: "asset-1"},
		Label:       "Standing Desk",
		AssetTypeID: "type-1",
	}).Error)

	item, err := svc.PlaceExistingAssetOnFloor("floor-1", "asset-1", 30, 40)
	require.NoError(t, err)
	assert.Equal(t, "Desk", item.Type)
	assert.Equal(t, "Standing Desk", item.Label)

	floors, ok := staging.ReadFloors()
	require.True(t, ok)
	require.Len(t, floors, 1)
	require.Len(t, floors[0].Items, 1)
	assert.Equal(t, item.ID, floors[0].Items[0].ID)
}

func TestPlaceExistingAssetTypeIDCompare(t *testing.T) {
	_, staging, svc := newFloorPlanFixture(t)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))
	require.NoError(t, staging.WriteAssetTypes([]models.AssetType{
		{BaseModel: models.BaseModel{ID: "TYPE-1"}, Name: "Desk", SvgData: `{"type":"desk"}`},
	}))
	require.NoError(t, staging.WriteAssets([]models.Asset{
		{BaseModel: models.BaseModel{ID: "asset-1"}, Label: "Thing", AssetTypeID: "type-1"},
	}))

	// 类型ID精确比较，大小写不同的ID不算命中，退化为直接使用ID
	item, err := svc.PlaceExistingAssetOnFloor("floor-a", "asset-1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "type-1", item.Type)
}

func TestPlaceExistingAssetTypeNameFallback(t *testing.T) {
	_, staging, svc := newFloorPlanFixture(t)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))
	require.NoError(t, staging.WriteAssets([]models.Asset{
		{BaseModel: models.BaseModel{ID: "asset-1"}, Label: "Thing", AssetTypeID: "type-x"},
	}))

	// 类型集合解析不到时退化为直接使用ID
	item, err := svc.PlaceExistingAssetOnFloor("floor-a", "asset-1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "type-x", item.Type)
}

func TestPlaceExistingAssetNotFound(t *testing.T) {
	_, staging, svc := newFloorPlanFixture(t)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))

	// 暂存和数据库中均无此资产
	_, err := svc.PlaceExistingAssetOnFloor("floor-a", "asset-1", 1, 2)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	require.NoError(t, staging.WriteAssets([]models.Asset{}))
	_, err = svc.PlaceExistingAssetOnFloor("floor-a", "asset-1", 1, 2)
	assert.ErrorIs(t, err, ErrAssetNotFound)
}
