package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omazm/asset-manager/models"
)

func TestCommitNothingStaged(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewSyncService(db, staging, models.DefaultResources)

	count, err := svc.CommitStagedFloors()
	assert.ErrorIs(t, err, ErrNothingToCommit)
	assert.Equal(t, 0, count)
}

func TestCommitInsertsStagedFloors(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewSyncService(db, staging, models.DefaultResources)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))

	count, err := svc.CommitStagedFloors()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// 暂存的楼层ID和物品ID原样落库，绝不重新生成
	var floor models.Floor
	require.NoError(t, db.Preload("Items").First(&floor, "id = ?", "floor-a").Error)
	assert.Equal(t, "Floor A", floor.Name)
	assert.Equal(t, 800, floor.Width)
	require.Len(t, floor.Items, 2)

	var item models.FloorItem
	require.NoError(t, db.First(&item, "id = ?", "item-b1").Error)
	assert.Equal(t, "floor-b", item.FloorID)
	assert.Equal(t, float64(50), item.PosX)
	require.NotNil(t, item.Label)
	assert.Equal(t, "Desk B1", *item.Label)
	require.NotNil(t, item.AssignedTo)
	assert.Equal(t, "3", *item.AssignedTo)

	// 重复提交幂等：行数不变
	count, err = svc.CommitStagedFloors()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var itemCount int64
	require.NoError(t, db.Model(&models.FloorItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(3), itemCount)
}

func TestCommitReplacesFloorItems(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewSyncService(db, staging, models.DefaultResources)

	// 库中已有同ID楼层及旧物品
	existing := models.Floor{
		BaseModel: models.BaseModel{ID: "floor-a"},
		Name:      "Old Name",
		Width:     100,
		Height:    100,
		Items: []models.FloorItem{
			{BaseModel: models.BaseModel{ID: "stale-1"}, Type: "Chair", PosX: 1, PosY: 2},
			{BaseModel: models.BaseModel{ID: "stale-2"}, Type: "Plant", PosX: 3, PosY: 4},
		},
	}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))

	count, err := svc.CommitStagedFloors()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// 楼层按ID更新，物品集合成为暂存集合的精确副本
	var floor models.Floor
	require.NoError(t, db.Preload("Items").First(&floor, "id = ?", "floor-a").Error)
	assert.Equal(t, "Floor A", floor.Name)
	assert.Equal(t, 800, floor.Width)
	assert.Equal(t, 500, floor.Height)
	require.Len(t, floor.Items, 2)

	ids := []string{floor.Items[0].ID, floor.Items[1].ID}
	assert.ElementsMatch(t, []string{"item-a1", "item-a2"}, ids)

	var staleCount int64
	require.NoError(t, db.Model(&models.FloorItem{}).Where("id LIKE ?", "stale-%").Count(&staleCount).Error)
	assert.Equal(t, int64(0), staleCount)
}

func TestCommitRollsBackOnItemConflict(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewSyncService(db, staging, models.DefaultResources)

	// floor-b 的物品与 floor-a 的物品共享主键，事务内插入必然冲突
	floors := sampleFloorPlans()
	floors[1].Items = append(floors[1].Items, models.FloorPlanItem{
		ID:   "item-a1",
		Type: "Desk",
		Pos:  models.Position{X: 1, Y: 1},
	})
	require.NoError(t, staging.WriteFloors(floors))

	count, err := svc.CommitStagedFloors()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAssetSyncPartial)
	assert.Equal(t, 0, count)

	// 整个楼层阶段回滚，库保持调用前原样
	var floorCount, itemCount int64
	require.NoError(t, db.Model(&models.Floor{}).Count(&floorCount).Error)
	require.NoError(t, db.Model(&models.FloorItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(0), floorCount)
	assert.Equal(t, int64(0), itemCount)
}

func TestCommitUpsertsStagedAssets(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewSyncService(db, staging, models.DefaultResources)

	require.NoError(t, db.Create(&models.Asset{
		BaseModel:   models.BaseModel{ID: "asset-1"},
		Label:       "Old Label",
		AssetTypeID: "type-1",
	}).Error)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))
	require.NoError(t, staging.WriteAssets([]models.Asset{
		{BaseModel: models.BaseModel{ID: "asset-1"}, Label: "New Label", AssignedTo: "2", AssetTypeID: "type-1"},
		{BaseModel: models.BaseModel{ID: "asset-2"}, Label: "Fresh", AssetTypeID: "type-1"},
	}))

	count, err := svc.CommitStagedFloors()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var updated models.Asset
	require.NoError(t, db.First(&updated, "id = ?", "asset-1").Error)
	assert.Equal(t, "New Label", updated.Label)
	assert.Equal(t, "2", updated.AssignedTo)

	var created models.Asset
	require.NoError(t, db.First(&created, "id = ?", "asset-2").Error)
	assert.Equal(t, "Fresh", created.Label)
}

func TestCommitPartialAssetFailure(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewSyncService(db, staging, models.DefaultResources)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))
	require.NoError(t, staging.WriteAssets([]models.Asset{
		{BaseModel: models.BaseModel{ID: "asset-1"}, Label: "Desk-1", AssetTypeID: "type-1"},
	}))

	// 资产表不可用时楼层阶段照常提交
	require.NoError(t, db.Migrator().DropTable(&models.Asset{}))

	count, err := svc.CommitStagedFloors()
	assert.ErrorIs(t, err, ErrAssetSyncPartial)
	assert.Equal(t, 2, count)

	var floorCount int64
	require.NoError(t, db.Model(&models.Floor{}).Count(&floorCount).Error)
	assert.Equal(t, int64(2), floorCount)
}

func TestRefreshStagedData(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewSyncService(db, staging, models.DefaultResources)

	require.NoError(t, db.Create(&models.AssetType{
		BaseModel: models.BaseModel{ID: "type-1"},
		Name:      "Desk",
		SvgData:   `{"type":"desk"}`,
	}).Error)
	require.NoError(t, db.Create(&models.Floor{
		BaseModel: models.BaseModel{ID: "floor-1"},
		Name:      "First Floor",
		Width:     1000,
		Height:    600,
		Items: []models.FloorItem{
			{BaseModel: models.BaseModel{ID: "desk-1"}, Type: "Desk", PosX: 150, PosY: 150},
		},
	}).Error)

	// 暂存中的陈旧内容被数据库状态整体覆盖
	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))

	require.NoError(t, svc.RefreshStagedData())

	assetTypes, ok := staging.ReadAssetTypes()
	require.True(t, ok)
	assert.Len(t, assetTypes, 1)

	floors, ok := staging.ReadFloors()
	require.True(t, ok)
	require.Len(t, floors, 1)
	assert.Equal(t, "floor-1", floors[0].ID)
	require.Len(t, floors[0].Items, 1)
	assert.Equal(t, models.Position{X: 150, Y: 150}, floors[0].Items[0].Pos)

	resources, ok := staging.ReadResources()
	require.True(t, ok)
	assert.Equal(t, models.DefaultResources, resources)
}
