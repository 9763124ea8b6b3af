package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omazm/asset-manager/models"
)

func TestCacheAssetTypesReadThrough(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	cache := NewCacheService(db, staging, models.DefaultResources)

	require.NoError(t, db.Create(&models.AssetType{
		BaseModel: models.BaseModel{ID: "type-1"},
		Name:      "Desk",
		SvgData:   `{"type":"desk"}`,
	}).Error)

	// 首次读取穿透到数据库并回填暂存
	got := cache.GetAssetTypes()
	require.Len(t, got, 1)
	assert.Equal(t, "Desk", got[0].Name)

	staged, ok := staging.ReadAssetTypes()
	require.True(t, ok)
	assert.Len(t, staged, 1)

	// 暂存命中后不再访问数据库
	require.NoError(t, db.Create(&models.AssetType{
		BaseModel: models.BaseModel{ID: "type-2"},
		Name:      "Chair",
		SvgData:   `{"type":"chair"}`,
	}).Error)
	got = cache.GetAssetTypes()
	assert.Len(t, got, 1)

	// 失效后下一次读取重建暂存副本
	cache.Invalidate(models.StorageKeyAssetTypes)
	got = cache.GetAssetTypes()
	assert.Len(t, got, 2)
}

func TestCacheFloorsTransform(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	cache := NewCacheService(db, staging, models.DefaultResources)

	floor := models.Floor{
		BaseModel: models.BaseModel{ID: "floor-1"},
		Name:      "First Floor",
		Width:     1000,
		Height:    600,
		Items: []models.FloorItem{
			{
				BaseModel:  models.BaseModel{ID: "desk-1"},
				Type:       "Desk",
				PosX:       150,
				PosY:       150,
				Rotation:   0,
				Label:      strPtr("Desk 1"),
				AssignedTo: strPtr("1"),
			},
			{
				BaseModel: models.BaseModel{ID: "plant-1"},
				Type:      "Plant",
				PosX:      50,
				PosY:      50,
			},
		},
	}
	require.NoError(t, db.Create(&floor).Error)

	floors := cache.GetFloors()
	require.Len(t, floors, 1)
	require.Len(t, floors[0].Items, 2)

	// 行形态折叠为规范形态：pos 合并、空可选列变零值
	assert.Equal(t, models.Position{X: 150, Y: 150}, floors[0].Items[0].Pos)
	assert.Equal(t, "Desk 1", floors[0].Items[0].Label)
	assert.Equal(t, "1", floors[0].Items[0].AssignedTo)
	assert.Equal(t, "", floors[0].Items[1].Label)
	assert.Equal(t, "", floors[0].Items[1].AssignedTo)

	// 回填的暂存副本与返回值一致
	staged, ok := staging.ReadFloors()
	require.True(t, ok)
	assert.Equal(t, floors, staged)
}

func TestCacheFloorsStagedCopyWins(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	cache := NewCacheService(db, staging, models.DefaultResources)

	require.NoError(t, staging.WriteFloors(sampleFloorPlans()))

	// 暂存存在时数据库内容（空库）不参与
	floors := cache.GetFloors()
	require.Len(t, floors, 2)
	assert.Equal(t, "floor-a", floors[0].ID)
}

func TestCacheResources(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	cache := NewCacheService(db, staging, models.DefaultResources)

	resources := cache.GetResources()
	assert.Equal(t, models.DefaultResources, resources)

	staged, ok := staging.ReadResources()
	require.True(t, ok)
	assert.Equal(t, models.DefaultResources, staged)
}

func TestCacheEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	cache := NewCacheService(db, staging, models.DefaultResources)

	assert.Empty(t, cache.GetAssetTypes())
	assert.Empty(t, cache.GetAllAssets())
	assert.Empty(t, cache.GetFloors())
}
