package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omazm/asset-manager/models"
)

func TestCreateFloorValidation(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewFloorService(db, staging)

	_, err := svc.CreateFloor("", 100, 100)
	assert.Error(t, err)

	_, err = svc.CreateFloor("Floor", 0, 100)
	assert.Error(t, err)

	floor, err := svc.CreateFloor("Floor", 800, 500)
	require.NoError(t, err)
	assert.NotEmpty(t, floor.ID)
}

func TestDeleteFloorItemInvalidatesStagedFloors(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewFloorService(db, staging)

	floor := models.Floor{
		BaseModel: models.BaseModel{ID: "floor-1"},
		Name:      "First Floor",
		Width:     1000,
		Height:    600,
		Items: []models.FloorItem{
			{BaseModel: models.BaseModel{ID: "desk-1"}, Type: "Desk", PosX: 150, PosY: 150},
		},
	}
	require.NoError(t, db.Create(&floor).Error)

	// 暂存副本里还留着要删的物品
	require.NoError(t, staging.WriteFloors([]models.FloorPlan{floor.ToFloorPlan()}))

	require.NoError(t, svc.DeleteFloorItem("floor-1", "desk-1"))

	// 删除后暂存失效，被删物品不会从陈旧副本中复活
	_, ok := staging.ReadFloors()
	assert.False(t, ok)

	var count int64
	require.NoError(t, db.Model(&models.FloorItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteFloorItemNotFound(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewFloorService(db, staging)

	err := svc.DeleteFloorItem("floor-1", "no-such-item")
	assert.ErrorIs(t, err, ErrFloorItemNotFound)
}

func TestUpdateFloorItemFieldFilter(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewFloorService(db, staging)

	floor := models.Floor{
		BaseModel: models.BaseModel{ID: "floor-1"},
		Name:      "First Floor",
		Width:     1000,
		Height:    600,
		Items: []models.FloorItem{
			{BaseModel: models.BaseModel{ID: "desk-1"}, Type: "Desk", PosX: 150, PosY: 150},
		},
	}
	require.NoError(t, db.Create(&floor).Error)

	_, err := svc.UpdateFloorItem("floor-1", "desk-1", map[string]interface{}{
		"pos_x":    300.0,
		"pos_y":    310.0,
		"floor_id": "floor-2", // 非白名单字段被忽略
	})
	require.NoError(t, err)

	var item models.FloorItem
	require.NoError(t, db.First(&item, "id = ?", "desk-1").Error)
	assert.Equal(t, float64(300), item.PosX)
	assert.Equal(t, float64(310), item.PosY)
	assert.Equal(t, "floor-1", item.FloorID)
}
