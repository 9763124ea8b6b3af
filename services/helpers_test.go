package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/omazm/asset-manager/config"
	"github.com/omazm/asset-manager/models"
)

// newTestDB 创建一次性 sqlite 数据库并迁移全部模型
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.AssetType{},
		&models.Asset{},
		&models.Floor{},
		&models.FloorItem{},
	)
	require.NoError(t, err)

	return db
}

// newTestStaging 创建指向临时目录的暂存服务
func newTestStaging(t *testing.T) InterfaceStagingService {
	t.Helper()
	return NewStagingService(&config.Config{StagingDataDir: t.TempDir()})
}

func strPtr(s string) *string { return &s }

// sampleFloorPlans 两个楼层的暂存样本，floor-b 带可选字段
func sampleFloorPlans() []models.FloorPlan {
	return []models.FloorPlan{
		{
			ID:     "floor-a",
			Name:   "Floor A",
			Width:  800,
			Height: 500,
			Items: []models.FloorPlanItem{
				{ID: "item-a1", Type: "Desk", Pos: models.Position{X: 100, Y: 120}, Rotation: 0},
				{ID: "item-a2", Type: "Chair", Pos: models.Position{X: 100, Y: 180}, Rotation: 180},
			},
		},
		{
			ID:     "floor-b",
			Name:   "Floor B",
			Width:  600,
			Height: 400,
			Items: []models.FloorPlanItem{
				{ID: "item-b1", Type: "Desk", Pos: models.Position{X: 50, Y: 60}, Rotation: 90, Label: "Desk B1", AssignedTo: "3"},
			},
		},
	}
}
