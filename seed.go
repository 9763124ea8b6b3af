package main

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/omazm/asset-manager/config"
	"github.com/omazm/asset-manager/models"
	"github.com/omazm/asset-manager/utils"
)

// defaultAssetTypes 默认资产类型及其矢量图标描述
var defaultAssetTypes = []models.AssetType{
	{
		Name:    "Chair",
		SvgData: `{"type":"chair","elements":[{"type":"rect","x":-15,"y":-15,"width":30,"height":30,"fill":"#8B4513","stroke":"#654321","strokeWidth":2,"rx":3},{"type":"rect","x":-15,"y":-20,"width":30,"height":5,"fill":"#8B4513","stroke":"#654321","strokeWidth":2}]}`,
	},
	{
		Name:    "Desk",
		SvgData: `{"type":"desk","elements":[{"type":"rect","x":-50,"y":-30,"width":100,"height":60,"fill":"#8B7355","stroke":"#654321","strokeWidth":2,"rx":4},{"type":"rect","x":-45,"y":-25,"width":35,"height":20,"fill":"#A0826D","stroke":"#654321","strokeWidth":1}]}`,
	},
	{
		Name:    "Table",
		SvgData: `{"type":"table","elements":[{"type":"rect","x":-60,"y":-40,"width":120,"height":80,"fill":"#D2691E","stroke":"#8B4513","strokeWidth":2,"rx":5},{"type":"circle","cx":-40,"cy":-20,"r":3,"fill":"#8B4513"},{"type":"circle","cx":40,"cy":-20,"r":3,"fill":"#8B4513"},{"type":"circle","cx":-40,"cy":20,"r":3,"fill":"#8B4513"},{"type":"circle","cx":40,"cy":20,"r":3,"fill":"#8B4513"}]}`,
	},
	{
		Name:    "Cabinet",
		SvgData: `{"type":"cabinet","elements":[{"type":"rect","x":-25,"y":-35,"width":50,"height":70,"fill":"#696969","stroke":"#404040","strokeWidth":2,"rx":3},{"type":"line","x1":-25,"y1":0,"x2":25,"y2":0,"stroke":"#404040","strokeWidth":2},{"type":"circle","cx":15,"cy":-17,"r":3,"fill":"#C0C0C0"},{"type":"circle","cx":15,"cy":17,"r":3,"fill":"#C0C0C0"}]}`,
	},
	{
		Name:    "Plant",
		SvgData: `{"type":"plant","elements":[{"type":"rect","x":-15,"y":10,"width":30,"height":20,"fill":"#8B4513","stroke":"#654321","strokeWidth":1},{"type":"circle","cx":0,"cy":0,"r":20,"fill":"#228B22","stroke":"#006400","strokeWidth":2},{"type":"circle","cx":-8,"cy":-5,"r":10,"fill":"#32CD32","opacity":0.7},{"type":"circle","cx":8,"cy":-5,"r":10,"fill":"#32CD32","opacity":0.7},{"type":"circle","cx":0,"cy":-12,"r":8,"fill":"#90EE90","opacity":0.6}]}`,
	},
	{
		Name:    "Door",
		SvgData: `{"type":"door","elements":[{"type":"rect","x":-5,"y":-40,"width":10,"height":80,"fill":"#8B4513","stroke":"#654321","strokeWidth":2},{"type":"circle","cx":8,"cy":0,"r":3,"fill":"#FFD700","stroke":"#DAA520","strokeWidth":1},{"type":"path","d":"M -5 -30 Q 30 -15 -5 0","fill":"none","stroke":"#654321","strokeWidth":1,"strokeDasharray":"3,3"}]}`,
	},
	{
		Name:    "Window",
		SvgData: `{"type":"window","elements":[{"type":"rect","x":-40,"y":-5,"width":80,"height":10,"fill":"#87CEEB","stroke":"#4682B4","strokeWidth":2,"opacity":0.6},{"type":"line","x1":-40,"y1":0,"x2":40,"y2":0,"stroke":"#4682B4","strokeWidth":2},{"type":"line","x1":0,"y1":-5,"x2":0,"y2":5,"stroke":"#4682B4","strokeWidth":2}]}`,
	},
}

// defaultFloors 演示楼层及其布局项
var defaultFloors = []models.Floor{
	{
		BaseModel: models.BaseModel{ID: "floor-1"},
		Name:      "First Floor - Main Office",
		Width:     1000,
		Height:    600,
		Items: []models.FloorItem{
			seedItem("desk-1", "Desk", 150, 150, 0, "Desk 1", "1"),
			seedItem("desk-2", "Desk", 350, 150, 0, "Desk 2", "2"),
			seedItem("desk-3", "Desk", 550, 150, 0, "Desk 3", "3"),
			seedItem("desk-4", "Desk", 750, 150, 0, "Desk 4", "4"),
			seedItem("chair-1", "Chair", 150, 250, 180, "C1", ""),
			seedItem("chair-2", "Chair", 350, 250, 180, "C2", ""),
			seedItem("chair-3", "Chair", 550, 250, 180, "C3", ""),
			seedItem("chair-4", "Chair", 750, 250, 180, "C4", ""),
			seedItem("table-1", "Table", 200, 450, 0, "Meeting Table", ""),
			seedItem("chair-5", "Chair", 140, 420, 90, "", ""),
			seedItem("chair-6", "Chair", 260, 420, 90, "", ""),
			seedItem("chair-7", "Chair", 140, 480, 270, "", ""),
			seedItem("chair-8", "Chair", 260, 480, 270, "", ""),
			seedItem("cabinet-1", "Cabinet", 900, 150, 0, "Storage", ""),
			seedItem("cabinet-2", "Cabinet", 900, 300, 0, "Files", ""),
			seedItem("plant-1", "Plant", 50, 50, 0, "", ""),
			seedItem("plant-2", "Plant", 950, 50, 0, "", ""),
			seedItem("plant-3", "Plant", 500, 550, 0, "", ""),
			seedItem("door-1", "Door", 50, 300, 0, "Main Entrance", ""),
			seedItem("door-2", "Door", 950, 500, 0, "Exit", ""),
			seedItem("window-1", "Window", 200, 30, 0, "", ""),
			seedItem("window-2", "Window", 500, 30, 0, "", ""),
			seedItem("window-3", "Window", 800, 30, 0, "", ""),
		},
	},
	{
		BaseModel: models.BaseModel{ID: "floor-2"},
		Name:      "Second Floor - Conference Area",
		Width:     1000,
		Height:    600,
		Items: []models.FloorItem{
			seedItem("table-2", "Table", 500, 300, 0, "Conference Table", ""),
			seedItem("chair-21", "Chair", 420, 240, 180, "", ""),
			seedItem("chair-22", "Chair", 500, 240, 180, "", ""),
			seedItem("chair-23", "Chair", 580, 240, 180, "", ""),
			seedItem("chair-24", "Chair", 420, 360, 0, "", ""),
			seedItem("chair-25", "Chair", 500, 360, 0, "", ""),
			seedItem("chair-26", "Chair", 580, 360, 0, "", ""),
			seedItem("table-3", "Table", 150, 150, 0, "Break Area", ""),
			seedItem("cabinet-21", "Cabinet", 850, 150, 0, "Supplies", ""),
			seedItem("cabinet-22", "Cabinet", 850, 300, 0, "AV Equipment", ""),
			seedItem("plant-21", "Plant", 100, 450, 0, "", ""),
			seedItem("plant-22", "Plant", 900, 450, 0, "", ""),
			seedItem("door-21", "Door", 50, 300, 0, "Entrance", ""),
			seedItem("window-21", "Window", 300, 30, 0, "", ""),
			seedItem("window-22", "Window", 700, 30, 0, "", ""),
		},
	},
	{
		BaseModel: models.BaseModel{ID: "floor-3"},
		Name:      "Third Floor - Open Workspace",
		Width:     1000,
		Height:    600,
		Items: []models.FloorItem{
			seedItem("desk-31", "Desk", 200, 150, 0, "Desk A1", "5"),
			seedItem("desk-32", "Desk", 400, 150, 0, "Desk A2", "6"),
			seedItem("desk-33", "Desk", 200, 300, 180, "Desk B1", "7"),
			seedItem("desk-34", "Desk", 400, 300, 180, "Desk B2", "8"),
			seedItem("desk-35", "Desk", 700, 200, 0, "Standing Desk 1", ""),
			seedItem("desk-36", "Desk", 700, 400, 0, "Standing Desk 2", ""),
			seedItem("table-31", "Table", 300, 500, 0, "Collab Space", ""),
			seedItem("cabinet-31", "Cabinet", 900, 100, 0, "Resources", ""),
			seedItem("plant-31", "Plant", 100, 100, 0, "", ""),
			seedItem("plant-32", "Plant", 600, 100, 0, "", ""),
			seedItem("plant-33", "Plant", 900, 500, 0, "", ""),
			seedItem("door-31", "Door", 500, 570, 90, "Main Entry", ""),
			seedItem("window-31", "Window", 200, 30, 0, "", ""),
			seedItem("window-32", "Window", 500, 30, 0, "", ""),
			seedItem("window-33", "Window", 800, 30, 0, "", ""),
		},
	},
}

// seedItem 构建演示布局项，空字符串表示未设置
func seedItem(id, itemType string, x, y, rotation float64, label, assignedTo string) models.FloorItem {
	item := models.FloorItem{
		BaseModel: models.BaseModel{ID: id},
		Type:      itemType,
		PosX:      x,
		PosY:      y,
		Rotation:  rotation,
	}
	if label != "" {
		item.Label = &label
	}
	if assignedTo != "" {
		item.AssignedTo = &assignedTo
	}
	return item
}

// seedIfEmpty 仅在资产类型表为空时写入演示数据
func seedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AssetType{}).Count(&count).Error; err != nil {
		return fmt.Errorf("统计资产类型失败: %w", err)
	}
	if count > 0 {
		return nil
	}
	return seedDefaultData(db)
}

// seedDefaultData 写入默认资产类型和演示楼层
func seedDefaultData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range defaultAssetTypes {
			assetType := defaultAssetTypes[i]
			assetType.ID = utils.GenerateID()
			if err := tx.Create(&assetType).Error; err != nil {
				return fmt.Errorf("创建资产类型 %s 失败: %w", assetType.Name, err)
			}
			config.Info("创建资产类型: %s", assetType.Name)
		}
		for i := range defaultFloors {
			floor := defaultFloors[i]
			if err := tx.Create(&floor).Error; err != nil {
				return fmt.Errorf("创建楼层 %s 失败: %w", floor.Name, err)
			}
			config.Info("创建楼层: %s (%d 个布局项)", floor.Name, len(floor.Items))
		}
		return nil
	})
}
