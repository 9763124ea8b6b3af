// @title           Asset Manager API
// @version         1.0
// @description     Office floor-planning service with offline staging and commit-to-store synchronization

// @host      localhost:8080
// @BasePath  /api
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/omazm/asset-manager/config"
	"github.com/omazm/asset-manager/internal/infrastructure/database"
	"github.com/omazm/asset-manager/models"
	"github.com/omazm/asset-manager/routes"
)

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 创建优化的数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法创建数据库连接池: %v", err)
	}
	db := pool.GetDB()

	// 根据配置执行不同的数据库操作
	if cfg.DBMigrationMode == "drop" {
		// 删除并重建表
		log.Println("警告: 在drop模式下运行，将删除并重建所有表")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("删除并重建表失败: %v", err)
		}
		if err := seedDefaultData(db); err != nil {
			log.Fatalf("写入演示数据失败: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("自动迁移失败: %v", err)
		}
		// 数据库为空时按需写入演示数据
		if cfg.SeedOnEmpty {
			if err := seedIfEmpty(db); err != nil {
				log.Fatalf("写入演示数据失败: %v", err)
			}
		}
	}

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 启动服务器
	config.Info("服务器启动在: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.AssetType{},
		&models.Asset{},
		&models.Floor{},
		&models.FloorItem{},
	)
	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables 删除并重建所有表
func dropAndRecreateTables(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&models.FloorItem{},
		&models.Floor{},
		&models.Asset{},
		&models.AssetType{},
	)
	if err != nil {
		return err
	}
	return autoMigrate(db)
}
