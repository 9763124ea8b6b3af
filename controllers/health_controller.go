package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omazm/asset-manager/config"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(db *gorm.DB, cfg *config.Config) *HealthCheckController {
	return &HealthCheckController{DB: db, Cfg: cfg}
}

// Ping 健康检查端点
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// Health 检查数据库连通性和暂存目录可写性
func (h *HealthCheckController) Health(c *gin.Context) {
	status := "healthy"
	checks := gin.H{}

	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		status = "degraded"
		checks["database"] = "down: " + err.Error()
	} else {
		checks["database"] = "up"
	}

	if err := os.MkdirAll(h.Cfg.StagingDataDir, 0755); err != nil {
		status = "degraded"
		checks["staging"] = "unwritable: " + err.Error()
	} else {
		checks["staging"] = "writable"
	}

	httpStatus := http.StatusOK
	if status != "healthy" {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{
		"status": status,
		"checks": checks,
	})
}
