package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/omazm/asset-manager/internal/error/code"
	"github.com/omazm/asset-manager/internal/error/response"
	"github.com/omazm/asset-manager/services"
	"github.com/omazm/asset-manager/services/container"
)

// ResourceController 处理人员名册相关的请求
type ResourceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResourceController 创建一个新的人员名册控制器
func NewResourceController(ctx *gin.Context, container *container.ServiceContainer) *ResourceController {
	return &ResourceController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleResourceFunc 返回一个处理人员名册请求的Gin处理函数
func HandleResourceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResourceController(ctx, container)

		switch method {
		case "getResources":
			controller.GetResources()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetResources 获取人员名册
// @Summary 获取人员名册
// @Description 获取可分配的人员列表，名册由宿主应用注入，只读
// @Tags Resource
// @Accept json
// @Produce json
// @Success 200 {array} models.Resource
// @Router /resources [get]
func (c *ResourceController) GetResources() {
	cacheService := c.Container.GetService("cache").(services.InterfaceCacheService)

	response.Success(c.Ctx, cacheService.GetResources())
}
