package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/omazm/asset-manager/internal/error/code"
	"github.com/omazm/asset-manager/internal/error/response"
	"github.com/omazm/asset-manager/services"
	"github.com/omazm/asset-manager/services/container"
)

// InterfaceAssetTypeController 定义资产类型控制器接口
type InterfaceAssetTypeController interface {
	GetAssetTypes()
	GetAssetType()
	CreateAssetType()
}

// AssetTypeController 处理资产类型相关的请求
type AssetTypeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAssetTypeController 创建一个新的资产类型控制器
func NewAssetTypeController(ctx *gin.Context, container *container.ServiceContainer) *AssetTypeController {
	return &AssetTypeController{
		Ctx:       ctx,
		Container: container,
	}
}

// AssetTypeRequest 表示资产类型创建请求
type AssetTypeRequest struct {
	Name    string `json:"name" binding:"required" example:"Desk"`
	SvgData string `json:"svgData" binding:"required" example:"{\"type\":\"desk\",\"elements\":[]}"` // 序列化的矢量图标描述
}

// HandleAssetTypeFunc 返回一个处理资产类型请求的Gin处理函数
func HandleAssetTypeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAssetTypeController(ctx, container)

		switch method {
		case "getAssetTypes":
			controller.GetAssetTypes()
		case "getAssetType":
			controller.GetAssetType()
		case "createAssetType":
			controller.CreateAssetType()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetAssetTypes 获取所有资产类型
// @Summary 获取所有资产类型
// @Description 读穿缓存：优先返回暂存副本，缺失时从数据库拉取并回填
// @Tags AssetType
// @Accept json
// @Produce json
// @Success 200 {array} models.AssetType
// @Router /asset_types [get]
func (c *AssetTypeController) GetAssetTypes() {
	cacheService := c.Container.GetService("cache").(services.InterfaceCacheService)

	response.Success(c.Ctx, cacheService.GetAssetTypes())
}

// 2. GetAssetType 根据ID获取资产类型
// @Summary 获取单个资产类型
// @Description 按ID从数据库获取资产类型
// @Tags AssetType
// @Accept json
// @Produce json
// @Param id path string true "资产类型ID"
// @Success 200 {object} models.AssetType
// @Failure 404 {object} response.Response
// @Router /asset_types/{id} [get]
func (c *AssetTypeController) GetAssetType() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "无效的资产类型ID")
		return
	}

	assetTypeService := c.Container.GetService("asset_type").(services.InterfaceAssetTypeService)

	assetType, err := assetTypeService.GetAssetTypeByID(id)
	if err != nil {
		if errors.Is(err, services.ErrAssetTypeNotFound) {
			response.Fail(c.Ctx, code.ErrAssetTypeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取资产类型失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, assetType)
}

// 3. CreateAssetType 创建新资产类型
// @Summary 创建资产类型
// @Description 创建新的资产类型，名称全局唯一，图标描述必须是合法JSON
// @Tags AssetType
// @Accept json
// @Produce json
// @Param request body AssetTypeRequest true "资产类型信息"
// @Success 201 {object} models.AssetType
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /asset_types [post]
func (c *AssetTypeController) CreateAssetType() {
	var req AssetTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	assetTypeService := c.Container.GetService("asset_type").(services.InterfaceAssetTypeService)

	assetType, err := assetTypeService.CreateAssetType(req.Name, req.SvgData)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssetTypeExists):
			response.Fail(c.Ctx, code.ErrAssetTypeAlreadyExist, nil)
		case errors.Is(err, services.ErrInvalidIconData):
			response.Fail(c.Ctx, code.ErrAssetTypeInvalidIcon, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		}
		return
	}

	response.Created(c.Ctx, assetType)
}
