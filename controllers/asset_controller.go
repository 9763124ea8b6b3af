package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/omazm/asset-manager/internal/error/code"
	"github.com/omazm/asset-manager/internal/error/response"
	"github.com/omazm/asset-manager/services"
	"github.com/omazm/asset-manager/services/container"
)

// InterfaceAssetController 定义资产控制器接口
type InterfaceAssetController interface {
	GetAssets()
	CreateAsset()
	UpdateAsset()
}

// AssetController 处理资产相关的请求
type AssetController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAssetController 创建一个新的资产控制器
func NewAssetController(ctx *gin.Context, container *container.ServiceContainer) *AssetController {
	return &AssetController{
		Ctx:       ctx,
		Container: container,
	}
}

// AssetRequest 表示资产创建请求
type AssetRequest struct {
	Label       string `json:"label" binding:"required" example:"Desk 1"`
	AssignedTo  string `json:"assignedTo" binding:"required" example:"1"` // 人员ID
	AssetTypeID string `json:"assetTypeId" binding:"required" example:"7f8d9e0a-1b2c-3d4e-5f6a-7b8c9d0e1f2a"`
}

// AssetUpdateRequest 表示资产更新请求
type AssetUpdateRequest struct {
	Label       string `json:"label" example:"Desk 1"`
	AssignedTo  string `json:"assignedTo" example:"2"`
	AssetTypeID string `json:"assetTypeId" example:""`
}

// HandleAssetFunc 返回一个处理资产请求的Gin处理函数
func HandleAssetFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAssetController(ctx, container)

		switch method {
		case "getAssets":
			controller.GetAssets()
		case "createAsset":
			controller.CreateAsset()
		case "updateAsset":
			controller.UpdateAsset()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetAssets 获取资产列表。
// 不带查询参数时走读穿缓存返回全部资产；
// 带 asset_type_id 时直接查库按类型过滤
// @Summary 获取资产列表
// @Description 获取全部资产（读穿缓存）或按资产类型过滤（直接查库）
// @Tags Asset
// @Accept json
// @Produce json
// @Param asset_type_id query string false "资产类型ID"
// @Success 200 {array} models.Asset
// @Router /assets [get]
func (c *AssetController) GetAssets() {
	if assetTypeID := c.Ctx.Query("asset_type_id"); assetTypeID != "" {
		assetService := c.Container.GetService("asset").(services.InterfaceAssetService)

		assets, err := assetService.GetAssetsByType(assetTypeID)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取资产列表失败: "+err.Error(), nil)
			return
		}
		response.Success(c.Ctx, assets)
		return
	}

	cacheService := c.Container.GetService("cache").(services.InterfaceCacheService)
	response.Success(c.Ctx, cacheService.GetAllAssets())
}

// 2. CreateAsset 创建新资产
// @Summary 创建资产
// @Description 创建新资产，标签、分配人和资产类型均为必填
// @Tags Asset
// @Accept json
// @Produce json
// @Param request body AssetRequest true "资产信息"
// @Success 201 {object} models.Asset
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /assets [post]
func (c *AssetController) CreateAsset() {
	var req AssetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)

	asset, err := assetService.CreateAsset(req.Label, req.AssignedTo, req.AssetTypeID)
	if err != nil {
		if errors.Is(err, services.ErrAssetTypeNotFound) {
			response.Fail(c.Ctx, code.ErrAssetTypeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.Created(c.Ctx, asset)
}

// 3. UpdateAsset 更新资产信息
// @Summary 更新资产
// @Description 更新资产的标签、分配人或资产类型
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "资产ID"
// @Param request body AssetUpdateRequest true "更新内容"
// @Success 200 {object} models.Asset
// @Failure 404 {object} response.Response
// @Router /assets/{id} [put]
func (c *AssetController) UpdateAsset() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "无效的资产ID")
		return
	}

	var req AssetUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{}
	if req.Label != "" {
		updates["label"] = req.Label
	}
	if req.AssignedTo != "" {
		updates["assigned_to"] = req.AssignedTo
	}
	if req.AssetTypeID != "" {
		updates["asset_type_id"] = req.AssetTypeID
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)

	asset, err := assetService.UpdateAsset(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新资产失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, asset)
}
