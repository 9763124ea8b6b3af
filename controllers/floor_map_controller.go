package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/omazm/asset-manager/internal/error/code"
	"github.com/omazm/asset-manager/internal/error/response"
	"github.com/omazm/asset-manager/services"
	"github.com/omazm/asset-manager/services/container"
)

// InterfaceFloorMapController 定义平面图编辑相关的控制器接口。
// 位置调整和拖放创建只写本地暂存；提交操作把暂存状态落库
type InterfaceFloorMapController interface {
	UpdateItemPosition()
	PlaceNewAsset()
	PlaceExistingAsset()
	CommitStagedFloors()
	RefreshStagedData()
}

// FloorMapController 处理平面图编辑相关的请求
type FloorMapController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFloorMapController 创建一个新的平面图控制器
func NewFloorMapController(ctx *gin.Context, container *container.ServiceContainer) *FloorMapController {
	return &FloorMapController{
		Ctx:       ctx,
		Container: container,
	}
}

// PositionRequest 表示物品位置更新请求
type PositionRequest struct {
	X float64 `json:"x" example:"120"`
	Y float64 `json:"y" example:"80"`
}

// PlaceNewAssetRequest 表示拖放创建资产请求
type PlaceNewAssetRequest struct {
	AssetTypeID   string  `json:"assetTypeId" binding:"required" example:"type-99"`
	AssetTypeName string  `json:"assetTypeName" binding:"required" example:"Desk"`
	X             float64 `json:"x" example:"120"`
	Y             float64 `json:"y" example:"80"`
}

// HandleFloorMapFunc 返回一个处理平面图请求的Gin处理函数
func HandleFloorMapFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFloorMapController(ctx, container)

		switch method {
		case "updateItemPosition":
			controller.UpdateItemPosition()
		case "placeNewAsset":
			controller.PlaceNewAsset()
		case "placeExistingAsset":
			controller.PlaceExistingAsset()
		case "commitStagedFloors":
			controller.CommitStagedFloors()
		case "refreshStagedData":
			controller.RefreshStagedData()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. UpdateItemPosition 更新物品在平面图上的位置（仅写暂存）
// @Summary 更新物品位置
// @Description 在暂存楼层中查找物品并替换其坐标，不写数据库
// @Tags FloorMap
// @Accept json
// @Produce json
// @Param item_id path string true "物品ID"
// @Param request body PositionRequest true "新位置"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /floor_map/items/{item_id}/position [put]
func (c *FloorMapController) UpdateItemPosition() {
	itemID := c.Ctx.Param("item_id")
	if itemID == "" {
		response.ParamError(c.Ctx, "无效的物品ID")
		return
	}

	var req PositionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	floorPlanService := c.Container.GetService("floor_plan").(services.InterfaceFloorPlanService)

	if err := floorPlanService.UpdateItemPosition(itemID, req.X, req.Y); err != nil {
		if errors.Is(err, services.ErrFloorItemNotFound) {
			response.Fail(c.Ctx, code.ErrFloorItemNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrStagingWrite, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 2. PlaceNewAsset 拖放时在楼层上创建新资产（仅写暂存）
// @Summary 拖放创建资产
// @Description 合成新资产和对应的楼层物品写入暂存，不写数据库
// @Tags FloorMap
// @Accept json
// @Produce json
// @Param id path string true "楼层ID"
// @Param request body PlaceNewAssetRequest true "资产类型与位置"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /floor_map/floors/{id}/assets [post]
func (c *FloorMapController) PlaceNewAsset() {
	floorID := c.Ctx.Param("id")
	if floorID == "" {
		response.ParamError(c.Ctx, "无效的楼层ID")
		return
	}

	var req PlaceNewAssetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	floorPlanService := c.Container.GetService("floor_plan").(services.InterfaceFloorPlanService)

	asset, item, err := floorPlanService.PlaceNewAssetOnFloor(floorID, req.AssetTypeID, req.AssetTypeName, req.X, req.Y)
	if err != nil {
		if errors.Is(err, services.ErrFloorNotFound) {
			response.Fail(c.Ctx, code.ErrFloorNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrStagingWrite, nil)
		return
	}

	response.Created(c.Ctx, gin.H{
		"asset": asset,
		"item":  item,
	})
}

// 3. PlaceExistingAsset 把已有资产摆放到楼层上（仅写暂存）
// @Summary 摆放已有资产
// @Description 以暂存资产的展示属性快照生成楼层物品写入暂存
// @Tags FloorMap
// @Accept json
// @Produce json
// @Param id path string true "楼层ID"
// @Param asset_id path string true "资产ID"
// @Param request body PositionRequest true "摆放位置"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /floor_map/floors/{id}/assets/{asset_id} [post]
func (c *FloorMapController) PlaceExistingAsset() {
	floorID := c.Ctx.Param("id")
	assetID := c.Ctx.Param("asset_id")
	if floorID == "" || assetID == "" {
		response.ParamError(c.Ctx, "无效的楼层或资产ID")
		return
	}

	var req PositionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	floorPlanService := c.Container.GetService("floor_plan").(services.InterfaceFloorPlanService)

	item, err := floorPlanService.PlaceExistingAssetOnFloor(floorID, assetID, req.X, req.Y)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssetNotFound):
			response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
		case errors.Is(err, services.ErrFloorNotFound):
			response.Fail(c.Ctx, code.ErrFloorNotFound, nil)
		default:
			response.Fail(c.Ctx, code.ErrStagingWrite, nil)
		}
		return
	}

	response.Created(c.Ctx, item)
}

// 4. CommitStagedFloors 把暂存的楼层和资产提交到数据库
// @Summary 提交暂存数据
// @Description 楼层在单个事务内按ID upsert 并整体替换物品；资产随后单独 upsert
// @Tags FloorMap
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /floor_map/commit [post]
func (c *FloorMapController) CommitStagedFloors() {
	syncService := c.Container.GetService("sync").(services.InterfaceSyncService)

	count, err := syncService.CommitStagedFloors()
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNothingToCommit):
			response.Fail(c.Ctx, code.ErrNothingToCommit, nil)
		case errors.Is(err, services.ErrAssetSyncPartial):
			// 部分成功：楼层已落库，资产同步失败
			response.Fail(c.Ctx, code.ErrSyncPartial, gin.H{"floors_committed": count})
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "提交暂存楼层失败: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{"floors_committed": count})
}

// 5. RefreshStagedData 用数据库状态全量重建暂存文件
// @Summary 刷新暂存数据
// @Description 覆盖全部集合的暂存副本，相当于重新同步离线缓存
// @Tags FloorMap
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /floor_map/refresh [post]
func (c *FloorMapController) RefreshStagedData() {
	syncService := c.Container.GetService("sync").(services.InterfaceSyncService)

	if err := syncService.RefreshStagedData(); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "刷新暂存数据失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
