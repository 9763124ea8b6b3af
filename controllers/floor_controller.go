package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/omazm/asset-manager/internal/error/code"
	"github.com/omazm/asset-manager/internal/error/response"
	"github.com/omazm/asset-manager/models"
	"github.com/omazm/asset-manager/services"
	"github.com/omazm/asset-manager/services/container"
)

// InterfaceFloorController 定义楼层控制器接口
type InterfaceFloorController interface {
	GetFloors()
	GetFloor()
	CreateFloor()
	UpdateFloor()
	CreateFloorItem()
	UpdateFloorItem()
	DeleteFloorItem()
}

// FloorController 处理楼层相关的请求
type FloorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFloorController 创建一个新的楼层控制器
func NewFloorController(ctx *gin.Context, container *container.ServiceContainer) *FloorController {
	return &FloorController{
		Ctx:       ctx,
		Container: container,
	}
}

// FloorRequest 表示楼层创建请求
type FloorRequest struct {
	Name   string `json:"name" binding:"required" example:"First Floor - Main Office"`
	Width  int    `json:"width" binding:"required" example:"1000"`
	Height int    `json:"height" binding:"required" example:"600"`
}

// FloorUpdateRequest 表示楼层更新请求
type FloorUpdateRequest struct {
	Name   string `json:"name" example:"Second Floor"`
	Width  int    `json:"width" example:"1200"`
	Height int    `json:"height" example:"800"`
}

// FloorItemRequest 表示楼层物品创建/更新请求
type FloorItemRequest struct {
	Type       string  `json:"type" binding:"required" example:"Desk"` // 资产类型名称
	PosX       float64 `json:"posX" example:"150"`
	PosY       float64 `json:"posY" example:"150"`
	Rotation   float64 `json:"rotation" example:"0"`
	Label      string  `json:"label" example:"Desk 1"`
	AssignedTo string  `json:"assignedTo" example:"1"`
}

// HandleFloorFunc 返回一个处理楼层请求的Gin处理函数
func HandleFloorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFloorController(ctx, container)

		switch method {
		case "getFloors":
			controller.GetFloors()
		case "getFloor":
			controller.GetFloor()
		case "createFloor":
			controller.CreateFloor()
		case "updateFloor":
			controller.UpdateFloor()
		case "createFloorItem":
			controller.CreateFloorItem()
		case "updateFloorItem":
			controller.UpdateFloorItem()
		case "deleteFloorItem":
			controller.DeleteFloorItem()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetFloors 获取所有楼层（规范形态，物品内嵌）
// @Summary 获取所有楼层
// @Description 读穿缓存：优先返回暂存副本，缺失时从数据库拉取、转换并回填
// @Tags Floor
// @Accept json
// @Produce json
// @Success 200 {array} models.FloorPlan
// @Router /floors [get]
func (c *FloorController) GetFloors() {
	cacheService := c.Container.GetService("cache").(services.InterfaceCacheService)

	response.Success(c.Ctx, cacheService.GetFloors())
}

// 2. GetFloor 根据ID获取楼层
// @Summary 获取单个楼层
// @Description 按ID从数据库获取楼层及其物品
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "楼层ID"
// @Success 200 {object} models.FloorPlan
// @Failure 404 {object} response.Response
// @Router /floors/{id} [get]
func (c *FloorController) GetFloor() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "无效的楼层ID")
		return
	}

	floorService := c.Container.GetService("floor").(services.InterfaceFloorService)

	floor, err := floorService.GetFloorByID(id)
	if err != nil {
		if errors.Is(err, services.ErrFloorNotFound) {
			response.Fail(c.Ctx, code.ErrFloorNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取楼层失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, floor.ToFloorPlan())
}

// 3. CreateFloor 创建新楼层
// @Summary 创建楼层
// @Description 创建新楼层，名称非空，宽高必须为正
// @Tags Floor
// @Accept json
// @Produce json
// @Param request body FloorRequest true "楼层信息"
// @Success 201 {object} models.Floor
// @Failure 400 {object} response.Response
// @Router /floors [post]
func (c *FloorController) CreateFloor() {
	var req FloorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	floorService := c.Container.GetService("floor").(services.InterfaceFloorService)

	floor, err := floorService.CreateFloor(req.Name, req.Width, req.Height)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.Created(c.Ctx, floor)
}

// 4. UpdateFloor 更新楼层信息
// @Summary 更新楼层
// @Description 更新楼层的名称或尺寸
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "楼层ID"
// @Param request body FloorUpdateRequest true "更新内容"
// @Success 200 {object} models.Floor
// @Failure 404 {object} response.Response
// @Router /floors/{id} [put]
func (c *FloorController) UpdateFloor() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "无效的楼层ID")
		return
	}

	var req FloorUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Width > 0 {
		updates["width"] = req.Width
	}
	if req.Height > 0 {
		updates["height"] = req.Height
	}

	floorService := c.Container.GetService("floor").(services.InterfaceFloorService)

	floor, err := floorService.UpdateFloor(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrFloorNotFound) {
			response.Fail(c.Ctx, code.ErrFloorNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新楼层失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, floor)
}

// 5. CreateFloorItem 在楼层上直接创建物品
// @Summary 创建楼层物品
// @Description 绕过暂存直接写库创建楼层物品
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "楼层ID"
// @Param request body FloorItemRequest true "物品信息"
// @Success 201 {object} models.FloorItem
// @Failure 404 {object} response.Response
// @Router /floors/{id}/items [post]
func (c *FloorController) CreateFloorItem() {
	floorID := c.Ctx.Param("id")
	if floorID == "" {
		response.ParamError(c.Ctx, "无效的楼层ID")
		return
	}

	var req FloorItemRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	item := models.FloorItem{
		Type:     req.Type,
		PosX:     req.PosX,
		PosY:     req.PosY,
		Rotation: req.Rotation,
	}
	if req.Label != "" {
		label := req.Label
		item.Label = &label
	}
	if req.AssignedTo != "" {
		assigned := req.AssignedTo
		item.AssignedTo = &assigned
	}

	floorService := c.Container.GetService("floor").(services.InterfaceFloorService)

	if err := floorService.CreateFloorItem(floorID, &item); err != nil {
		if errors.Is(err, services.ErrFloorNotFound) {
			response.Fail(c.Ctx, code.ErrFloorNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建楼层物品失败: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, item)
}

// 6. UpdateFloorItem 更新楼层物品
// @Summary 更新楼层物品
// @Description 绕过暂存直接写库更新楼层物品
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "楼层ID"
// @Param item_id path string true "物品ID"
// @Param request body FloorItemRequest true "更新内容"
// @Success 200 {object} models.FloorItem
// @Failure 404 {object} response.Response
// @Router /floors/{id}/items/{item_id} [put]
func (c *FloorController) UpdateFloorItem() {
	floorID := c.Ctx.Param("id")
	itemID := c.Ctx.Param("item_id")
	if floorID == "" || itemID == "" {
		response.ParamError(c.Ctx, "无效的楼层或物品ID")
		return
	}

	var req FloorItemRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"type":     req.Type,
		"pos_x":    req.PosX,
		"pos_y":    req.PosY,
		"rotation": req.Rotation,
	}
	if req.Label != "" {
		updates["label"] = req.Label
	}
	if req.AssignedTo != "" {
		updates["assigned_to"] = req.AssignedTo
	}

	floorService := c.Container.GetService("floor").(services.InterfaceFloorService)

	item, err := floorService.UpdateFloorItem(floorID, itemID, updates)
	if err != nil {
		if errors.Is(err, services.ErrFloorItemNotFound) {
			response.Fail(c.Ctx, code.ErrFloorItemNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新楼层物品失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, item)
}

// 7. DeleteFloorItem 删除楼层物品
// @Summary 删除楼层物品
// @Description 直接从数据库删除楼层物品，并使楼层暂存失效
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "楼层ID"
// @Param item_id path string true "物品ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /floors/{id}/items/{item_id} [delete]
func (c *FloorController) DeleteFloorItem() {
	floorID := c.Ctx.Param("id")
	itemID := c.Ctx.Param("item_id")
	if floorID == "" || itemID == "" {
		response.ParamError(c.Ctx, "无效的楼层或物品ID")
		return
	}

	floorService := c.Container.GetService("floor").(services.InterfaceFloorService)

	if err := floorService.DeleteFloorItem(floorID, itemID); err != nil {
		if errors.Is(err, services.ErrFloorItemNotFound) {
			response.Fail(c.Ctx, code.ErrFloorItemNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除楼层物品失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
