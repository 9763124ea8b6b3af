package models

import "math"

// Position 楼层内的坐标，始终为有限数值
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPosition 构造坐标，非法数值（NaN/Inf）被纠正为0，
// 不允许因为坐标损坏拒绝整条记录
func NewPosition(x, y float64) Position {
	return Position{X: sanitizeCoord(x), Y: sanitizeCoord(y)}
}

func sanitizeCoord(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FloorPlanItem 暂存层使用的楼层物品规范形态：
// 数据库行的 PosX/PosY 折叠为 Pos，空的可选列省略
type FloorPlanItem struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Pos        Position `json:"pos"`
	Rotation   float64  `json:"rotation"`
	Label      string   `json:"label,omitempty"`
	AssignedTo string   `json:"assignedTo,omitempty"`
}

// FloorPlan 暂存层使用的楼层规范形态，物品内嵌为数组
type FloorPlan struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Items  []FloorPlanItem `json:"items"`
}

// ToFloorPlan 将数据库楼层行转换为规范形态
func (f *Floor) ToFloorPlan() FloorPlan {
	plan := FloorPlan{
		ID:     f.ID,
		Name:   f.Name,
		Width:  f.Width,
		Height: f.Height,
		Items:  make([]FloorPlanItem, 0, len(f.Items)),
	}
	for i := range f.Items {
		plan.Items = append(plan.Items, f.Items[i].ToFloorPlanItem())
	}
	return plan
}

// ToFloorPlanItem 将数据库物品行转换为规范形态
func (it *FloorItem) ToFloorPlanItem() FloorPlanItem {
	item := FloorPlanItem{
		ID:       it.ID,
		Type:     it.Type,
		Pos:      NewPosition(it.PosX, it.PosY),
		Rotation: it.Rotation,
	}
	if it.Label != nil {
		item.Label = *it.Label
	}
	if it.AssignedTo != nil {
		item.AssignedTo = *it.AssignedTo
	}
	return item
}

// ToFloorItem 将规范形态的物品还原为指定楼层的数据库行，
// 暂存时生成的ID原样保留为主键
func (item *FloorPlanItem) ToFloorItem(floorID string) FloorItem {
	pos := NewPosition(item.Pos.X, item.Pos.Y)
	row := FloorItem{
		BaseModel: BaseModel{ID: item.ID},
		FloorID:   floorID,
		Type:      item.Type,
		PosX:      pos.X,
		PosY:      pos.Y,
		Rotation:  item.Rotation,
	}
	if item.Label != "" {
		label := item.Label
		row.Label = &label
	}
	if item.AssignedTo != "" {
		assigned := item.AssignedTo
		row.AssignedTo = &assigned
	}
	return row
}
