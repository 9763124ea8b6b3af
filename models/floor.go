package models

// Floor 楼层，一个带像素尺寸的二维区域，组合拥有其上摆放的物品
type Floor struct {
	BaseModel
	Name   string      `gorm:"size:100;not null" json:"name"`
	Width  int         `gorm:"not null" json:"width"`
	Height int         `gorm:"not null" json:"height"`
	Items  []FloorItem `gorm:"foreignKey:FloorID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName 指定表名
func (Floor) TableName() string {
	return "floors"
}

// FloorItem 楼层物品，是资产展示属性的反规范化快照加上楼层内的位置。
// Type 保存资产类型的名称而不是外键，渲染时按名称（忽略大小写）匹配；
// 快照在放置后不随源资产的修改而更新
type FloorItem struct {
	BaseModel
	FloorID    string  `gorm:"size:64;index;not null" json:"floorId"`
	Type       string  `gorm:"size:100;not null" json:"type"`
	PosX       float64 `gorm:"not null" json:"posX"`
	PosY       float64 `gorm:"not null" json:"posY"`
	Rotation   float64 `gorm:"default:0" json:"rotation"`
	Label      *string `gorm:"size:100" json:"label,omitempty"`
	AssignedTo *string `gorm:"size:64" json:"assignedTo,omitempty"`
}

// TableName 指定表名
func (FloorItem) TableName() string {
	return "floor_items"
}
