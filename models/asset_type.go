package models

// AssetType 资产类型，表示一类可摆放的家具/物品，
// SvgData 保存序列化后的矢量图标描述（JSON文本，内容对本服务不透明）
type AssetType struct {
	BaseModel
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	SvgData string `gorm:"type:text" json:"svgData"`
}

// TableName 指定表名
func (AssetType) TableName() string {
	return "asset_types"
}
