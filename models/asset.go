package models

// Asset 具体资产，属于某个资产类型，可分配给一名人员。
// 通过表单创建的资产 AssignedTo 必填；拖拽上图时临时生成的
// 暂存资产允许 AssignedTo 为空
type Asset struct {
	BaseModel
	Label       string `gorm:"size:100;not null" json:"label"`
	AssignedTo  string `gorm:"size:64" json:"assignedTo,omitempty"`
	AssetTypeID string `gorm:"size:64;index;not null" json:"assetTypeId"`
}

// TableName 指定表名
func (Asset) TableName() string {
	return "assets"
}
