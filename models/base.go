package models

import "time"

// 暂存集合的存储键，与本地暂存目录中的文件名一一对应
const (
	StorageKeyAssetTypes = "asset-types"
	StorageKeyAssets     = "assets"
	StorageKeyFloors     = "floors"
	StorageKeyResources  = "resources"
)

// StorageKeys 返回所有暂存集合键
func StorageKeys() []string {
	return []string{StorageKeyAssetTypes, StorageKeyAssets, StorageKeyFloors, StorageKeyResources}
}

// BaseModel 所有持久化实体的公共字段。主键为字符串ID，
// 由应用层生成，数据库不负责生成主键
type BaseModel struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
