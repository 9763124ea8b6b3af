package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateID 生成一个新的实体ID
func GenerateID() string {
	return uuid.NewString()
}

// GenerateAssetLabel 根据资产类型名称生成自动标签，
// 以毫秒时间戳作后缀保证同类型多次拖放不重名
func GenerateAssetLabel(typeName string) string {
	return fmt.Sprintf("%s-%d", typeName, time.Now().UnixMilli())
}
