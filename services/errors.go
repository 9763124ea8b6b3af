package services

import "errors"

// 服务层哨兵错误，控制器通过 errors.Is 映射为对应的错误码
var (
	ErrAssetTypeNotFound = errors.New("资产类型不存在")
	ErrAssetTypeExists   = errors.New("资产类型名称已存在")
	ErrInvalidIconData   = errors.New("图标描述必须是合法的JSON")
	ErrAssetNotFound     = errors.New("资产不存在")
	ErrFloorNotFound     = errors.New("楼层不存在")
	ErrFloorItemNotFound = errors.New("楼层物品不存在")
	ErrNothingToCommit   = errors.New("暂存区没有可提交的楼层数据")
	ErrAssetSyncPartial  = errors.New("楼层已提交，但资产同步失败")
)
