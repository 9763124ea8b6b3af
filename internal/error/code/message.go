package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTooManyRequests: "请求频率过高",

	// 资产类型相关错误码
	ErrAssetTypeNotFound:     "资产类型不存在",
	ErrAssetTypeAlreadyExist: "资产类型名称已存在",
	ErrAssetTypeInvalidIcon:  "图标描述必须是合法的JSON",

	// 资产相关错误码
	ErrAssetNotFound: "资产不存在",

	// 楼层相关错误码
	ErrFloorNotFound:     "楼层不存在",
	ErrFloorItemNotFound: "楼层物品不存在",

	// 暂存与同步相关错误码
	ErrNothingToCommit: "暂存区没有可提交的楼层数据",
	ErrStagingWrite:    "暂存文件写入失败",
	ErrSyncPartial:     "楼层已提交，但资产同步失败",

	// 数据库相关错误码
	ErrDatabase: "数据库错误",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	// 资产类型相关错误码
	ErrAssetTypeNotFound:     StatusNotFound,
	ErrAssetTypeAlreadyExist: StatusConflict,
	ErrAssetTypeInvalidIcon:  StatusBadRequest,

	// 资产相关错误码
	ErrAssetNotFound: StatusNotFound,

	// 楼层相关错误码
	ErrFloorNotFound:     StatusNotFound,
	ErrFloorItemNotFound: StatusNotFound,

	// 暂存与同步相关错误码
	ErrNothingToCommit: StatusBadRequest,
	ErrStagingWrite:    StatusInternalServerError,
	ErrSyncPartial:     StatusInternalServerError,

	// 数据库相关错误码
	ErrDatabase: StatusInternalServerError,
}

// GetMessage 根据错误码获取消息
func GetMessage(errCode int) string {
	if msg, ok := codeMessageMap[errCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 根据错误码获取HTTP状态码
func GetStatus(errCode int) int {
	if status, ok := codeStatusMap[errCode]; ok {
		return status
	}
	return StatusInternalServerError
}
