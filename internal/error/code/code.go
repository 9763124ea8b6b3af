package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 资产类型相关错误码 (101xxx).
const (
	// ErrAssetTypeNotFound - 404: 资产类型不存在.
	ErrAssetTypeNotFound int = iota + 101000
	// ErrAssetTypeAlreadyExist - 409: 资产类型名称已存在.
	ErrAssetTypeAlreadyExist
	// ErrAssetTypeInvalidIcon - 400: 图标描述不是合法的JSON.
	ErrAssetTypeInvalidIcon
)

// 资产相关错误码 (102xxx).
const (
	// ErrAssetNotFound - 404: 资产不存在.
	ErrAssetNotFound int = iota + 102000
)

// 楼层相关错误码 (103xxx).
const (
	// ErrFloorNotFound - 404: 楼层不存在.
	ErrFloorNotFound int = iota + 103000
	// ErrFloorItemNotFound - 404: 楼层物品不存在.
	ErrFloorItemNotFound
)

// 暂存与同步相关错误码 (104xxx).
const (
	// ErrNothingToCommit - 400: 暂存区没有可提交的楼层数据.
	ErrNothingToCommit int = iota + 104000
	// ErrStagingWrite - 500: 暂存文件写入失败.
	ErrStagingWrite
	// ErrSyncPartial - 500: 楼层已提交但资产同步失败.
	ErrSyncPartial
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
)
