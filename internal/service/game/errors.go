package game

// 引擎自身的错误分类，由传输层统一映射为 HTTP 状态码：
// NotFoundError -> 404，其余 -> 400
// 所有错误都不会破坏对局状态：校验全部发生在任何修改之前

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string {
	return e.Msg
}

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
