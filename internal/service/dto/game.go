package dto

// HTTP 请求/响应的传输结构。
// 对局视图本身由引擎的 GameView 直接序列化，不在这里重复定义

type CreateGameRequest struct {
	GameName string `json:"game_name"`
}

type JoinGameRequest struct {
	Name string `json:"name"`
	Team string `json:"team"`
	// 可空，携带时请求者以出题人身份加入，
	// 该值同时作为后续请求的身份凭证
	SpymasterSecret string `json:"spymaster_secret,omitempty"`
}

type StartTurnRequest struct {
	Word   string `json:"word"`
	Amount int    `json:"amount"`
}

type GameListResponse struct {
	Games []string `json:"games"`
}

type GameNameResponse struct {
	GameName string `json:"game_name"`
}

type ErrorResponse struct {
	Msg string `json:"msg"`
}
