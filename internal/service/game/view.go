package game

import "strings"

// 视角类型：State 为脱敏视角，Data 为完整视角（仅出题人可见）
const (
	VIEW_STATE = "State"
	VIEW_DATA  = "Data"
)

// 面向客户端的卡牌投影，未翻开的卡牌在 State 视角下颜色为 null
type CardView struct {
	Word     string  `json:"word"`
	Color    *string `json:"color"`
	Revealed bool    `json:"revealed"`
}

// GameView 是一局游戏对外的投影，
// 序列化后直接作为 HTTP 响应体
type GameView struct {
	Type      string            `json:"type"`
	Name      string            `json:"name"`
	FirstTeam string            `json:"first_team"`
	Players   map[string]Player `json:"players"`
	Turns     []Turn            `json:"turns"`
	Board     []CardView        `json:"board"`
}

// 根据请求者身份选择视角：对局中的出题人得到完整视角，
// 其他玩家得到脱敏视角
func ProjectFor(g *GameData, requester string) (GameView, error) {
	player, ok := g.Player(requester)
	if !ok {
		return GameView{}, &ValidationError{Msg: "玩家不在对局中: " + requester}
	}

	if player.IsSpymaster() {
		return ProjectData(g, requester), nil
	}

	return ProjectState(g), nil
}

// 脱敏视角：只有已翻开的卡牌显示颜色，所有玩家的凭证都被剥离
func ProjectState(g *GameData) GameView {
	board := make([]CardView, 0, len(g.Board))

	for _, card := range g.Board {
		view := CardView{
			Word:     card.Word,
			Revealed: card.Revealed,
		}

		if card.Revealed {
			color := card.Color
			view.Color = &color
		}

		board = append(board, view)
	}

	return GameView{
		Type:      VIEW_STATE,
		Name:      g.Name,
		FirstTeam: g.FirstTeam,
		Players:   maskPlayers(g.Players, ""),
		Turns:     maskTurns(g.Turns, ""),
		Board:     board,
	}
}

// 完整视角：所有卡牌颜色可见。
// 只回显请求者自己的凭证，其他出题人的凭证仍被剥离
func ProjectData(g *GameData, requester string) GameView {
	board := make([]CardView, 0, len(g.Board))

	for _, card := range g.Board {
		color := card.Color
		board = append(board, CardView{
			Word:     card.Word,
			Color:    &color,
			Revealed: card.Revealed,
		})
	}

	key := strings.ToLower(requester)

	return GameView{
		Type:      VIEW_DATA,
		Name:      g.Name,
		FirstTeam: g.FirstTeam,
		Players:   maskPlayers(g.Players, key),
		Turns:     maskTurns(g.Turns, key),
		Board:     board,
	}
}

func maskPlayer(p Player, keepKey string) Player {
	if strings.ToLower(p.Name) == keepKey {
		return p
	}

	p.SpymasterSecret = ""

	return p
}

func maskPlayers(players map[string]Player, keepKey string) map[string]Player {
	masked := make(map[string]Player, len(players))

	for key, p := range players {
		masked[key] = maskPlayer(p, keepKey)
	}

	return masked
}

// 回合日志里也嵌着玩家（出题人和猜测记录），同样需要脱敏。
// 这里返回的是深拷贝，调用方拿到的视图和原始状态互不影响
func maskTurns(turns []Turn, keepKey string) []Turn {
	masked := make([]Turn, 0, len(turns))

	for _, turn := range turns {
		if turn.Type == TURN_PENDING {
			masked = append(masked, turn)
			continue
		}

		guesses := make([]Guess, 0, len(turn.Data.Guesses))
		for _, guess := range turn.Data.Guesses {
			guess.Player = maskPlayer(guess.Player, keepKey)
			guesses = append(guesses, guess)
		}

		masked = append(masked, Turn{
			Type: TURN_STARTED,
			Data: &TurnData{
				Spymaster: maskPlayer(turn.Data.Spymaster, keepKey),
				Clue:      turn.Data.Clue,
				Guesses:   guesses,
			},
		})
	}

	return masked
}
