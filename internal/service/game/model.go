package game

import "encoding/json"

// 队伍
const (
	TEAM_RED  = "Red"
	TEAM_BLUE = "Blue"
)

// 卡牌颜色，队伍色直接复用队伍名
const (
	COLOR_RED      = "Red"
	COLOR_BLUE     = "Blue"
	COLOR_NEUTRAL  = "Neutral"
	COLOR_ASSASSIN = "Assassin"
)

// 标准 25 张牌的分布：先手队 9 张，后手队 8 张，中立 7 张，刺客 1 张
const (
	BOARD_SIZE        = 25
	FIRST_TEAM_CARDS  = 9
	SECOND_TEAM_CARDS = 8
	NEUTRAL_CARDS     = 7
	ASSASSIN_CARDS    = 1
)

func OtherTeam(team string) string {
	if team == TEAM_RED {
		return TEAM_BLUE
	}

	return TEAM_RED
}

// 一张卡牌，颜色在创建时固定，revealed 在被猜中后置位
type Card struct {
	Word     string `json:"word"`
	Color    string `json:"color"`
	Revealed bool   `json:"revealed"`
}

// 玩家。SpymasterSecret 非空即为出题人（Spymaster），
// 这个值同时作为后续请求的身份凭证
type Player struct {
	Name            string `json:"name"`
	Team            string `json:"team"`
	SpymasterSecret string `json:"spymaster_secret,omitempty"`
}

func (p Player) IsSpymaster() bool {
	return p.SpymasterSecret != ""
}

// 提示词和允许的猜测次数
type Clue struct {
	Word   string `json:"word"`
	Amount int    `json:"amount"`
}

// 一次猜测的记录，Color 是被翻开卡牌的实际颜色
type Guess struct {
	Player     Player `json:"player"`
	BoardIndex int    `json:"board_index"`
	Color      string `json:"color"`
}

// 回合状态
const (
	TURN_PENDING = "Pending"
	TURN_STARTED = "Started"
)

// 已开始回合的内容
type TurnData struct {
	Spymaster Player  `json:"spymaster"`
	Clue      Clue    `json:"clue"`
	Guesses   []Guess `json:"guesses"`
}

// Turn 是 Pending / Started 两种状态的变体类型：
// Pending 时只有 Team 有效，Started 时只有 Data 有效
type Turn struct {
	Type string
	Team string
	Data *TurnData
}

func NewPendingTurn(team string) Turn {
	return Turn{
		Type: TURN_PENDING,
		Team: team,
	}
}

func NewStartedTurn(spymaster Player, clue Clue) Turn {
	return Turn{
		Type: TURN_STARTED,
		Data: &TurnData{
			Spymaster: spymaster,
			Clue:      clue,
			Guesses:   make([]Guess, 0),
		},
	}
}

// 回合所属的队伍
func (t Turn) TurnTeam() string {
	if t.Type == TURN_PENDING {
		return t.Team
	}

	return t.Data.Spymaster.Team
}

// 序列化成 {"type": ..., "data": ...} 的标签形式
// Pending 的 data 是队伍名，Started 的 data 是回合内容
func (t Turn) MarshalJSON() ([]byte, error) {
	if t.Type == TURN_PENDING {
		return json.Marshal(struct {
			Type string `json:"type"`
			Data string `json:"data"`
		}{
			Type: TURN_PENDING,
			Data: t.Team,
		})
	}

	return json.Marshal(struct {
		Type string    `json:"type"`
		Data *TurnData `json:"data"`
	}{
		Type: TURN_STARTED,
		Data: t.Data,
	})
}
