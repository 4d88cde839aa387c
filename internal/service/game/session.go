package game

import (
	"fmt"
	"strings"
)

// GameData 是一局游戏的完整状态（未脱敏），
// 所有修改操作都在这里校验并维护不变量。
// 并发保护由上层 service 负责，这里不加锁
type GameData struct {
	Name      string
	FirstTeam string
	Board     []Card
	Players   map[string]Player
	Turns     []Turn
}

func NewGameData(name string, board []Card, firstTeam string) *GameData {
	return &GameData{
		Name:      name,
		FirstTeam: firstTeam,
		Board:     board,
		Players:   make(map[string]Player),
		Turns:     []Turn{NewPendingTurn(firstTeam)},
	}
}

// 当前回合永远是回合日志的头部
func (g *GameData) CurrentTurn() Turn {
	return g.Turns[0]
}

// 按名字（不区分大小写）查找玩家
func (g *GameData) Player(name string) (Player, bool) {
	p, ok := g.Players[strings.ToLower(name)]
	return p, ok
}

// 加入对局。名字在对局内不区分大小写唯一；
// maxSpymasters > 0 时限制每队出题人数量
func (g *GameData) Join(player Player, maxSpymasters int) error {
	if player.Name == "" {
		return &ValidationError{Msg: "玩家名称不能为空"}
	}
	if player.Team != TEAM_RED && player.Team != TEAM_BLUE {
		return &ValidationError{Msg: fmt.Sprintf("未知的队伍: %s", player.Team)}
	}

	key := strings.ToLower(player.Name)

	if _, ok := g.Players[key]; ok {
		return &ConflictError{Msg: fmt.Sprintf("玩家名称已存在: %s", player.Name)}
	}

	if player.IsSpymaster() && maxSpymasters > 0 {
		count := 0
		for _, p := range g.Players {
			if p.Team == player.Team && p.IsSpymaster() {
				count++
			}
		}

		if count >= maxSpymasters {
			return &ValidationError{Msg: fmt.Sprintf("%s 队的出题人已满", player.Team)}
		}
	}

	g.Players[key] = player

	return nil
}

// 离开对局。玩家不存在时也视为成功（幂等）
func (g *GameData) Leave(name string) {
	delete(g.Players, strings.ToLower(name))
}

// 出题人给出提示词，当前回合从 Pending 转为 Started。
// 头部被替换而不是新增，回合日志长度不变
func (g *GameData) StartTurn(name string, clue Clue) error {
	if g.CurrentTurn().Type == TURN_STARTED {
		return &ValidationError{Msg: "当前回合已经开始"}
	}

	player, ok := g.Player(name)
	if !ok {
		return &ValidationError{Msg: fmt.Sprintf("玩家不在对局中: %s", name)}
	}

	if player.Team != g.CurrentTurn().TurnTeam() {
		return &AuthorizationError{Msg: fmt.Sprintf("还没轮到 %s 队行动", player.Team)}
	}

	if !player.IsSpymaster() {
		return &AuthorizationError{Msg: fmt.Sprintf("%s 不是出题人", name)}
	}

	g.Turns[0] = NewStartedTurn(player, clue)

	return nil
}

// 行动队的猜词人翻开一张卡牌。成功后猜测记录插入当前回合
// 的头部（最新在前），是否自动结束回合由 policy 决定
func (g *GameData) Guess(name string, index int, policy TurnPolicy) error {
	if index < 0 || index >= len(g.Board) {
		return &ValidationError{Msg: fmt.Sprintf("卡牌序号越界: %d", index)}
	}

	current := g.CurrentTurn()

	if current.Type != TURN_STARTED {
		return &ValidationError{Msg: "当前回合尚未开始"}
	}

	player, ok := g.Player(name)
	if !ok {
		return &ValidationError{Msg: fmt.Sprintf("玩家不在对局中: %s", name)}
	}

	if player.IsSpymaster() {
		return &AuthorizationError{Msg: fmt.Sprintf("%s 是出题人，不能猜词", name)}
	}

	if player.Team != current.TurnTeam() {
		return &AuthorizationError{Msg: fmt.Sprintf("还没轮到 %s 队行动", player.Team)}
	}

	if g.Board[index].Revealed {
		return &ValidationError{Msg: fmt.Sprintf("卡牌已被翻开: %d", index)}
	}

	if !policy.GuessAllowed(current.Data) {
		return &ValidationError{Msg: "本回合的猜测次数已用完"}
	}

	g.Board[index].Revealed = true

	guess := Guess{
		Player:     player,
		BoardIndex: index,
		Color:      g.Board[index].Color,
	}
	current.Data.Guesses = append([]Guess{guess}, current.Data.Guesses...)

	if policy.ShouldEndTurn(current.Data, g.Board[index]) {
		g.pushPendingTurn()
	}

	return nil
}

// 结束当前回合，向日志头部压入对方队伍的 Pending 回合。
// 回合尚未开始时不允许结束
func (g *GameData) EndTurn() error {
	if g.CurrentTurn().Type != TURN_STARTED {
		return &ValidationError{Msg: "当前回合尚未开始"}
	}

	g.pushPendingTurn()

	return nil
}

// 撤销当前回合最近的一次猜测，并恢复对应卡牌的遮盖状态
func (g *GameData) UndoGuess() error {
	current := g.CurrentTurn()

	if current.Type != TURN_STARTED {
		return &ValidationError{Msg: "当前回合尚未开始"}
	}

	if len(current.Data.Guesses) == 0 {
		return &ValidationError{Msg: "当前回合还没有猜测记录"}
	}

	last := current.Data.Guesses[0]
	current.Data.Guesses = current.Data.Guesses[1:]

	g.Board[last.BoardIndex].Revealed = false

	return nil
}

// 历史回合只追加、不修改：旧的头部原样保留在日志里
func (g *GameData) pushPendingTurn() {
	next := NewPendingTurn(OtherTeam(g.CurrentTurn().TurnTeam()))
	g.Turns = append([]Turn{next}, g.Turns...)
}
