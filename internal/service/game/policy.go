package game

// TurnPolicy 决定提示词的次数预算如何约束猜测，
// 以及一次猜测之后回合是否自动结束。
// 规则本身没有被接口契约完全固定，所以做成可插拔的策略
type TurnPolicy interface {
	// 当前回合是否还允许继续猜测
	GuessAllowed(turn *TurnData) bool
	// 刚翻开 card 之后，回合是否应当自动结束
	ShouldEndTurn(turn *TurnData, card Card) bool
}

const (
	POLICY_MANUAL   = "manual"
	POLICY_STANDARD = "standard"
)

func NewTurnPolicy(name string) TurnPolicy {
	if name == POLICY_STANDARD {
		return &standardPolicy{}
	}

	return &manualPolicy{}
}

// manualPolicy 不做任何自动判断，回合只能显式结束，
// 猜测次数也不受提示词预算限制
type manualPolicy struct{}

func (*manualPolicy) GuessAllowed(*TurnData) bool {
	return true
}

func (*manualPolicy) ShouldEndTurn(*TurnData, Card) bool {
	return false
}

// standardPolicy 按桌游规则执行：
// 翻开非本队颜色的卡牌立即结束回合；
// 猜测次数最多为提示数 +1
type standardPolicy struct{}

func (*standardPolicy) GuessAllowed(turn *TurnData) bool {
	return len(turn.Guesses) < turn.Clue.Amount+1
}

func (*standardPolicy) ShouldEndTurn(turn *TurnData, card Card) bool {
	if card.Color != turn.Spymaster.Team {
		return true
	}

	return len(turn.Guesses) >= turn.Clue.Amount+1
}
