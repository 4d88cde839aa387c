package game

import "math/rand/v2"

// 生成一副新棋盘：随机选出先手队伍，按固定分布分配颜色后洗牌。
// 传入确定性的 rng 时结果可复现，便于测试
func GenerateBoard(words []string, rng *rand.Rand) ([]Card, string) {
	if len(words) < BOARD_SIZE {
		panic("生成棋盘需要至少 25 个词")
	}

	firstTeam := TEAM_RED
	if rng.IntN(2) == 0 {
		firstTeam = TEAM_BLUE
	}

	colors := make([]string, 0, BOARD_SIZE)

	for i := 0; i < FIRST_TEAM_CARDS; i++ {
		colors = append(colors, firstTeam)
	}
	for i := 0; i < SECOND_TEAM_CARDS; i++ {
		colors = append(colors, OtherTeam(firstTeam))
	}
	for i := 0; i < NEUTRAL_CARDS; i++ {
		colors = append(colors, COLOR_NEUTRAL)
	}
	for i := 0; i < ASSASSIN_CARDS; i++ {
		colors = append(colors, COLOR_ASSASSIN)
	}

	rng.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})

	board := make([]Card, 0, BOARD_SIZE)

	for i := 0; i < BOARD_SIZE; i++ {
		board = append(board, Card{
			Word:  words[i],
			Color: colors[i],
		})
	}

	return board, firstTeam
}
