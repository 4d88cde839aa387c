package service

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/matthewtgilbride/codenames/internal/service/game"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GameService 持有进程内所有对局。
// 注册表自身由 state.mu 保护，每局游戏再各自持有一把锁，
// 不同对局的操作互不阻塞
type GameService struct {
	policy        game.TurnPolicy
	maxSpymasters int

	state *gameServiceState
}

type gameServiceState struct {
	mu sync.RWMutex

	// 从小写对局 ID 到对局条目的映射
	games map[string]*gameEntry

	rng *rand.Rand
}

// 一局游戏及其观察者。mu 保证同一对局的修改互斥，
// 读投影走读锁，可以并发进行
type gameEntry struct {
	mu   sync.RWMutex
	game *game.GameData

	watcherSeq int
	watchers   map[int]chan game.GameView
}

func NewGameService(policyName string, maxSpymasters int) *GameService {
	seed := uint64(time.Now().UnixNano())

	state := &gameServiceState{
		games: make(map[string]*gameEntry),
		rng:   rand.New(rand.NewPCG(seed, seed>>1)),
	}

	return &GameService{
		policy:        game.NewTurnPolicy(policyName),
		maxSpymasters: maxSpymasters,
		state:         state,
	}
}

func genID() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("生成 UUID 失败: " + err.Error())
	}

	return id.String()
}

// 从词库抽一个 "词-词" 形式的对局名，供客户端起名用
func (gs *GameService) RandomName() string {
	gs.state.mu.Lock()
	defer gs.state.mu.Unlock()

	return game.RandomGameName(gs.state.rng)
}

// 创建一局新游戏。名字为空时退化为生成的短 ID；
// 名字在注册表内不区分大小写唯一
func (gs *GameService) CreateGame(name string) (game.GameView, error) {
	if name == "" {
		name = genID()[len(genID())-8:]
	}

	key := strings.ToLower(name)

	gs.state.mu.Lock()
	defer gs.state.mu.Unlock()

	if _, ok := gs.state.games[key]; ok {
		return game.GameView{}, &game.ConflictError{Msg: fmt.Sprintf("对局已存在: %s", name)}
	}

	words := game.RandomWords(game.BOARD_SIZE, gs.state.rng)
	board, firstTeam := game.GenerateBoard(words, gs.state.rng)

	entry := &gameEntry{
		game:     game.NewGameData(name, board, firstTeam),
		watchers: make(map[int]chan game.GameView),
	}

	gs.state.games[key] = entry

	zap.L().Info(
		"对局已创建",
		zap.String("game_id", key),
		zap.String("first_team", firstTeam),
	)

	return game.ProjectState(entry.game), nil
}

// 所有对局的 ID（排序后返回，便于测试和阅读）
func (gs *GameService) ListGames() []string {
	gs.state.mu.RLock()
	defer gs.state.mu.RUnlock()

	ids := make([]string, 0, len(gs.state.games))
	for id := range gs.state.games {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

func (gs *GameService) lookup(id string) (*gameEntry, error) {
	gs.state.mu.RLock()
	defer gs.state.mu.RUnlock()

	entry, ok := gs.state.games[strings.ToLower(id)]
	if !ok {
		return nil, &game.NotFoundError{Msg: fmt.Sprintf("对局不存在: %s", id)}
	}

	return entry, nil
}

// 匿名读取，总是返回脱敏视角
func (gs *GameService) GetGame(id string) (game.GameView, error) {
	entry, err := gs.lookup(id)
	if err != nil {
		return game.GameView{}, err
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()

	return game.ProjectState(entry.game), nil
}

// 以对局内玩家的身份读取，出题人得到完整视角
func (gs *GameService) GetGameForPlayer(id, playerName string) (game.GameView, error) {
	entry, err := gs.lookup(id)
	if err != nil {
		return game.GameView{}, err
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()

	return game.ProjectFor(entry.game, playerName)
}

func (gs *GameService) Join(id string, player game.Player) (game.GameView, error) {
	entry, err := gs.lookup(id)
	if err != nil {
		return game.GameView{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.game.Join(player, gs.maxSpymasters); err != nil {
		return game.GameView{}, err
	}

	zap.L().Info(
		"玩家加入对局",
		zap.String("game_id", id),
		zap.String("player", player.Name),
		zap.String("team", player.Team),
		zap.Bool("spymaster", player.IsSpymaster()),
	)

	entry.notifyWatchers()

	return game.ProjectFor(entry.game, player.Name)
}

// 离开对局。玩家不存在时同样返回成功（幂等）
func (gs *GameService) Leave(id, playerName string) (game.GameView, error) {
	entry, err := gs.lookup(id)
	if err != nil {
		return game.GameView{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.game.Leave(playerName)

	zap.L().Info(
		"玩家离开对局",
		zap.String("game_id", id),
		zap.String("player", playerName),
	)

	entry.notifyWatchers()

	return game.ProjectState(entry.game), nil
}

func (gs *GameService) StartTurn(id, playerName string, clue game.Clue) (game.GameView, error) {
	entry, err := gs.lookup(id)
	if err != nil {
		return game.GameView{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.game.StartTurn(playerName, clue); err != nil {
		return game.GameView{}, err
	}

	zap.L().Info(
		"回合开始",
		zap.String("game_id", id),
		zap.String("spymaster", playerName),
		zap.String("clue", clue.Word),
		zap.Int("amount", clue.Amount),
	)

	entry.notifyWatchers()

	return game.ProjectFor(entry.game, playerName)
}

func (gs *GameService) Guess(id, playerName string, index int) (game.GameView, error) {
	entry, err := gs.lookup(id)
	if err != nil {
		return game.GameView{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.game.Guess(playerName, index, gs.policy); err != nil {
		return game.GameView{}, err
	}

	zap.L().Info(
		"玩家翻牌",
		zap.String("game_id", id),
		zap.String("player", playerName),
		zap.Int("board_index", index),
		zap.String("color", entry.game.Board[index].Color),
	)

	entry.notifyWatchers()

	return game.ProjectFor(entry.game, playerName)
}

func (gs *GameService) EndTurn(id string) (game.GameView, error) {
	entry, err := gs.lookup(id)
	if err != nil {
		return game.GameView{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.game.EndTurn(); err != nil {
		return game.GameView{}, err
	}

	zap.L().Info(
		"回合结束",
		zap.String("game_id", id),
		zap.String("next_team", entry.game.CurrentTurn().TurnTeam()),
	)

	entry.notifyWatchers()

	return game.ProjectState(entry.game), nil
}

func (gs *GameService) UndoGuess(id string) (game.GameView, error) {
	entry, err := gs.lookup(id)
	if err != nil {
		return game.GameView{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.game.UndoGuess(); err != nil {
		return game.GameView{}, err
	}

	zap.L().Info(
		"撤销猜测",
		zap.String("game_id", id),
	)

	entry.notifyWatchers()

	return game.ProjectState(entry.game), nil
}

// Watch 订阅一局游戏的脱敏视角推送。
// 返回的取消函数必须被调用，否则观察者不会被清理
func (gs *GameService) Watch(id string) (<-chan game.GameView, func(), error) {
	entry, err := gs.lookup(id)
	if err != nil {
		return nil, nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.watcherSeq++
	watcherID := entry.watcherSeq

	// 带缓冲，推送跟不上时直接丢弃而不是阻塞对局
	ch := make(chan game.GameView, 16)
	entry.watchers[watcherID] = ch

	cancel := func() {
		entry.mu.Lock()
		defer entry.mu.Unlock()

		if _, ok := entry.watchers[watcherID]; ok {
			delete(entry.watchers, watcherID)
			close(ch)
		}
	}

	return ch, cancel, nil
}

// 调用方必须持有 entry.mu 写锁
func (e *gameEntry) notifyWatchers() {
	if len(e.watchers) == 0 {
		return
	}

	view := game.ProjectState(e.game)

	for id, ch := range e.watchers {
		select {
		case ch <- view:
		default:
			zap.L().Warn(
				"推送对局状态失败：观察者通道已满",
				zap.Int("watcher_id", id),
			)
		}
	}
}
