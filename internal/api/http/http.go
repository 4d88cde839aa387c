package http

import (
	"fmt"

	"github.com/matthewtgilbride/codenames/internal/api/http/websocket"
	"github.com/matthewtgilbride/codenames/internal/state"

	"github.com/kataras/iris/v12"
)

func RunServer(appState *state.AppState) {
	app := iris.Default()

	app.Get("/", RandomName(appState))

	games := app.Party("/game")

	games.Get("/", ListGames(appState))
	games.Post("/", CreateGame(appState))

	games.Get("/{id}", GetGame(appState))
	games.Put("/{id}/join", JoinGame(appState))
	games.Put("/{id}/end-turn", EndTurn(appState))
	games.Put("/{id}/guess/undo", UndoGuess(appState))
	games.Get("/{id}/watch", websocket.WatchGame(appState))

	games.Get("/{id}/{player}", GetGameForPlayer(appState))
	games.Put("/{id}/{player}/start-turn", StartTurn(appState))
	games.Put("/{id}/{player}/guess/{index:int}", Guess(appState))
	games.Put("/{id}/{player}/leave", LeaveGame(appState))

	addr := fmt.Sprintf(
		"%s:%d",
		appState.Cfg.Host,
		appState.Cfg.Port,
	)

	app.Listen(addr)
}
