package http

import (
	"errors"

	"github.com/matthewtgilbride/codenames/internal/service/dto"
	"github.com/matthewtgilbride/codenames/internal/service/game"
	"github.com/matthewtgilbride/codenames/internal/state"

	"github.com/kataras/iris/v12"
)

// 引擎错误到 HTTP 状态码的唯一映射点：
// 对局不存在 -> 404，其余错误 -> 400，响应体统一为 {"msg": ...}
func writeError(ctx iris.Context, err error) {
	var notFound *game.NotFoundError

	if errors.As(err, &notFound) {
		ctx.StatusCode(iris.StatusNotFound)
	} else {
		ctx.StatusCode(iris.StatusBadRequest)
	}

	ctx.JSON(dto.ErrorResponse{Msg: err.Error()})
}

func RandomName(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		ctx.JSON(dto.GameNameResponse{
			GameName: appState.GameSvc.RandomName(),
		})
	}
}

func CreateGame(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.CreateGameRequest

		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(dto.ErrorResponse{Msg: "请求参数无效"})
			return
		}

		view, err := appState.GameSvc.CreateGame(req.GameName)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(view)
	}
}

func ListGames(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		ctx.JSON(dto.GameListResponse{
			Games: appState.GameSvc.ListGames(),
		})
	}
}

func GetGame(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		view, err := appState.GameSvc.GetGame(ctx.Params().Get("id"))
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(view)
	}
}

func GetGameForPlayer(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		view, err := appState.GameSvc.GetGameForPlayer(
			ctx.Params().Get("id"),
			ctx.Params().Get("player"),
		)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(view)
	}
}

func JoinGame(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.JoinGameRequest

		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(dto.ErrorResponse{Msg: "请求参数无效"})
			return
		}

		player := game.Player{
			Name:            req.Name,
			Team:            req.Team,
			SpymasterSecret: req.SpymasterSecret,
		}

		view, err := appState.GameSvc.Join(ctx.Params().Get("id"), player)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(view)
	}
}

func StartTurn(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.StartTurnRequest

		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(dto.ErrorResponse{Msg: "请求参数无效"})
			return
		}

		view, err := appState.GameSvc.StartTurn(
			ctx.Params().Get("id"),
			ctx.Params().Get("player"),
			game.Clue{Word: req.Word, Amount: req.Amount},
		)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(view)
	}
}

func Guess(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		index, err := ctx.Params().GetInt("index")
		if err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(dto.ErrorResponse{Msg: "卡牌序号无效"})
			return
		}

		view, err := appState.GameSvc.Guess(
			ctx.Params().Get("id"),
			ctx.Params().Get("player"),
			index,
		)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(view)
	}
}

func EndTurn(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		view, err := appState.GameSvc.EndTurn(ctx.Params().Get("id"))
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(view)
	}
}

func UndoGuess(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		view, err := appState.GameSvc.UndoGuess(ctx.Params().Get("id"))
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(view)
	}
}

func LeaveGame(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		view, err := appState.GameSvc.Leave(
			ctx.Params().Get("id"),
			ctx.Params().Get("player"),
		)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(view)
	}
}
