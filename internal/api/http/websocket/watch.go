package websocket

import (
	"time"

	"github.com/matthewtgilbride/codenames/internal/state"

	"github.com/gorilla/websocket"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// WatchGame 把连接升级为 WebSocket，之后每当对局发生变化，
// 向客户端推送一份脱敏视角的对局状态。
// 推送的永远是 State 视角，凭证和未翻开的颜色不会经过这条通道
func WatchGame(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		gameID := ctx.Params().Get("id")

		// 先确认对局存在并注册观察者，再升级连接
		viewCh, cancel, err := appState.GameSvc.Watch(gameID)
		if err != nil {
			ctx.StatusCode(iris.StatusNotFound)
			return
		}
		defer cancel()

		conn, err := upgrader.Upgrade(
			ctx.ResponseWriter(),
			ctx.Request(),
			nil,
		)
		if err != nil {
			zap.L().Error(
				"升级到WebSocket失败",
				zap.String("game_id", gameID),
				zap.Error(err),
			)
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}

		defer conn.Close()

		conn.SetReadDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))
		conn.SetPongHandler(heartbeatHandler(conn))

		clientIP := ctx.RemoteAddr()

		zap.L().Info(
			"观察者连接建立",
			zap.String("game_id", gameID),
			zap.String("client_ip", clientIP),
		)

		// 写协程的退出信号
		writeDoneCh := make(chan struct{})
		defer close(writeDoneCh)

		// 写入协程：转发状态推送并维持心跳
		go func() {
			ticker := time.NewTicker(HEARTBEAT_INTERVAL)
			defer ticker.Stop()

			for {
				select {
				case <-writeDoneCh:
					zap.L().Debug(
						"WebSocket写入协程退出",
						zap.String("client_ip", clientIP),
					)
					return

				case <-ticker.C:
					conn.SetWriteDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))

					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						zap.L().Error(
							"发送心跳失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}

				case view, ok := <-viewCh:
					if !ok {
						zap.L().Info(
							"推送通道已关闭，退出写协程",
							zap.String("client_ip", clientIP),
						)
						return
					}

					if err := conn.WriteJSON(view); err != nil {
						zap.L().Error(
							"推送对局状态失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}
				}
			}
		}()

		// 读取协程（主协程）：只用于感知断连和维持心跳超时
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(
					err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure,
				) {
					zap.L().Warn(
						"观察者连接异常断开",
						zap.String("game_id", gameID),
						zap.String("client_ip", clientIP),
						zap.Error(err),
					)
				}

				return
			}
		}
	}
}
