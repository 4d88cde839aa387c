package main

import (
	"github.com/matthewtgilbride/codenames/internal/api/http"
	"github.com/matthewtgilbride/codenames/internal/config"
	"github.com/matthewtgilbride/codenames/internal/logger"
	"github.com/matthewtgilbride/codenames/internal/service"
	"github.com/matthewtgilbride/codenames/internal/state"
)

func main() {
	// 加载配置
	cfg := config.InitConfig()

	// 初始化日志器
	logger.InitLogger(cfg.LogLevel)

	// 组装应用状态
	appState := state.NewAppState(
		cfg,
		service.NewGameService(cfg.TurnPolicy, cfg.MaxSpymasters),
	)

	// 启动服务器
	http.RunServer(appState)
}
