package main

import (
	"github.com/loreforge/loreforge/backend/internal/server"
	"github.com/loreforge/loreforge/backend/internal/util"
	"github.com/loreforge/loreforge/backend/pkg/logger"
	"github.com/loreforge/loreforge/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
