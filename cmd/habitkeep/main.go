package main

import (
	"context"
	"log/slog"

	"github.com/dmitrijs2005/habitkeep/internal/cli"
	"github.com/dmitrijs2005/habitkeep/internal/config"
	"github.com/dmitrijs2005/habitkeep/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewDefault(slog.LevelWarn)

	app := cli.NewApp(cfg, logger)
	app.Run(context.Background())
}
