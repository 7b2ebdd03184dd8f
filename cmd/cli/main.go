package main

import (
	"context"
	"os"

	"github.com/vimarshsub/schoolstatus-cli/internal/buildinfo"
	"github.com/vimarshsub/schoolstatus-cli/internal/client/cli"
	"github.com/vimarshsub/schoolstatus-cli/internal/client/config"
	"github.com/vimarshsub/schoolstatus-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewZapLogger(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}
