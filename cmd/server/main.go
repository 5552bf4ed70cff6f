package main

import (
	"context"
	"log"
	"os"

	"github.com/alaaldainabdo/scalable-login-system/internal/buildinfo"
	"github.com/alaaldainabdo/scalable-login-system/internal/server"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
