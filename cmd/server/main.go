package main

import (
	"log"

	"github.com/miyakp098/reversi/internal"
	"github.com/miyakp098/reversi/internal/config"
)

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
