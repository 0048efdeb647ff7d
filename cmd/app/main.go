package main

import (
	"salon/config"
	"salon/di"
	"salon/shared/logger"
)

// @title Salon API
// @version 1.0
// @description Catalogue, booking and contact endpoints for the salon website.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
