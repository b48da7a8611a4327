package main

import (
	"fxswap/internal/app"

	"github.com/sirupsen/logrus"
)

// @title FX Swap API
// @version 1.0
// @description Currency conversion sessions backed by a price feed.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application stopped")
	}
}
