package main

import (
	"fxrates/internal/app"

	"github.com/sirupsen/logrus"
)

// @title FX Rates API
// @version 1.0
// @description Daily exchange rates resolved against any base currency, with TTL caching.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		logrus.Fatalf("Application stopped with error: %v", err)
	}
}
