package main

import (
	"fxrates/internal/app"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := app.RunLoader(); err != nil {
		logrus.Fatalf("Loader stopped with error: %v", err)
	}
}
