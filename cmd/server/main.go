// Package main starts the local employee API stand-in used by the dashboard
// client during development and integration testing.
package main

import (
	"cmp"
	"fmt"
	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/staffdeck/internal/config"
	"github.com/atinyakov/staffdeck/internal/dataset"
	"github.com/atinyakov/staffdeck/internal/logger"
	"github.com/atinyakov/staffdeck/internal/server/handler/http"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	options := config.Parse()
	addr := options.Port

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()
	if err := log.Init("info"); err != nil {
		panic(err)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	store := dataset.New()
	employeeHandler := http.NewEmployeeHandler(store)
	router := http.NewRouter(employeeHandler, zapLogger)

	zapLogger.Info("employee API listening", zap.String("addr", addr))
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
