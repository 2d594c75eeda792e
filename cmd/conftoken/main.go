// conftoken encodes a JSON configuration document into a compact, URL-safe
// token:
//
//	conftoken [flags] '<json_string>'
//
// The token is printed to standard output; diagnostics go to standard error.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-conf-token/internal/app"
	"github.com/MKhiriev/go-conf-token/internal/config"
	"github.com/MKhiriev/go-conf-token/internal/logger"
	"github.com/MKhiriev/go-conf-token/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(1)
	}

	if cfg.Version {
		printBuildInfo()
		return
	}

	log, err := logger.NewLogger("conftoken", cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error creating logger:", err)
		os.Exit(1)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	os.Exit(app.New(cfg, log).Run(cfg.Args))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
