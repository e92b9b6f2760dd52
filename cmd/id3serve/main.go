// Command id3serve exposes the tag decoder over HTTP.
//
//	POST /api/v1/tags   multipart field "file", or the raw audio as the body
//	GET  /api/v1/health
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/simonhull/id3meta/internal/config"
	"github.com/simonhull/id3meta/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log := logging.New("id3serve", cfg.LogLevel, os.Stdout)
	gin.SetMode(gin.ReleaseMode)

	router := newRouter(cfg, log)

	log.Info().Str("listen", cfg.Listen).Int64("max_upload", cfg.MaxUpload).Msg("server starting")
	if err := router.Run(cfg.Listen); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
