// Command id3dump prints the ID3v2 tags of audio files.
//
//	id3dump [-config id3.toml] [-json] [-strict] files...
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/simonhull/id3meta"
	"github.com/simonhull/id3meta/internal/config"
	"github.com/simonhull/id3meta/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("id3dump", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	jsonOut := fs.Bool("json", false, "print tags as JSON")
	strict := fs.Bool("strict", false, "fail on warnings and drop partial tags")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *version {
		info := id3meta.GetVersionInfo()
		fmt.Printf("id3dump %s (%s, %s)\n", info.Version, info.GitCommit, info.GoVersion)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if *jsonOut {
		cfg.JSON = true
	}
	if *strict {
		cfg.Strict = true
	}

	log := logging.New("id3dump", cfg.LogLevel, os.Stderr)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: id3dump [-config file.toml] [-json] [-strict] <file.mp3>...")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := id3meta.OpenEach(ctx, fs.Args(), cfg.Concurrency, cfg.Options()...)

	printer := newPrinter(os.Stdout, cfg.JSON)
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			ev := log.Error().Err(res.Err).Str("path", res.Path)
			if res.File != nil {
				ev = ev.Int("frames", res.File.Tag.Len())
			}
			ev.Msg("decode failed")
		}
		if res.File == nil {
			continue
		}

		for _, w := range res.File.Tag.Warnings {
			log.Warn().Str("path", res.Path).Str("stage", w.Stage).Int64("offset", w.Offset).Msg(w.Message)
		}
		if err := printer.print(res); err != nil {
			log.Error().Err(err).Msg("write output")
			failed++
		}
		res.File.Close()
	}

	log.Debug().Int("files", len(results)).Int("failed", failed).Msg("done")
	if failed > 0 {
		return 1
	}
	return 0
}
