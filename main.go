package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] <width> <height>\n", os.Args[0])
		fmt.Fprintf(fs.Output(), "patterns: %v\n", model.PatternNames())
		fs.PrintDefaults()
	}
	configPath := fs.String("config", defaultConfigFile, "JSON config file")
	flags := utils.DefaultConfig()
	flags.Bind(fs)
	_ = fs.Parse(os.Args[1:])

	// Grid size comes first: nothing is built without it
	width, height, err := utils.ParseDimensions(fs.Args())
	if err != nil {
		fs.Usage()
		log.Fatal(err)
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) { explicit = explicit || f.Name == "config" })

	// Load configuration - fallback to defaults if the default file doesn't exist
	config, err := loadConfig(*configPath, explicit)
	if err != nil {
		log.Fatal(err)
	}
	config.Override(flags, fs)
	config.Width, config.Height = width, height
	if err = config.Validate(); err != nil {
		log.Fatal(err)
	}

	stats := utils.NewStats()
	engine, err := initializeGame(config, stats)
	if err != nil {
		log.Fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, err = runGame(ctx, config, engine)
	switch {
	case err == nil:
	case isShutdown(err):
		log.Println("shutting down")
	default:
		log.Print(err)
	}
	log.Println(stats.Summary())
	if err != nil && !isShutdown(err) {
		stop()
		os.Exit(1)
	}
}
