package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"cluedo-engine/internal/cli"
	"cluedo-engine/internal/config"

	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Parse command-line flags
	logLevel := flag.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	boardPath := flag.String("board", "default_board.json", "Path to the board configuration file")
	seed := flag.Int64("seed", 0, "Random seed for the solution draw and deal (0 = time-based)")
	reveal := flag.Bool("reveal", false, "Print the hidden solution at startup (debugging)")
	flag.Parse()

	// 2. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 3. Load the board configuration
	boardConfig, err := config.Load(*boardPath)
	if err != nil {
		log.Fatalf("Failed to load board configuration: %v", err)
	}

	// 4. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	// 5. Run the application with a seeded random source
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	randSource := rand.New(rand.NewSource(*seed))
	if err := ui.Run(boardConfig, randSource, *reveal); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
