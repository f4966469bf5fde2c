package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

const version = "0.1.0"

var (
	versionOption = flag.Bool("version", false, "gettergen version")
	checkOption   = flag.Bool("check", false, "verify the generated file is up to date without writing")
	configOption  = flag.String("config", "", "path to the config file")
	verboseOption = flag.Bool("verbose", false, "enable debug logging")
)

func main() {
	flag.Parse()

	if *versionOption {
		fmt.Printf("gettergen v%s\n", version)

		return
	}

	log.SetReportTimestamp(false)
	if *verboseOption {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
