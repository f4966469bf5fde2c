package main

import (
	"fmt"

	"github.com/gettergen/gettergen/codegen"
	"github.com/gettergen/gettergen/config"
)

func run() error {
	cfgFile := *configOption
	if cfgFile == "" {
		var err error
		cfgFile, err = config.FindConfigFile(".", []string{".gettergen.yml", "gettergen.yml", ".gettergen.yaml", "gettergen.yaml"})
		if err != nil {
			return fmt.Errorf("failed to find config file: %w", err)
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	gen := codegen.New(cfg)
	if *checkOption {
		return gen.Check()
	}

	return gen.Generate()
}
