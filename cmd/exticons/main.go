package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jo-hoe/goicons/internal/core"
	_ "github.com/jo-hoe/goicons/internal/renderers"
)

func main() {
	config, err := core.DefaultConfig()
	if err != nil {
		fmt.Printf("✗ generation failed: %v\n", err)
		return
	}
	core.SetupLogging(os.Stderr, config)

	fmt.Println("Generating extension icons...")
	artifacts, err := core.NewIconService(config).GenerateExtensionIcons(context.Background())
	core.NewReporter(os.Stdout).Extension(config.Renderer, artifacts, err)
}
