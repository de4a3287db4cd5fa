// Command gallery routes one scene in every mode, the way a mode picker
// would show them, and prints or writes each result.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"elbow/config"
	"elbow/core"
	"elbow/export"
	"elbow/logging"
)

func main() {
	var (
		sceneFile = flag.String("config", "", "Scene file (YAML); the default scene is used when empty")
		format    = flag.String("format", "ascii", "Export format for each mode")
		outDir    = flag.String("o", "", "Output directory, one file per mode (default: stdout)")
	)
	flag.Parse()

	logging.Init(logging.FromEnv())
	defer logging.Close()

	if err := run(*sceneFile, *format, *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneFile, formatName, outDir string) error {
	scene := config.Defaults()
	scene.Origin = config.Node{Label: "origin", Box: config.Box{X: 0, Y: 0, Width: 100, Height: 40}}
	scene.Destination = config.Node{Label: "destination", Box: config.Box{X: 200, Y: 120, Width: 100, Height: 40}}
	if sceneFile != "" {
		var err error
		if scene, err = config.Load(sceneFile); err != nil {
			return err
		}
	}
	scene.Legacy = ""

	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	logger := logging.WithComponent("gallery")
	for _, mode := range core.AllModes() {
		scene.Mode = mode.String()
		routed, err := scene.Build(logger)
		if err != nil {
			return fmt.Errorf("%s: %w", mode, err)
		}
		data, err := exporter.Export(routed)
		if err != nil {
			return fmt.Errorf("%s: %w", mode, err)
		}

		if outDir == "" {
			fmt.Printf("== %s (%s, %s)\n%s\n", mode, routed.Result.Mode, routed.Result.Branch, data)
			continue
		}
		name := strings.ToLower(mode.String()) + exporter.GetFileExtension()
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if outDir != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d files to %s\n", len(core.AllModes()), outDir)
	}
	return nil
}
