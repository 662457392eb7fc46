// GoLumen — procedural sample lighting assets.
//
// Usage:
//
//	golumen [-o <dir>] [--only <name>]
//	golumen sheet [-o <file>] [--thumb <px>]
//	golumen serve [--port 8080]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/xob0t/GoLumen/clients/server"
	"github.com/xob0t/GoLumen/pkg/assets"
	"github.com/xob0t/GoLumen/pkg/sheet"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "sheet":
			if err := runSheet(args[1:]); err != nil {
				fatal(err)
			}
			return
		case "serve":
			if err := server.RunServe(args[1:]); err != nil {
				fatal(err)
			}
			return
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	// Default: generate mode (all flags on root).
	if err := run(args); err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("golumen", flag.ExitOnError)

	var (
		outDir  string
		only    string
		verbose bool
	)

	fs.StringVar(&outDir, "o", "assets", "Output directory for generated textures")
	fs.StringVar(&outDir, "out", "assets", "Output directory for generated textures")
	fs.StringVar(&only, "only", "", "Generate a single named texture (e.g. sample_gobo)")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := assets.Defaults()
	if only != "" {
		a, ok := assets.Lookup(only)
		if !ok {
			return fmt.Errorf("unknown texture %q (try sample_base_texture, sample_normal_map, sample_gobo)", only)
		}
		list = []assets.Asset{a}
	}

	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{Name: "golumen", Level: level})

	fmt.Printf("Generating %d texture(s) in %s\n", len(list), outDir)
	if err := assets.Generate(outDir, list, logger); err != nil {
		return err
	}
	fmt.Printf("Generated sample assets in %s\n", outDir)
	return nil
}

func runSheet(args []string) error {
	fs := flag.NewFlagSet("sheet", flag.ExitOnError)

	var (
		output string
		thumb  int
	)
	fs.StringVar(&output, "o", "contact_sheet.png", "Output file for the contact sheet")
	fs.StringVar(&output, "out", "contact_sheet.png", "Output file for the contact sheet")
	fs.IntVar(&thumb, "thumb", 256, "Thumbnail edge size in pixels")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Printf("Rendering contact sheet: %s\n", output)
	if err := sheet.WriteFile(output, assets.Defaults(), thumb); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", output)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`GoLumen — Procedural Sample Lighting Assets (Pure Go)

USAGE:
    golumen [options]
    golumen sheet [options]
    golumen serve [--port 8080]

GENERATE (default):
    -o, --out <dir>      Output directory (default: assets)
    --only <name>        Generate one texture: sample_base_texture,
                         sample_normal_map, or sample_gobo
    -v                   Verbose logging

SHEET:
    -o, --out <file>     Output file (default: contact_sheet.png)
    --thumb <px>         Thumbnail edge size (default: 256)

SERVE:
    golumen serve [--port 8080]    Render textures over HTTP for preview

EXAMPLES:
    golumen
    golumen -o build/assets
    golumen --only sample_gobo
    golumen sheet -o preview.png --thumb 192
    golumen serve --port 9090
`)
}
