// Command colorsheet renders the colors of an asset catalog to a PNG sheet.
//
// Usage:
//
//	colorsheet -bundle Resources -catalog Colors -idiom iphone -gamut display-P3 -output sheet.png [names...]
//
// With no names, every color in the catalog is drawn.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/colorcatalog"
	"github.com/gogpu/colorcatalog/catalog"
)

func main() {
	var (
		bundle  = flag.String("bundle", ".", "directory containing the .xcassets catalog")
		name    = flag.String("catalog", colorcatalog.DefaultCatalogName, "catalog name, without .xcassets")
		idiom   = flag.String("idiom", "universal", "device idiom (iphone, ipad, tv, car, mac, watch, vision, universal)")
		gamut   = flag.String("gamut", "sRGB", "display gamut (sRGB or display-P3)")
		output  = flag.String("output", "colorsheet.png", "output file")
		columns = flag.Int("columns", 6, "swatches per row")
		verbose = flag.Bool("v", false, "log lookup failures")
	)
	flag.Parse()

	if *verbose {
		colorcatalog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	bundleFS := os.DirFS(*bundle)
	m := colorcatalog.New(
		colorcatalog.WithBundle(bundleFS),
		colorcatalog.WithCatalogName(*name),
		colorcatalog.WithResolutionContext(catalog.ResolutionContext{
			Idiom: catalog.ParseIdiom(*idiom),
			Gamut: catalog.ParseGamut(*gamut),
		}),
	)

	names := flag.Args()
	if len(names) == 0 {
		sub, err := fs.Sub(bundleFS, *name+".xcassets")
		if err != nil {
			log.Fatalf("Invalid catalog name: %v", err)
		}
		if names, err = catalog.List(sub); err != nil {
			log.Fatalf("Failed to list catalog: %v", err)
		}
	}
	if len(names) == 0 {
		log.Fatalf("No colors in %s.xcassets", *name)
	}

	sheet, err := newSheet(*columns)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	img, missing := sheet.render(m, names)
	for _, n := range missing {
		fmt.Fprintf(os.Stderr, "colorsheet: %s: not found\n", n)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Sheet saved to %s (%d colors, %d missing)\n", *output, len(names), len(missing))
}
