//go:build ignore

// build.go prepares static assets for a release build:
//
//	go run build.go -release && go build -tags release
//	go run build.go -clean
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"folio/internal/utils"
)

const (
	staticDir    = "static"
	templatesDir = "templates"
)

// assetReplacements maps source assets to their minified names, relative
// to staticDir.
var assetReplacements = map[string]string{
	"css/style.css": "css/style.min.css",
	"js/main.js":    "js/main.min.js",
}

var mediaTypes = map[string]string{
	".css": "text/css",
	".js":  "application/javascript",
}

func main() {
	release := flag.Bool("release", false, "Process assets for release")
	clean := flag.Bool("clean", false, "Clean processed assets and restore original files")
	flag.Parse()

	if *release && *clean {
		log.Fatal("Cannot use -release and -clean flags simultaneously.")
	}

	if *release {
		fmt.Println("Processing assets for release...")
		if err := processAssets(); err != nil {
			log.Fatalf("Failed to process assets for release: %v", err)
		}
		fmt.Println("Assets processed successfully.")
	} else if *clean {
		fmt.Println("Cleaning up processed assets...")
		if err := cleanupAssets(); err != nil {
			log.Fatalf("Failed to clean up assets: %v", err)
		}
		fmt.Println("Cleanup complete.")
	} else {
		fmt.Println("No action specified. Use -release to process assets or -clean to clean up.")
	}
}

func processAssets() error {
	for src, dst := range assetReplacements {
		if err := minifyFile(filepath.Join(staticDir, src), filepath.Join(staticDir, dst)); err != nil {
			return err
		}
	}
	return updateHTMLReferences(false)
}

func cleanupAssets() error {
	if err := updateHTMLReferences(true); err != nil {
		return err
	}
	for _, dst := range assetReplacements {
		err := os.Remove(filepath.Join(staticDir, dst))
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func minifyFile(src, dst string) error {
	mediatype, ok := mediaTypes[filepath.Ext(src)]
	if !ok {
		return fmt.Errorf("no minifier for %s", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := utils.Minify(mediatype, out, in); err != nil {
		out.Close()
		return fmt.Errorf("minify %s: %w", src, err)
	}
	fmt.Printf("  %s -> %s\n", src, dst)
	return out.Close()
}

// updateHTMLReferences points templates at the minified assets, or back at
// the originals when restore is set.
func updateHTMLReferences(restore bool) error {
	pairs := make([]string, 0, len(assetReplacements)*2)
	for src, dst := range assetReplacements {
		from, to := "/static/"+src, "/static/"+dst
		if restore {
			from, to = to, from
		}
		pairs = append(pairs, from, to)
	}
	replacer := strings.NewReplacer(pairs...)

	files, err := filepath.Glob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return err
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		updated := replacer.Replace(string(data))
		if updated == string(data) {
			continue
		}
		if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
			return err
		}
		fmt.Printf("  updated %s\n", path)
	}
	return nil
}
