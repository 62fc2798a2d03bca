// Package main generates the markdown reference documentation for lox from
// the CLI command tree, the configuration struct and the token tables.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=config -outdir=docs
//	go run ./scripts/gendocs -gen=grammar -outdir=docs
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, config, grammar, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generators maps each -gen value to its generator and default directory
// relative to the project root.
var generators = map[string]struct {
	run    func(outDir string) error
	subdir string
}{
	"cli":     {generateCLIDocs, filepath.Join("docs", "cli")},
	"config":  {generateConfigDocs, "docs"},
	"grammar": {generateGrammarDocs, "docs"},
}

func main() {
	flag.Parse()

	if _, ok := generators[*genFlag]; !ok && *genFlag != "all" {
		log.Fatalf("unknown -gen value: %s (use: cli, config, grammar, all)", *genFlag)
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	if *genFlag == "all" {
		for _, name := range []string{"cli", "config", "grammar"} {
			g := generators[name]
			if err := g.run(filepath.Join(projectRoot, g.subdir)); err != nil {
				log.Fatalf("failed to generate %s docs: %v", name, err)
			}
		}
		log.Println("Done!")
		return
	}

	g := generators[*genFlag]
	outDir := *outDirFlag
	if outDir == "" {
		outDir = filepath.Join(projectRoot, g.subdir)
	}
	if err := g.run(outDir); err != nil {
		log.Fatalf("failed to generate %s docs: %v", *genFlag, err)
	}
	log.Println("Done!")
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
