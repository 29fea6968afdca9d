package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"

	"github.com/itcomusic/sqlmin/pkg/minify"
)

func main() {
	files, err := filepath.Glob("queries/*.sql")
	if err != nil {
		log.Fatal(err)
	}

	var bundle bytes.Buffer
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			log.Fatal(err)
		}

		if err := minify.Compact(&bundle, src, &minify.Options{Compress: true}); err != nil {
			log.Printf("%s skipped, %v", name, err)
			continue
		}
		bundle.WriteByte('\n')
	}

	if err := os.WriteFile("queries.bundle.sql", bundle.Bytes(), 0644); err != nil {
		log.Fatal(err)
	}
}
