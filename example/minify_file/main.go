package main

import (
	"io"
	"log"
	"os"

	"github.com/itcomusic/sqlmin"
	"golang.org/x/text/transform"
)

func main() {
	f, err := os.Open("schema.sql")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	r := transform.NewReader(f, sqlmin.New().Compress().Transformer())
	if _, err := io.Copy(os.Stdout, r); err != nil {
		if perr, ok := sqlmin.ParseErrorOf(err); ok {
			log.Fatalf("schema.sql:%d:%d: %s", perr.Position.Line, perr.Position.Column, perr.Code.Error())
		}
		log.Fatal(err)
	}
}
