package main

import (
	"log"
	"os"

	"link_extractor/internal/app"
	"link_extractor/internal/config"
)

func main() {
	config, err := config.LoadConfig("config.yaml")

	if err != nil {
		panic(err)
	}

	app, err := app.NewExtractorApp(config, os.Args[1:])

	if err != nil {
		panic(err)
	}

	if err := app.Run(); err != nil {
		log.Printf("input unavailable: %v\n", err)
		os.Exit(1)
	}
}
