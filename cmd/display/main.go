package main

import (
	"log"

	"github.com/relabs-tech/motion_node/internal/app"
	"github.com/relabs-tech/motion_node/internal/config"
)

func main() {
	log.Println("starting motion-node status display")

	if err := config.InitGlobal("motion_config.txt"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunDisplay(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
