package main

import (
	"log"

	"checkitoff/config"
	"checkitoff/router"
)

func main() {
	config.InitConfig()

	r := router.SetupRouter()

	port := config.AppConfig.App.Port
	if port == "" {
		port = ":3000"
	}

	log.Printf("%s listening on %s", config.AppConfig.App.Name, port)
	if err := r.Run(port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
