package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"KreyolCollector/internal/asr"
	"KreyolCollector/internal/config"
	"KreyolCollector/internal/handler"
	"KreyolCollector/internal/storage"

	_ "KreyolCollector/docs"
)

// @title           Kreyol Collector API
// @version         0.1.0
// @description     Data-collection service for paired English / Haitian-Creole audio and text samples.
// @BasePath        /
func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("main(): loaded .env")
	}

	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("main(): failed to load config: %v", err)
	}

	store := storage.New(cfg.Storage.DataDir)
	if err := store.EnsureLayout(); err != nil {
		log.Fatalf("main(): failed to prepare data directories: %v", err)
	}

	h := handler.New(cfg, store, asr.NewStub())
	router := handler.NewRouter(cfg, h)

	log.Printf("main(): data dir %s, max upload %d bytes, env %s",
		cfg.Storage.DataDir, cfg.Server.MaxFileSize, cfg.Env)
	log.Printf("main(): listening on :%d", cfg.Server.Port)
	log.Fatal(router.Run(fmt.Sprintf(":%d", cfg.Server.Port)))
}
