package main

import (
	"log"

	"github.com/avc-dev/links-service/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// .env удобен в dev-окружении; в продакшене переменные приходят извне
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
