package main

import (
	"log"

	"github.com/prince981620/dependency-injection/app"
)

func main() {
	application := app.New() // loads .env automatically

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
