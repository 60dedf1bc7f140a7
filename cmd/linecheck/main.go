package main

import (
	"linecheck/internal/app"
	"log"
	"os"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := app.NewApp().Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
