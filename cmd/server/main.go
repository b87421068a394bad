// Command server runs the flashcards HTTP API.
//
// Configuration comes from CONFIG_PATH (or ./config.yaml) and environment
// variables. A .env file in the working directory is loaded first if present.
// Run with -env-help to list the recognised variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
)

func main() {
	envHelp := flag.Bool("env-help", false, "print configuration environment variables and exit")
	flag.Parse()

	if *envHelp {
		usage, err := config.Usage()
		if err != nil {
			log.Fatalf("config usage: %v", err)
		}
		fmt.Println(usage)
		return
	}

	if err := config.LoadDotEnv(); err != nil {
		log.Printf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
