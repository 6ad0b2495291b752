package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	_ "github.com/dkovac/vnetman/docs"
	"github.com/dkovac/vnetman/internal/app"
)

//	@title			Virtual Network Management API
//	@version		1.0
//	@description	Provisions cloud virtual networks with subnets and caches their descriptors for fast reads.

//	@host		localhost:4040
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := app.LoadConfig()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
