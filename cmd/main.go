// Package main is the entry point for the postage comparator API.
//
// @title           Postage Comparator API
// @version         1.0.0
// @description     Stores the shipping origin, the item and packaging catalogs, and prices
// @description     domestic shipments against every enabled carrier provider.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/postage-comparator
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Settings
// @tag.description Origin address and theme preference
//
// @tag.name        Items
// @tag.description Item catalog
//
// @tag.name        Packaging
// @tag.description Packaging catalog
//
// @tag.name        Quotes
// @tag.description Shipment quoting
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/postage-comparator/docs" // swagger docs

	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	if err := server.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
