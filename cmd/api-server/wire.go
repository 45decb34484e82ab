//go:build wireinject
// +build wireinject

package main

import (
	"Warble/config"
	"Warble/dao"
	"Warble/dao/cache"
	"Warble/handler"
	"Warble/pkg/client"
	"Warble/pkg/database"
	"Warble/pkg/server"
	"Warble/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Message), "*"),
		wire.Struct(new(handler.Feed), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
