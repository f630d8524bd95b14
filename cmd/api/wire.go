//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/util"
	"github.com/stewardhq/steward/x/actor"
	"github.com/stewardhq/steward/x/auth"
	"github.com/stewardhq/steward/x/grant"
	"github.com/stewardhq/steward/x/permission"
	"github.com/stewardhq/steward/x/workorder"
)

var grantServiceProvider = wire.NewSet(grant.NewService, grant.NewRepository)
var actorServiceProvider = wire.NewSet(actor.NewService, actor.NewRepository, permission.NewService)
var workorderServiceProvider = wire.NewSet(workorder.NewService, workorder.NewRepository)

func SetupGrantService(config util.Config) (core.GrantService, error) {
	wire.Build(grantServiceProvider)
	return nil, nil
}

func SetupPermissionService(grants core.GrantService, config util.Config) core.PermissionService {
	wire.Build(permission.NewService)
	return nil
}

func SetupPermissionHandler(grants core.GrantService, config util.Config) permission.Handler {
	wire.Build(permission.NewHandler, permission.NewService)
	return nil
}

func SetupActorHandler(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, grants core.GrantService, config util.Config) actor.Handler {
	wire.Build(actor.NewHandler, actorServiceProvider)
	return nil
}

func SetupWorkOrderHandler(db *gorm.DB, mc *memcache.Client) workorder.Handler {
	wire.Build(workorder.NewHandler, workorderServiceProvider)
	return nil
}

func SetupAuthService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, grants core.GrantService, config util.Config) core.AuthService {
	wire.Build(auth.NewService, actorServiceProvider, workorderServiceProvider)
	return nil
}
