// Code generated by Wire. DO NOT EDIT.

//go:generate go run github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/util"
	"github.com/stewardhq/steward/x/actor"
	"github.com/stewardhq/steward/x/auth"
	"github.com/stewardhq/steward/x/grant"
	"github.com/stewardhq/steward/x/permission"
	"github.com/stewardhq/steward/x/workorder"
	"gorm.io/gorm"
)

// Injectors from wire.go:

func SetupGrantService(config util.Config) (core.GrantService, error) {
	repository := grant.NewRepository(config)
	grantService, err := grant.NewService(repository)
	if err != nil {
		return nil, err
	}
	return grantService, nil
}

func SetupPermissionService(grants core.GrantService, config util.Config) core.PermissionService {
	permissionService := permission.NewService(grants, config)
	return permissionService
}

func SetupPermissionHandler(grants core.GrantService, config util.Config) permission.Handler {
	permissionService := permission.NewService(grants, config)
	handler := permission.NewHandler(permissionService, grants)
	return handler
}

func SetupActorHandler(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, grants core.GrantService, config util.Config) actor.Handler {
	repository := actor.NewRepository(db, rdb, mc, config)
	permissionService := permission.NewService(grants, config)
	actorService := actor.NewService(repository, permissionService, config)
	handler := actor.NewHandler(actorService)
	return handler
}

func SetupWorkOrderHandler(db *gorm.DB, mc *memcache.Client) workorder.Handler {
	repository := workorder.NewRepository(db, mc)
	workOrderService := workorder.NewService(repository)
	handler := workorder.NewHandler(workOrderService)
	return handler
}

func SetupAuthService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, grants core.GrantService, config util.Config) core.AuthService {
	repository := actor.NewRepository(db, rdb, mc, config)
	permissionService := permission.NewService(grants, config)
	actorService := actor.NewService(repository, permissionService, config)
	workorderRepository := workorder.NewRepository(db, mc)
	workOrderService := workorder.NewService(workorderRepository)
	authService := auth.NewService(actorService, permissionService, workOrderService, config)
	return authService
}

// wire.go:

var grantServiceProvider = wire.NewSet(grant.NewService, grant.NewRepository)

var actorServiceProvider = wire.NewSet(actor.NewService, actor.NewRepository, permission.NewService)

var workorderServiceProvider = wire.NewSet(workorder.NewService, workorder.NewRepository)
