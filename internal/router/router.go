// Package router assembles the gin engine: middleware chain, the flat
// resource routes, and the optional /hotels and /auth route families.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jeomhps/lodging-api/internal/auth"
	"github.com/Jeomhps/lodging-api/internal/config"
	"github.com/Jeomhps/lodging-api/internal/handlers/accommodations"
	authh "github.com/Jeomhps/lodging-api/internal/handlers/auth"
	"github.com/Jeomhps/lodging-api/internal/handlers/bookings"
	"github.com/Jeomhps/lodging-api/internal/handlers/docs"
	"github.com/Jeomhps/lodging-api/internal/handlers/rooms"
	"github.com/Jeomhps/lodging-api/internal/handlers/users"
	"github.com/Jeomhps/lodging-api/internal/httperr"
	"github.com/Jeomhps/lodging-api/internal/middleware"
	"github.com/Jeomhps/lodging-api/internal/store"
)

// Deps is what the router needs from main.
type Deps struct {
	Config config.Config
	Store  *store.Store
	Issuer *auth.Issuer
	Log    logrus.FieldLogger
}

func New(d Deps) (*gin.Engine, error) {
	docsH, err := docs.New()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(d.Log), middleware.Recovery(d.Log), middleware.Errors())
	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, httperr.RouteNotFound()) })

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/docs/openapi.yaml", docsH.YAML)
	r.GET("/docs/openapi.json", docsH.JSON)

	api := r.Group("/")
	api.Use(middleware.Authenticate(d.Issuer, d.Config.Auth.Mode != config.AuthBearer))
	if d.Config.Auth.Mode != config.AuthOff {
		policy, err := middleware.NewPolicy()
		if err != nil {
			return nil, err
		}
		api.Use(middleware.Authorize(policy))
	}

	accH := accommodations.New(d.Store.Accommodations, "/accommodations", "id")
	roomH := rooms.New(d.Store.Rooms)
	bookH := bookings.New(d.Store.Bookings)
	userH := users.New(d.Store.Users, d.Log)
	sessH := authh.New(d.Store.Users, d.Issuer, d.Log)

	api.GET("/accommodations", accH.List)
	api.POST("/accommodations", accH.Create)
	api.GET("/accommodations/:id", accH.Get)
	api.PATCH("/accommodations/:id", accH.Update)
	api.DELETE("/accommodations/:id", accH.Delete)

	api.GET("/rooms", roomH.List)
	api.POST("/rooms", roomH.Create)
	api.GET("/rooms/:id", roomH.Get)
	api.PATCH("/rooms/:id", roomH.Update)
	api.DELETE("/rooms/:id", roomH.Delete)

	api.GET("/bookings", bookH.List)
	api.POST("/bookings", bookH.Create)
	api.GET("/bookings/:id", bookH.Get)
	api.PATCH("/bookings/:id", bookH.Update)
	api.DELETE("/bookings/:id", bookH.Delete)

	api.GET("/users", userH.List)
	api.POST("/users", userH.Create)
	api.GET("/users/:id", userH.Get)
	api.PATCH("/users/:id", userH.Update)
	api.DELETE("/users/:id", userH.Delete)

	api.POST("/sessions", sessH.Login)
	api.DELETE("/sessions", sessH.Logout)

	if d.Config.Routes.Nested {
		hotelH := accommodations.New(d.Store.Accommodations, "/hotels", "hotelId")
		api.GET("/hotels", hotelH.List)
		api.GET("/hotels/:hotelId", hotelH.Get)

		api.GET("/hotels/:hotelId/rooms", roomH.List)
		api.POST("/hotels/:hotelId/rooms", roomH.Create)
		api.GET("/hotels/:hotelId/rooms/:roomId", roomH.Get)
		api.PATCH("/hotels/:hotelId/rooms/:roomId", roomH.Update)
		api.DELETE("/hotels/:hotelId/rooms/:roomId", roomH.Delete)
	}

	if d.Config.Routes.AuthAliases {
		api.POST("/auth/register", userH.Create)
		api.POST("/auth/login", sessH.Login)
		api.GET("/auth/me", sessH.Me)
	}
	return r, nil
}
