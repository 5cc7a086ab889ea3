package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/imanhub/solat-server/internal/fetch"
	"github.com/imanhub/solat-server/internal/httpapi"
	"github.com/imanhub/solat-server/internal/zones"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, directory *zones.Directory, schedules fetch.Interface, loc *time.Location) {
	// CORS: the API is consumed by the mobile and web clients directly
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	httpapi.MountGroup(r, httpapi.GroupConfig{
		Prefix: "/api",
	},
		httpapi.ZonesModule(directory),
		httpapi.SolatModule(schedules, loc, nil),
	)
}
