package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imanhub/solat-server/internal/geo"
	"github.com/imanhub/solat-server/internal/zones"
)

// ZonesModule serves the zone directory and coordinate resolution.
func ZonesModule(dir *zones.Directory) Module {
	return ModuleFunc(func(c *Controller) {
		c.Group.GET("/zones", listZones(dir))
		c.Group.GET("/zones/nearest", nearestZone(dir))
		c.Group.GET("/zones/:code", getZone(dir))
		c.Group.POST("/zones/reload", reloadZones(dir))
	})
}

func listZones(dir *zones.Directory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"zones": dir.List()})
	}
}

func getZone(dir *zones.Directory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		z, err := dir.Lookup(ctx.Param("code"))
		if err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown zone code"})
			return
		}
		ctx.JSON(http.StatusOK, z)
	}
}

// reloadZones forces a re-read of the zone source, e.g. after the table has
// been edited. A source failure leaves the directory on its fallback set.
func reloadZones(dir *zones.Directory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := dir.Load(); err != nil {
			ctx.JSON(http.StatusOK, gin.H{
				"reloaded": false,
				"detail":   "zone source unavailable, serving builtin fallback set",
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"reloaded": true, "count": len(dir.List())})
	}
}

func nearestZone(dir *zones.Directory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lat, err := strconv.ParseFloat(ctx.Query("lat"), 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
			return
		}
		lng, err := strconv.ParseFloat(ctx.Query("lng"), 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "lng must be a number"})
			return
		}
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}

		code := geo.Nearest(lat, lng)
		resp := gin.H{"code": code}
		// the matcher table and the directory can drift; the code alone is
		// still a valid answer
		if z, err := dir.Lookup(code); err == nil {
			resp["zone"] = z
		} else if !errors.Is(err, zones.ErrNotFound) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "zone lookup failed"})
			return
		}
		ctx.JSON(http.StatusOK, resp)
	}
}
