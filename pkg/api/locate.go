package api

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/hatchdotlol/geosignup/pkg/geo"
	"github.com/hatchdotlol/geosignup/pkg/models"
	"github.com/hatchdotlol/geosignup/pkg/util"
)

// ConfiguredLocator returns the server-side provider named by the config.
func ConfiguredLocator() func(r *http.Request) geo.Provider {
	cfg := util.Config.Geo

	switch cfg.Provider {
	case "ip":
		return func(r *http.Request) geo.Provider {
			return geo.IPLookup{Endpoint: cfg.Endpoint, IP: clientIP(r)}
		}
	case "static":
	default:
		slog.Warn("Unknown GEO_PROVIDER, using static fix", "provider", cfg.Provider)
	}

	fix := geo.Static{Fix: models.LocationFix{Latitude: cfg.StaticLat, Longitude: cfg.StaticLon}}
	return func(r *http.Request) geo.Provider {
		return fix
	}
}

// RemoteAddr has already been rewritten by middleware.RealIP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
