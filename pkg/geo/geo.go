// Package geo provides single-shot location fixes.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hatchdotlol/geosignup/pkg/models"
)

// Provider yields one fix per call. It never subscribes to updates.
type Provider interface {
	CurrentPosition(ctx context.Context) (models.LocationFix, error)
}

// Reported is a fix, or a provider error, that the device already obtained
// and sent along with its request.
type Reported struct {
	Fix models.LocationFix
	Err error
}

func (p Reported) CurrentPosition(ctx context.Context) (models.LocationFix, error) {
	if p.Err != nil {
		return models.LocationFix{}, p.Err
	}
	return p.Fix, nil
}

// FromReport turns a device report into a provider. ok is false when the
// report carries neither a full fix nor an error.
func FromReport(r models.ReportedLocation) (Reported, bool) {
	if r.Error != "" {
		return Reported{Err: errors.New(r.Error)}, true
	}
	if r.Latitude == nil || r.Longitude == nil {
		return Reported{}, false
	}
	return Reported{Fix: models.LocationFix{Latitude: *r.Latitude, Longitude: *r.Longitude}}, true
}

type Static struct {
	Fix models.LocationFix
}

func (p Static) CurrentPosition(ctx context.Context) (models.LocationFix, error) {
	return p.Fix, nil
}

var DefaultClient = &http.Client{
	Timeout: 10 * time.Second,
}

// IPLookup asks an ip-api.com style JSON endpoint where IP is.
type IPLookup struct {
	Endpoint string
	IP       string
	Client   *http.Client
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (p IPLookup) CurrentPosition(ctx context.Context) (models.LocationFix, error) {
	client := p.Client
	if client == nil {
		client = DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.Endpoint+p.IP, nil)
	if err != nil {
		return models.LocationFix{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return models.LocationFix{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.LocationFix{}, fmt.Errorf("location lookup failed: %s", resp.Status)
	}

	var body ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.LocationFix{}, err
	}

	if body.Status != "success" {
		if body.Message == "" {
			body.Message = body.Status
		}
		return models.LocationFix{}, fmt.Errorf("location lookup failed: %s", body.Message)
	}

	return models.LocationFix{Latitude: body.Lat, Longitude: body.Lon}, nil
}
