package riot

import (
	"context"
	"errors"
	"fmt"
)

// PlatformStatus is the subset of /lol/status/v4/platform-data the relay
// reads
type PlatformStatus struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Locales      []string      `json:"locales"`
	Maintenances []StatusEntry `json:"maintenances"`
	Incidents    []StatusEntry `json:"incidents"`
}

// StatusEntry is one maintenance or incident notice
type StatusEntry struct {
	ID                int    `json:"id"`
	MaintenanceStatus string `json:"maintenance_status,omitempty"`
	IncidentSeverity  string `json:"incident_severity,omitempty"`
}

// GetPlatformStatus fetches the platform's maintenance and incident notices
func (c *Client) GetPlatformStatus(ctx context.Context, region Region) (*PlatformStatus, error) {
	var status PlatformStatus
	if err := c.doRequest(ctx, string(region), "/lol/status/v4/platform-data", &status); err != nil {
		return nil, fmt.Errorf("failed to get platform status: %w", err)
	}
	return &status, nil
}

// CheckKey reports whether upstream accepts the client's key:
//   - (true, nil) if the key is valid
//   - (false, nil) if the key is rejected (401/403)
//   - (false, error) if validity is unknown (network failure, 5xx, 429)
func (c *Client) CheckKey(ctx context.Context, region Region) (bool, error) {
	_, err := c.GetPlatformStatus(ctx, region)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrForbidden):
		return false, nil
	}
	return false, err
}

// MaskKey shows only the prefix and suffix of a key for logs
func MaskKey(apiKey string) string {
	if len(apiKey) <= 12 {
		return "***"
	}
	return apiKey[:8] + "..." + apiKey[len(apiKey)-4:]
}
