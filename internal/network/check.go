package network

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DashboardURL returns the roboRIO web dashboard URL for an address.
func DashboardURL(address string) string {
	return fmt.Sprintf("http://%s/", address)
}

// CheckDashboard verifies the roboRIO web server answers at url
func CheckDashboard(ctx context.Context, url string) error {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("dashboard at %s is not reachable: %w", url, err)
	}
	defer resp.Body.Close()

	// Any response means the web server is up, even a redirect to the login page
	return nil
}
