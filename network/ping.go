package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Ping checks the server's HTTP liveness endpoint. address is the same
// host:port (or ws:// URL) used for the socket.
func Ping(ctx context.Context, client *http.Client, address string) (time.Duration, error) {
	if client == nil {
		client = http.DefaultClient
	}

	url := httpURL(address) + "/ping"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("ping: %w", err)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ping %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("ping %s: unexpected status %s", url, resp.Status)
	}
	return time.Since(start), nil
}

func httpURL(address string) string {
	switch {
	case strings.HasPrefix(address, "ws://"):
		return "http://" + strings.TrimPrefix(address, "ws://")
	case strings.HasPrefix(address, "wss://"):
		return "https://" + strings.TrimPrefix(address, "wss://")
	case strings.HasPrefix(address, "http://"), strings.HasPrefix(address, "https://"):
		return strings.TrimSuffix(address, "/")
	}
	return "http://" + address
}
