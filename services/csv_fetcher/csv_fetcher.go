package csvfetcher

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
)

// FetchCSV downloads a CSV document and returns its body.
// The caller must close the returned reader.
func FetchCSV(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status fetching %s: %s", url, resp.Status)
	}

	log.Printf("Fetched launch data from %s", url)
	return resp.Body, nil
}
