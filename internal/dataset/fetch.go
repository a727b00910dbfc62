package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"audit-insights-go/internal/logger"
)

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Fetch downloads the snapshot workbook to dest, retrying transient failures
// with exponential backoff. 4xx responses are permanent: a bad URL will not
// become good by retrying.
func Fetch(url, dest string) error {
	log := logger.New().WithField("component", "dataset.fetch").WithField("url", url)
	log.Info("downloading snapshot workbook")

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 60 * time.Second

	op := func() error {
		resp, err := httpClient.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: %s", resp.Status)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("request rejected: %s", resp.Status))
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, body, 0o644)
	}
	if err := backoff.Retry(op, bo); err != nil {
		return fmt.Errorf("fetch snapshot: %w", err)
	}
	log.WithField("dest", dest).Info("snapshot downloaded")
	return nil
}
