package client

import (
	"time"

	"fusus-cli/pkg/models"
)

// FetchSharedCameras retrieves every camera shared with the operator's
// organization, ordered by name. This is the long-running export: retries
// are unbounded, 404 marks the end of pages.
func (c *Client) FetchSharedCameras() ([]models.Camera, error) {
	return c.fetchSharedCameras(FetchOptions{
		SizeParam: "pageSize",
		PageSize:  20,
		Retries:   -1,
		EndOn404:  true,
	})
}

// FetchSharedCamerasBounded is the same walk with a capped retry budget and
// backoff, for callers on a deadline. The exporter scrapes with this so a
// vendor outage fails the scrape instead of wedging it.
func (c *Client) FetchSharedCamerasBounded(retries int, backoff time.Duration) ([]models.Camera, error) {
	return c.fetchSharedCameras(FetchOptions{
		SizeParam: "pageSize",
		PageSize:  20,
		Retries:   retries,
		Backoff:   backoff,
		EndOn404:  true,
	})
}

func (c *Client) fetchSharedCameras(opts FetchOptions) ([]models.Camera, error) {
	params := map[string]string{
		"isOwned":  "false",
		"ordering": "name",
	}
	return fetchAllPages(c, "/api/cameras/", params, opts, unwrapResults[models.Camera])
}
