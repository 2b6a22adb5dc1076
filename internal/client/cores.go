package client

import (
	"fmt"
	"net/http"
	"time"

	"fusus-cli/pkg/models"
)

// Base type category codes that mark a core as AI-capable.
var aiBaseTypes = map[int]bool{4: true, 8: true}

type applianceSearchResponse struct {
	Results []models.Appliance `json:"results"`
}

// LookupCore searches the appliance directory by serial. An unknown serial
// returns nil, not an error.
func (c *Client) LookupCore(coreID string) (*models.Appliance, error) {
	var respData applianceSearchResponse

	resp, err := c.HTTP.R().
		SetQueryParam("search", coreID).
		SetResult(&respData).
		Get("/api/service/camera-appliances/")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	if len(respData.Results) == 0 {
		return nil, nil
	}
	return &respData.Results[0], nil
}

// CoreAI reports whether a core is AI-capable and which detection types it
// supports. An unknown serial simply is not AI-capable.
func (c *Client) CoreAI(coreID string) (bool, []models.DetectionType, error) {
	app, err := c.LookupCore(coreID)
	if err != nil || app == nil {
		return false, nil, err
	}
	isAI := app.BaseType != nil && aiBaseTypes[app.BaseType.ID]
	return isAI, app.SupportedAiDetections, nil
}

// CoreStatus returns the vendor-reported connectivity status for a core,
// "Unknown" when the serial is not in the directory.
func (c *Client) CoreStatus(coreID string) (string, error) {
	app, err := c.LookupCore(coreID)
	if err != nil {
		return "", err
	}
	if app == nil || app.Status == "" {
		return "Unknown", nil
	}
	return app.Status, nil
}

// FetchAppliancesBounded walks the whole appliance directory with a capped
// retry budget and backoff, for callers on a deadline. The exporter feeds
// its core status counts from this.
func (c *Client) FetchAppliancesBounded(retries int, backoff time.Duration) ([]models.Appliance, error) {
	opts := FetchOptions{
		SizeParam: "page_size",
		PageSize:  100,
		Retries:   retries,
		Backoff:   backoff,
		EndOn404:  true,
	}
	return fetchAllPages(c, "/api/service/camera-appliances/", nil, opts, unwrapResults[models.Appliance])
}

type coreCameraListResponse struct {
	Results []models.CoreCamera `json:"results"`
}

// CoreCameras lists the cameras attached to a core. A single call; cores
// top out well under the 60-camera page.
func (c *Client) CoreCameras(coreID string) ([]models.CoreCamera, error) {
	var respData coreCameraListResponse

	resp, err := c.HTTP.R().
		SetQueryParam("appliance_sn__icontains", coreID).
		SetQueryParam("page_size", "60").
		SetResult(&respData).
		Get("/api/service/camera/")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return respData.Results, nil
}

// DefaultAISettings builds the standard configuration for a detection type:
// confidence 50, detection timeout 100, empty region of interest.
func DefaultAISettings(det models.DetectionType, labels, schedules []string) models.AISettings {
	if labels == nil {
		labels = []string{}
	}
	return models.AISettings{
		ID:               det.ID,
		Type:             det.Type,
		Confidence:       50,
		DetectionTimeout: 100,
		Labels:           labels,
		ROI:              []string{},
		Schedules:        schedules,
	}
}

// EnableAI replaces the camera's AI configuration. The PATCH is a full
// replace, not a merge, so the payload carries every field the platform
// expects. Configuration writes are not retried: on HTTP error the response
// body is surfaced for diagnosis and the caller moves to the next camera.
func (c *Client) EnableAI(cameraID int64, settings models.AISettings) error {
	payload := models.AIConfigPayload{
		IsAiEnabled:        true,
		AiDetectionTypes:   []models.AISettings{settings},
		AiFrameTimeout:     500,
		AiImageCompression: 40,
		AiPullCamera:       false,
		AiStreamType:       0,
	}

	resp, err := c.HTTP.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Patch(fmt.Sprintf("/api/service/camera/%d/", cameraID))
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("camera %d: %w", cameraID, ErrNotFound)
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}
