package client

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"fusus-cli/pkg/models"
)

// BalenaClient talks to the Balena cloud API, the second, independent
// source of core connectivity used by the health report. Balena uses a
// plain Bearer token with no refresh cycle.
type BalenaClient struct {
	HTTP *resty.Client
}

// NewBalena builds a client for the Balena API.
func NewBalena(baseURL, apiToken string) *BalenaClient {
	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetTimeout(defaultTimeout)
	r.SetAuthToken(apiToken)
	r.SetHeader("Accept", "application/json")

	return &BalenaClient{HTTP: r}
}

// OData responses wrap everything in a "d" array.
type balenaPage[T any] struct {
	D []T `json:"d"`
}

// DeviceStatus looks a device up by its name (the core serial). A device
// missing from the fleet returns nil, which the health check treats as
// offline, the same way the fleet dashboard reports it.
func (b *BalenaClient) DeviceStatus(name string) (*models.BalenaDevice, error) {
	var respData balenaPage[models.BalenaDevice]

	resp, err := b.HTTP.R().
		SetQueryParam("$filter", fmt.Sprintf("device_name eq '%s'", name)).
		SetQueryParam("$select", "device_name,id,is_online,last_connectivity_event,overall_status").
		SetResult(&respData).
		Get("/v7/device")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	if len(respData.D) == 0 {
		return nil, nil
	}
	return &respData.D[0], nil
}

// DeviceServiceIDs lists the services installed on a device.
func (b *BalenaClient) DeviceServiceIDs(deviceID int64) ([]int64, error) {
	var respData balenaPage[models.BalenaServiceInstall]

	resp, err := b.HTTP.R().
		SetQueryParam("$filter", fmt.Sprintf("device eq %d", deviceID)).
		SetQueryParam("$expand", "installs__service").
		SetResult(&respData).
		Get("/v6/service_install")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}

	var ids []int64
	for _, install := range respData.D {
		ids = append(ids, install.ServiceIDs()...)
	}
	return ids, nil
}

// ServiceEnvVars merges the environment variables of the given services
// into one map. Later services overwrite earlier ones on key collision.
func (b *BalenaClient) ServiceEnvVars(serviceIDs []int64) (map[string]string, error) {
	vars := make(map[string]string)
	for _, sid := range serviceIDs {
		var respData balenaPage[models.BalenaEnvVar]

		resp, err := b.HTTP.R().
			SetQueryParam("$filter", fmt.Sprintf("service eq %d", sid)).
			SetResult(&respData).
			Get("/v6/service_environment_variable")
		if err != nil {
			return vars, err
		}
		if resp.IsError() {
			return vars, apiErr(resp)
		}
		for _, v := range respData.D {
			vars[v.Name] = v.Value
		}
	}
	return vars, nil
}

// FormatBalenaTime renders a connectivity timestamp for operator output.
func FormatBalenaTime(ts string) string {
	if ts == "" {
		return "N/A"
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format("Jan 02, 03:04 PM") + " UTC"
}
