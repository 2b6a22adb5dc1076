package models

import "encoding/json"

// BalenaDevice is a device record from the Balena cloud API (OData style,
// wrapped in a "d" array).
type BalenaDevice struct {
	ID                    int64  `json:"id"`
	DeviceName            string `json:"device_name"`
	IsOnline              bool   `json:"is_online"`
	LastConnectivityEvent string `json:"last_connectivity_event"`
	OverallStatus         string `json:"overall_status"`
}

// BalenaServiceInstall links a device to its installed services. The
// expanded installs__service field is a single object on some fleet types
// and an array on others, so it is parsed lazily.
type BalenaServiceInstall struct {
	InstallsService json.RawMessage `json:"installs__service"`
}

// ServiceIDs handles both shapes of installs__service.
func (s BalenaServiceInstall) ServiceIDs() []int64 {
	if len(s.InstallsService) == 0 {
		return nil
	}
	var one struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(s.InstallsService, &one); err == nil && one.ID != 0 {
		return []int64{one.ID}
	}
	var many []struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(s.InstallsService, &many); err != nil {
		return nil
	}
	ids := make([]int64, 0, len(many))
	for _, svc := range many {
		ids = append(ids, svc.ID)
	}
	return ids
}

// BalenaEnvVar is a service environment variable record.
type BalenaEnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
