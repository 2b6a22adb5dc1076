package models

// Camera is a single entry from the /api/cameras/ listing.
type Camera struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Status    string       `json:"status"`
	IPAddress string       `json:"ip_address"`
	Location  *LocationRef `json:"location"`
}

// LocationRef is the embedded location object on a camera record.
type LocationRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LocationName is safe to call on a camera without a location.
func (c Camera) LocationName() string {
	if c.Location == nil {
		return ""
	}
	return c.Location.Name
}

// CoreCamera is a camera as returned by /api/service/camera/ (the cameras
// attached to a specific core). Note the camelCase keys; this endpoint
// family does not match /api/cameras/.
type CoreCamera struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsAiEnabled bool   `json:"isAiEnabled"`
}
