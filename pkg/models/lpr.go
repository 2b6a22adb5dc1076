package models

// LPRRead is a single license-plate-recognition event from the LPR API.
type LPRRead struct {
	Plate          string    `json:"plate"`
	PlateState     string    `json:"plate_state"`
	EventTimestamp string    `json:"event_timestamp"`
	VehicleMake    string    `json:"vehicle_make"`
	VehicleColor   string    `json:"vehicle_color"`
	CameraName     string    `json:"camera_name"`
	Geometry       *Geometry `json:"geometry"`
	Media          []Media   `json:"media"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type Media struct {
	URL string `json:"url"`
}

// ImageURL returns the first media URL, if any.
func (r LPRRead) ImageURL() string {
	if len(r.Media) == 0 {
		return ""
	}
	return r.Media[0].URL
}
