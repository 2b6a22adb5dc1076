package models

// Appliance is a FususCore record from /api/service/camera-appliances/.
type Appliance struct {
	ID                    int64           `json:"id"`
	Serial                string          `json:"serial"`
	Status                string          `json:"status"`
	BaseType              *BaseType       `json:"baseType"`
	SupportedAiDetections []DetectionType `json:"supportedAiDetections"`
}

type BaseType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DetectionType is one AI detection capability advertised by a core.
type DetectionType struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	AllowedLabels []string `json:"allowedLabels"`
}

// AISettings is the detection configuration applied to a camera. The PATCH
// that carries it is a full replace, not a merge.
type AISettings struct {
	ID               int64    `json:"id"`
	Type             string   `json:"type"`
	Confidence       int      `json:"confidence"`
	DetectionTimeout int      `json:"detectionTimeout"`
	Labels           []string `json:"labels"`
	ROI              []string `json:"roi"`
	Schedules        []string `json:"schedules"`
}

// AIConfigPayload is the replacement AI configuration sent to
// PATCH /api/service/camera/<id>/.
type AIConfigPayload struct {
	IsAiEnabled        bool         `json:"isAiEnabled"`
	AiDetectionTypes   []AISettings `json:"aiDetectionTypes"`
	AiFrameTimeout     int          `json:"aiFrameTimeout"`
	AiImageCompression int          `json:"aiImageCompression"`
	AiPullCamera       bool         `json:"aiPullCamera"`
	AiStreamType       int          `json:"aiStreamType"`
}
