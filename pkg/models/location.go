package models

// Location is a record from /api/locations/ or /api/service/locations/.
type Location struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Organization *OrgRef `json:"organization"`
	ContactName  string  `json:"contactName"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone string  `json:"contactPhone"`
}

type OrgRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrgName is safe to call on a location without an organization.
func (l Location) OrgName() string {
	if l.Organization == nil {
		return ""
	}
	return l.Organization.Name
}

// Organization is a record from the org lookup endpoints.
type Organization struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SharePermissions are the access options granted when sharing a location
// with another organization.
type SharePermissions struct {
	ViewLiveVideo    bool
	ViewPlayback     bool
	EnablePtzControl bool
	IsAdminOnly      bool
}

// SharePayload is the body of POST /api/locations/<id>/shares/.
type SharePayload struct {
	TargetOrganization int64                  `json:"target_organization"`
	Permissions        string                 `json:"permissions"`
	IsAdminOnly        bool                   `json:"isAdminOnly"`
	PermissionsDetails SharePermissionDetails `json:"permissionsDetails"`
}

type SharePermissionDetails struct {
	ViewLiveVideo    bool `json:"viewLiveVideo"`
	ViewPlayback     bool `json:"viewPlayback"`
	EnablePtzControl bool `json:"enablePtzControl"`
}
