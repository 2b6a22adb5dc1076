package models

import "encoding/json"

// User is a full account record from /api/users/. The update endpoint
// requires the complete object to be resent on PATCH, so every field the
// vendor returns is modeled here; fields we never inspect are carried as
// raw JSON to survive the round trip untouched.
type User struct {
	ID                 int64           `json:"id"`
	FirstName          string          `json:"firstName"`
	LastName           string          `json:"lastName"`
	Email              string          `json:"email"`
	IsActive           bool            `json:"isActive"`
	IsLocked           bool            `json:"isLocked"`
	MobilePhone        *string         `json:"mobilePhone"`
	Badge              *string         `json:"badge"`
	Title              *string         `json:"title"`
	OfficerInternalID  *string         `json:"officerInternalId"`
	Groups             json.RawMessage `json:"groups"`
	JwtRefreshExp      int64           `json:"jwtRefreshExp"`
	PasswordExpired    bool            `json:"passwordExpired"`
	PasswordAge        int             `json:"passwordAge"`
	PasswordDaysLeft   int             `json:"passwordDaysLeft"`
	IsVideoWallUser    bool            `json:"isVideoWallUser"`
	ExpirationDatetime *string         `json:"expirationDatetime"`
	IsShared           bool            `json:"isShared"`
	MfaEnabled         bool            `json:"mfaEnabled"`
	ShareInfo          json.RawMessage `json:"shareInfo"`
	Permissions        json.RawMessage `json:"permissions"`
	Roles              json.RawMessage `json:"roles"`
}

// FullName is used in operator-facing progress output.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
