package models

// Contact is a point-of-contact resolved from the vendor side (location
// contact fields). Empty fields render as "N/A" in reports.
type Contact struct {
	Name  string
	Email string
	Phone string
}
