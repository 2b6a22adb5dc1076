// Package report turns fetched records into operator-facing output: CSV
// exports and the offline-core email draft.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"fusus-cli/pkg/models"
)

var cameraHeader = []string{"Camera Name", "Status", "ID", "IP Address", "Location"}

// WriteCameraCSV streams the shared-camera export.
func WriteCameraCSV(w io.Writer, cams []models.Camera) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cameraHeader); err != nil {
		return err
	}
	for _, cam := range cams {
		row := []string{
			cam.Name,
			cam.Status,
			strconv.FormatInt(cam.ID, 10),
			orNA(cam.IPAddress),
			cam.LocationName(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var lprHeader = []string{"Plate", "Plate State", "Timestamp", "Vehicle Make", "Vehicle Color", "Camera Name", "Coordinates", "Image URL"}

// WriteLPRCSV streams the LPR export, deduplicating on the composite
// (plate, timestamp, camera) key: chunked fetching can return the same read
// twice at window edges. The first occurrence wins. Returns the number of
// data rows written.
func WriteLPRCSV(w io.Writer, reads []models.LPRRead) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(lprHeader); err != nil {
		return 0, err
	}

	type readKey struct {
		plate, timestamp, camera string
	}
	seen := make(map[readKey]bool)
	rows := 0

	for _, r := range reads {
		key := readKey{r.Plate, r.EventTimestamp, r.CameraName}
		if seen[key] {
			continue
		}
		seen[key] = true

		row := []string{
			r.Plate,
			r.PlateState,
			r.EventTimestamp,
			r.VehicleMake,
			r.VehicleColor,
			r.CameraName,
			formatCoordinates(r.Geometry),
			r.ImageURL(),
		}
		if err := cw.Write(row); err != nil {
			return rows, err
		}
		rows++
	}
	cw.Flush()
	return rows, cw.Error()
}

func formatCoordinates(g *models.Geometry) string {
	if g == nil || len(g.Coordinates) == 0 {
		return ""
	}
	parts := make([]string, len(g.Coordinates))
	for i, c := range g.Coordinates {
		parts[i] = strconv.FormatFloat(c, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
