package client

import (
	"time"

	"fusus-cli/pkg/models"
)

// lprChunk bounds each query window. The reads endpoint silently truncates
// results for larger windows, so chunking is a correctness requirement, not
// an optimization.
const lprChunk = 10 * time.Minute

const defaultSearchReason = "Automated Script"

// LPRFilters narrows a reads query. Empty fields are omitted.
type LPRFilters struct {
	Plate        string
	PlateState   string
	VehicleMake  string
	VehicleColor string
}

func (f LPRFilters) params() map[string]string {
	p := map[string]string{}
	if f.Plate != "" {
		p["plate"] = f.Plate
	}
	if f.PlateState != "" {
		p["plate_state"] = f.PlateState
	}
	if f.VehicleMake != "" {
		p["vehicle_make"] = f.VehicleMake
	}
	if f.VehicleColor != "" {
		p["vehicle_color"] = f.VehicleColor
	}
	return p
}

// FetchReads pulls every LPR read in [from, to), chunk by chunk. Records at
// chunk edges can be fetched twice; dedup is the CSV writer's job. Each
// page gets three attempts, after which it is skipped and pagination moves
// on (the short-export retry regime).
func (c *Client) FetchReads(from, to time.Time, filters LPRFilters, reason string) ([]models.LPRRead, error) {
	if reason == "" {
		reason = defaultSearchReason
	}

	opts := FetchOptions{
		SizeParam:         "size",
		PageSize:          100,
		Retries:           3,
		SkipPageOnExhaust: true,
	}

	var out []models.LPRRead
	for cur := from; cur.Before(to); {
		end := cur.Add(lprChunk)
		if end.After(to) {
			end = to
		}

		params := filters.params()
		params["search_reason"] = reason
		params["event_timestamp_from"] = cur.UTC().Format(time.RFC3339)
		params["event_timestamp_to"] = end.UTC().Format(time.RFC3339)
		params["ordering"] = "-event_timestamp"

		reads, err := fetchAllPages(c, "/api/reads/", params, opts, unwrapItems[models.LPRRead])
		out = append(out, reads...)
		if err != nil {
			return out, err
		}

		cur = end
	}
	return out, nil
}
