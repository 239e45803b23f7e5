package upstream

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Placeholder substituted for absent text fields before records reach the
// filter pipeline.
const placeholder = "N/A"

// flexString tolerates fields the upstream serializes as either a JSON string
// or a number (e.g. site_status "1" vs 1).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexFloat tolerates numeric fields serialized as strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexInt tolerates integer fields serialized as strings or floats.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var ff flexFloat
	if err := ff.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = flexInt(ff)
	return nil
}

// textOr falls back to the dashboard placeholder for absent values.
func textOr(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// parseDate accepts the date encodings seen across upstream resources:
// RFC3339, date-only, and datetime without zone. Unparseable values map to
// the zero time, which any active range bound then excludes.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Meta is the optional server-side pagination block some upstream resources
// attach. It is decoded and surfaced but never used to page: the gateway
// filters and paginates client-side over the full collection.
type Meta struct {
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
