package wifiimport

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/cdmx-opendata/wifi-points-api/internal/wifi"
)

// The dataset marks missing values with the literal "NA" (case-sensitive)
// or an empty cell.
const sentinelNA = "NA"

func isMissing(v string) bool {
	return v == "" || v == sentinelNA
}

// RowError describes one rejected source row. The raw row rides along so
// the rejection log is actionable.
type RowError struct {
	Reason string
	Row    map[string]string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s (row: %v)", e.Reason, e.Row)
}

// ValidateRow turns one raw CSV row into a WifiPoint or rejects it.
//
// Coordinate policy is strict: a row whose latitude or longitude is
// missing, non-numeric, or outside [-90,90] / [-180,180] is rejected and
// never stored. Every persisted row therefore has usable coordinates. The
// "NA"/empty sentinel maps install date, colonia and alcaldía to nil.
func ValidateRow(raw map[string]string) (wifi.WifiPoint, *RowError) {
	lat, rerr := parseCoordinate(raw, "latitud", 90)
	if rerr != nil {
		return wifi.WifiPoint{}, rerr
	}
	lon, rerr := parseCoordinate(raw, "longitud", 180)
	if rerr != nil {
		return wifi.WifiPoint{}, rerr
	}

	point := wifi.WifiPoint{
		UUID:         uuid.New(),
		SourceID:     raw["id"],
		Program:      raw["programa"],
		InstallDate:  optional(raw["fecha_instalacion"]),
		Latitude:     &lat,
		Longitude:    &lon,
		Neighborhood: optional(raw["colonia"]),
		Borough:      optional(raw["alcaldia"]),
	}
	if point.Neighborhood != nil {
		point.NeighborhoodKey = wifi.FoldKey(*point.Neighborhood)
	}
	return point, nil
}

func parseCoordinate(raw map[string]string, col string, bound float64) (float64, *RowError) {
	v := raw[col]
	if isMissing(v) {
		return 0, &RowError{Reason: col + " is missing", Row: raw}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &RowError{Reason: fmt.Sprintf("%s is not numeric: %q", col, v), Row: raw}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < -bound || f > bound {
		return 0, &RowError{Reason: fmt.Sprintf("%s out of range: %q", col, v), Row: raw}
	}
	return f, nil
}

func optional(v string) *string {
	if isMissing(v) {
		return nil
	}
	return &v
}
