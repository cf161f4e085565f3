package wifi

import (
	"math"
	"sort"
)

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// latitude/longitude pairs given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// NearestPoints ranks points by distance from (lat, lon) and returns up to
// k of them, nearest first. Points missing either coordinate are skipped;
// under strict import validation there are none, but the filter holds no
// matter how the table was populated. Equal distances keep input order.
//
// Full scan plus sort over every usable point. Fine at this dataset's
// scale (a few thousand rows); a spatial index is deliberately out of
// scope here.
func NearestPoints(points []WifiPoint, lat, lon float64, k int) []WifiPoint {
	type ranked struct {
		point WifiPoint
		km    float64
	}

	usable := make([]ranked, 0, len(points))
	for _, p := range points {
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}
		usable = append(usable, ranked{p, Haversine(lat, lon, *p.Latitude, *p.Longitude)})
	}

	sort.SliceStable(usable, func(i, j int) bool { return usable[i].km < usable[j].km })

	if k < 0 {
		k = 0
	}
	if k > len(usable) {
		k = len(usable)
	}
	out := make([]WifiPoint, 0, k)
	for _, r := range usable[:k] {
		out = append(out, r.point)
	}
	return out
}
