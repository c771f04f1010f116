package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/geodesic"
)

// a WGS-84 coordinate in degrees
type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// builds a point from optional coordinates; nil unless both are present
func NewPoint(lat, lon *float64) *Point {
	if lat == nil || lon == nil {
		return nil
	}

	return &Point{Lat: *lat, Lon: *lon}
}

// checks that latitude is in [-90,90] and longitude in [-180,180]
func (p Point) Valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lon) &&
		p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// ellipsoidal geodesic distance between two points in kilometres
func DistanceKM(a, b Point) float64 {
	var meters float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &meters, nil, nil)

	return meters / 1000
}

// rounds a distance to two decimal places
func RoundKM(km float64) float64 {
	return math.Round(km*100) / 100
}

// rounded distance between two optional points, nil when either is missing or out of range
func OptionalDistanceKM(a, b *Point) *float64 {
	if a == nil || b == nil || !a.Valid() || !b.Valid() {
		return nil
	}

	d := RoundKM(DistanceKM(*a, *b))

	return &d
}

// reports whether p lies within radiusKM of center
func WithinRadius(center, p Point, radiusKM float64) bool {
	return DistanceKM(center, p) <= radiusKM
}

// parses a "lat,lng" pair as sent in query strings
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid location %q: expected lat,lng", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	p := Point{Lat: lat, Lon: lon}
	if !p.Valid() {
		return Point{}, fmt.Errorf("location %q out of range", s)
	}

	return p, nil
}
