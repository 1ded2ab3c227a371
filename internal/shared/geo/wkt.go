package geo

import (
	"strconv"
	"strings"
)

// LineStringWKT encodes an ordered sequence of {lon, lat} pairs as a WKT
// LINESTRING. PostGIS expects longitude before latitude; callers must not
// swap the order. Fewer than two pairs produce no geometry.
func LineStringWKT(lonLat [][2]float64) string {
	if len(lonLat) < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString("LINESTRING(")
	for i, c := range lonLat {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(c[0], 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(c[1], 'f', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}
