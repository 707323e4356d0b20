// Package polyline implements the encoded-polyline format used by the
// directions backend for route geometry. Values are signed lat/lng deltas
// at 1e-5 degree precision, zigzag-encoded into 5-bit chunks offset by 63
// into printable ASCII.
package polyline

import (
	"fmt"
	"math"

	"trip-planner/internal/domain"
)

const precision = 1e5

// Signals an encoded path that cannot be decoded.
type MalformedPathError struct {
	Offset int
	Reason string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed encoded path at byte %d: %s", e.Offset, e.Reason)
}

// Decode an overview path into drawable positions. The wire format stores
// lat before lng; returned Coordinates carry Lon first, matching the rest
// of the domain, so the axes are swapped here and nowhere else.
// An empty path is rejected: zero coordinates cannot be rendered.
func Decode(encoded string) ([]domain.Coordinates, error) {
	if encoded == "" {
		return nil, &MalformedPathError{Offset: 0, Reason: "empty path"}
	}

	var (
		points   []domain.Coordinates
		lat, lng int64
	)
	i := 0
	for i < len(encoded) {
		dLat, n, err := decodeValue(encoded, i)
		if err != nil {
			return nil, err
		}
		i += n

		if i >= len(encoded) {
			return nil, &MalformedPathError{Offset: i, Reason: "odd value count, missing longitude delta"}
		}
		dLng, n, err := decodeValue(encoded, i)
		if err != nil {
			return nil, err
		}
		i += n

		lat += dLat
		lng += dLng
		points = append(points, domain.Coordinates{
			Lon: float64(lng) / precision,
			Lat: float64(lat) / precision,
		})
	}
	return points, nil
}

// Read one zigzag-encoded value starting at off. Returns the signed delta
// and the number of bytes consumed.
func decodeValue(encoded string, off int) (int64, int, error) {
	var (
		result int64
		shift  uint
	)
	for i := off; i < len(encoded); i++ {
		b := int64(encoded[i]) - 63
		if b < 0 {
			return 0, 0, &MalformedPathError{Offset: i, Reason: fmt.Sprintf("invalid character %q", encoded[i])}
		}
		result |= (b & 0x1f) << shift
		if b < 0x20 {
			delta := result >> 1
			if result&1 != 0 {
				delta = ^delta
			}
			return delta, i - off + 1, nil
		}
		shift += 5
	}
	return 0, 0, &MalformedPathError{Offset: off, Reason: "truncated value"}
}

// Encode positions into the wire format. Decode(Encode(points)) matches
// the input to within half a unit of precision (5e-6 degrees).
func Encode(points []domain.Coordinates) string {
	var (
		out      []byte
		lat, lng int64
	)
	for _, p := range points {
		nextLat := int64(math.Round(p.Lat * precision))
		nextLng := int64(math.Round(p.Lon * precision))
		out = encodeValue(out, nextLat-lat)
		out = encodeValue(out, nextLng-lng)
		lat, lng = nextLat, nextLng
	}
	return string(out)
}

func encodeValue(dst []byte, v int64) []byte {
	u := v << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		dst = append(dst, byte((0x20|(u&0x1f))+63))
		u >>= 5
	}
	return append(dst, byte(u+63))
}
