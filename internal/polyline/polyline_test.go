package polyline

import (
	"errors"
	"math"
	"testing"

	"trip-planner/internal/domain"
)

// Reference vector from the encoded-polyline format documentation:
// (38.5,-120.2) (40.7,-120.95) (43.252,-126.453) in lat,lng order.
const referenceEncoded = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

var referencePoints = []domain.Coordinates{
	{Lon: -120.2, Lat: 38.5},
	{Lon: -120.95, Lat: 40.7},
	{Lon: -126.453, Lat: 43.252},
}

func TestDecodeReferenceVector(t *testing.T) {
	got, err := Decode(referenceEncoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != len(referencePoints) {
		t.Fatalf("decoded %d points, want %d", len(got), len(referencePoints))
	}

	// verify the lat,lng wire order came out axis-swapped to lon,lat
	for i, want := range referencePoints {
		if math.Abs(got[i].Lon-want.Lon) > 1e-5 || math.Abs(got[i].Lat-want.Lat) > 1e-5 {
			t.Errorf("point %d = (%f, %f), want (%f, %f)", i, got[i].Lon, got[i].Lat, want.Lon, want.Lat)
		}
	}
}

func TestEncodeReferenceVector(t *testing.T) {
	got := Encode(referencePoints)
	if got != referenceEncoded {
		t.Errorf("Encode = %q, want %q", got, referenceEncoded)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]domain.Coordinates{
		{{Lon: 0, Lat: 0}},
		{{Lon: -0.00001, Lat: 0.00001}, {Lon: 0.00001, Lat: -0.00001}},
		{{Lon: 179.99999, Lat: 89.99999}, {Lon: -179.99999, Lat: -89.99999}},
		{{Lon: -112.074, Lat: 33.4484}, {Lon: -112.0740, Lat: 33.4484}, {Lon: -111.9400, Lat: 33.4255}},
	}

	for _, points := range cases {
		decoded, err := Decode(Encode(points))
		if err != nil {
			t.Fatalf("round trip of %v failed: %v", points, err)
		}
		if len(decoded) != len(points) {
			t.Fatalf("round trip of %v returned %d points", points, len(decoded))
		}
		for i := range points {
			if math.Abs(decoded[i].Lon-points[i].Lon) > 1e-5 || math.Abs(decoded[i].Lat-points[i].Lat) > 1e-5 {
				t.Errorf("round trip point %d = %v, want %v", i, decoded[i], points[i])
			}
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"odd value count", "_p~iF"},
		{"truncated value", "_p~iF~"},
		{"invalid character", "_p~iF ~ps|U"},
	}

	for _, tc := range cases {
		_, err := Decode(tc.encoded)
		if err == nil {
			t.Errorf("%s: Decode(%q) succeeded, want error", tc.name, tc.encoded)
			continue
		}

		var malformed *MalformedPathError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: error %v is not a MalformedPathError", tc.name, err)
		}
	}
}
