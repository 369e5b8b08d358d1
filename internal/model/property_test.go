package model

import (
	"encoding/json"
	"testing"
)

func TestPropertyTypeValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   PropertyType
		want bool
	}{
		{name: "house", in: PropertyHouse, want: true},
		{name: "condo", in: PropertyCondo, want: true},
		{name: "townhouse", in: PropertyTownhouse, want: true},
		{name: "multi-family", in: PropertyMultiFamily, want: true},
		{name: "empty", in: PropertyType(""), want: false},
		{name: "unknown", in: PropertyType("Castle"), want: false},
		{name: "wrong case", in: PropertyType("house"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.in.Valid(); got != tt.want {
				t.Errorf("PropertyType(%q).Valid() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParkingValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Parking
		want bool
	}{
		{name: "garage", in: ParkingGarage, want: true},
		{name: "carport", in: ParkingCarport, want: true},
		{name: "street", in: ParkingStreet, want: true},
		{name: "none", in: ParkingNone, want: true},
		{name: "empty", in: Parking(""), want: false},
		{name: "unknown", in: Parking("Valet"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.in.Valid(); got != tt.want {
				t.Errorf("Parking(%q).Valid() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		var d Date
		if err := json.Unmarshal([]byte(`"2024-03-15"`), &d); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got := d.String(); got != "2024-03-15" {
			t.Errorf("String() = %q, want %q", got, "2024-03-15")
		}

		out, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(out) != `"2024-03-15"` {
			t.Errorf("marshal = %s, want %q", out, `"2024-03-15"`)
		}
	})

	t.Run("empty string decodes to zero date", func(t *testing.T) {
		t.Parallel()

		var d Date
		if err := json.Unmarshal([]byte(`""`), &d); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("want zero date, got %v", d.Time)
		}
		if got := d.String(); got != "" {
			t.Errorf("String() = %q, want empty", got)
		}
	})

	t.Run("invalid date fails", func(t *testing.T) {
		t.Parallel()

		var d Date
		if err := json.Unmarshal([]byte(`"15/03/2024"`), &d); err == nil {
			t.Error("want error for malformed date, got nil")
		}
	})
}

func TestPropertyInfoAddress(t *testing.T) {
	t.Parallel()

	p := &PropertyInfo{
		Street:  "123 Main St",
		City:    "Austin",
		State:   "TX",
		ZipCode: "78701",
	}
	want := "123 Main St, Austin, TX 78701"
	if got := p.Address(); got != want {
		t.Errorf("Address() = %q, want %q", got, want)
	}
}
