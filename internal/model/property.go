package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PropertyType represents the physical category of a property.
//
// Design decision: We use a typed string rather than iota constants because
// the value arrives verbatim in the analysis service's JSON and is rendered
// verbatim in every artifact. A typed string keeps serialization trivial
// while still giving us a Valid() check after decoding.
type PropertyType string

const (
	// PropertyHouse is a single-family detached house.
	PropertyHouse PropertyType = "House"

	// PropertyCondo is a condominium unit.
	PropertyCondo PropertyType = "Condo"

	// PropertyTownhouse is an attached townhouse.
	PropertyTownhouse PropertyType = "Townhouse"

	// PropertyMultiFamily is a multi-family building (duplex and up).
	PropertyMultiFamily PropertyType = "Multi-family"
)

// Valid reports whether the property type is one of the known categories.
func (p PropertyType) Valid() bool {
	switch p {
	case PropertyHouse, PropertyCondo, PropertyTownhouse, PropertyMultiFamily:
		return true
	default:
		return false
	}
}

// String returns the display form of the property type.
func (p PropertyType) String() string { return string(p) }

// Parking represents the parking arrangement of a property.
type Parking string

const (
	// ParkingGarage is an attached or detached garage.
	ParkingGarage Parking = "Garage"

	// ParkingCarport is a covered carport.
	ParkingCarport Parking = "Carport"

	// ParkingStreet is street parking only.
	ParkingStreet Parking = "Street"

	// ParkingNone means no dedicated parking.
	ParkingNone Parking = "None"
)

// Valid reports whether the parking value is one of the known arrangements.
func (p Parking) Valid() bool {
	switch p {
	case ParkingGarage, ParkingCarport, ParkingStreet, ParkingNone:
		return true
	default:
		return false
	}
}

// String returns the display form of the parking arrangement.
func (p Parking) String() string { return string(p) }

// Date is a calendar date without a time component.
// The analysis service transmits dates as "YYYY-MM-DD" strings.
//
// Design decision: We wrap time.Time rather than keeping the raw string so
// that validation (e.g. "purchase date not in the future") happens once at
// decode time instead of at every render site.
type Date struct {
	time.Time
}

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string into a Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(dateLayout))
}

// String returns the date in "YYYY-MM-DD" form, or empty for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// PropertyInfo is the immutable physical snapshot of the analyzed property.
// It is captured once when a report is generated and never mutated afterward.
type PropertyInfo struct {
	// Street is the street address line.
	Street string `json:"street"`

	// City is the city name.
	City string `json:"city"`

	// State is the two-letter state abbreviation.
	State string `json:"state"`

	// ZipCode is the postal code.
	ZipCode string `json:"zip_code"`

	// PropertyType categorizes the building (House, Condo, ...).
	PropertyType PropertyType `json:"property_type"`

	// YearBuilt is the construction year.
	YearBuilt int `json:"year_built"`

	// Sqft is the finished square footage. Always positive.
	Sqft int `json:"sqft"`

	// LotSize is the lot size in acres.
	LotSize float64 `json:"lot_size"`

	// Parking describes the parking arrangement.
	Parking Parking `json:"parking"`

	// TotalBeds is the bedroom count. Non-negative.
	TotalBeds float64 `json:"total_beds"`

	// TotalBaths is the bathroom count. Half baths make this fractional.
	TotalBaths float64 `json:"total_baths"`
}

// Address returns the single-line postal address used in report headers.
func (p *PropertyInfo) Address() string {
	parts := []string{p.Street, p.City, strings.TrimSpace(p.State + " " + p.ZipCode)}
	return strings.Join(parts, ", ")
}

// PurchaseInfo holds the acquisition terms of the property.
type PurchaseInfo struct {
	// PurchasePrice is the contract price. Non-negative currency.
	PurchasePrice float64 `json:"purchase_price"`

	// ClosingCost is the total cost to close. Non-negative currency.
	ClosingCost float64 `json:"closing_cost"`

	// InitialImprovements is the rehab budget applied at purchase.
	InitialImprovements float64 `json:"initial_improvements"`

	// RentMonthly is the contracted gross monthly rent.
	RentMonthly float64 `json:"rent_monthly"`

	// PurchaseDate is the closing date. Never in the future.
	PurchaseDate Date `json:"purchase_date"`
}

// LoanInfo holds the financing terms of the purchase.
type LoanInfo struct {
	// PercentDown is the down payment percentage in the 0-100 range.
	PercentDown float64 `json:"percent_down"`

	// InterestRate is the annual interest rate in the 0-100 range.
	InterestRate float64 `json:"interest_rate"`

	// LoanTermYears is the amortization term. Positive.
	LoanTermYears int `json:"loan_term_years"`

	// InterestOnly is true for interest-only loans.
	InterestOnly bool `json:"interest_only"`
}
