package domain

import "errors"

type Location struct {
	ID        int64
	Name      string
	Address1  string
	Address2  string
	City      string
	State     string
	ZipCode   string
	Latitude  float64
	Longitude float64
}

// Ref is the minimal location reference used by select inputs.
type Ref struct {
	ID   int64
	Name string
}

// Detail is the location page view-model. Address tells the template whether
// any street address line is present.
type Detail struct {
	Location
	Address bool
}

var ErrNotFound = errors.New("location not found")

func NewDetail(loc Location) Detail {
	return Detail{
		Location: loc,
		Address:  loc.Address1 != "" || loc.Address2 != "",
	}
}
