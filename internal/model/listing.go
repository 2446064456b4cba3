package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ListingType classifies the permitted use of a plot.
type ListingType string

const (
	TypeResidential  ListingType = "residential"
	TypeCommercial   ListingType = "commercial"
	TypeAgricultural ListingType = "agricultural"
)

// Valid reports whether t is one of the known plot types.
func (t ListingType) Valid() bool {
	switch t {
	case TypeResidential, TypeCommercial, TypeAgricultural:
		return true
	}
	return false
}

// Availability is the sale state of a listing.  Only available listings
// show up in the public browse view.
type Availability string

const (
	Available Availability = "available"
	Sold      Availability = "sold"
	Pending   Availability = "pending"
)

// Valid reports whether a is one of the known availability states.
func (a Availability) Valid() bool {
	switch a {
	case Available, Sold, Pending:
		return true
	}
	return false
}

// Listing represents a land plot offered for sale.  The owner fields are a
// snapshot of the creating identity taken when the listing was added and
// are never re-synced with the identity afterwards.
//
// Fields:
//  ID           – opaque identifier assigned by the store; immutable.
//  Title        – headline shown in the browse view.
//  Location     – free-text locality.
//  Price        – asking price, always > 0.
//  PlotSize     – free-text size ("2400 sq ft", "2 acres").
//  Type         – residential, commercial or agricultural.
//  Availability – available, sold or pending.
//  Description  – long description.
//  Images       – ordered image URLs; the first one is the cover.
//  Features     – ordered free-text highlights; may be empty.
//  OwnerID      – identity id of the creator.
//  OwnerName    – creator name at creation time.
//  OwnerPhone   – creator phone at creation time.
//  OwnerEmail   – creator email at creation time.
//  CreatedAt    – creation timestamp; the recency sort key.
type Listing struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Location     string       `json:"location"`
	Price        float64      `json:"price"`
	PlotSize     string       `json:"plotSize"`
	Type         ListingType  `json:"type"`
	Availability Availability `json:"availability"`
	Description  string       `json:"description"`
	Images       []string     `json:"images"`
	Features     []string     `json:"features"`
	OwnerID      string       `json:"ownerId"`
	OwnerName    string       `json:"ownerName"`
	OwnerPhone   string       `json:"ownerPhone"`
	OwnerEmail   string       `json:"ownerEmail"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Clone returns a deep copy so callers can never alias the store's slices.
func (l Listing) Clone() Listing {
	l.Images = cloneStrings(l.Images)
	l.Features = cloneStrings(l.Features)
	return l
}

// ListingFields is everything a caller supplies when adding a listing.
// ID and CreatedAt are assigned by the store.
type ListingFields struct {
	Title        string
	Location     string
	Price        float64
	PlotSize     string
	Type         ListingType
	Availability Availability
	Description  string
	Images       []string
	Features     []string
	OwnerID      string
	OwnerName    string
	OwnerPhone   string
	OwnerEmail   string
}

// WithOwner copies the identity snapshot into the owner fields.
func (f ListingFields) WithOwner(id Identity) ListingFields {
	f.OwnerID = id.ID
	f.OwnerName = id.Name
	f.OwnerPhone = id.Phone
	f.OwnerEmail = id.Email
	return f
}

// Normalize trims text fields and drops blank image and feature entries.
func (f ListingFields) Normalize() ListingFields {
	f.Title = strings.TrimSpace(f.Title)
	f.Location = strings.TrimSpace(f.Location)
	f.PlotSize = strings.TrimSpace(f.PlotSize)
	f.Description = strings.TrimSpace(f.Description)
	f.Images = compact(f.Images)
	f.Features = compact(f.Features)
	return f
}

// ErrInvalidListing wraps every field validation failure.
var ErrInvalidListing = errors.New("invalid listing")

// Validate applies the add-listing form rules.  It does not normalize;
// call Normalize first when the input comes straight from a client.
func (f ListingFields) Validate() error {
	switch {
	case strings.TrimSpace(f.Title) == "":
		return fieldErr("title", "is required")
	case strings.TrimSpace(f.Location) == "":
		return fieldErr("location", "is required")
	case strings.TrimSpace(f.PlotSize) == "":
		return fieldErr("plotSize", "is required")
	case strings.TrimSpace(f.Description) == "":
		return fieldErr("description", "is required")
	case !(f.Price > 0):
		return fieldErr("price", "must be a positive amount")
	case !f.Type.Valid():
		return fieldErr("type", "is not a known plot type")
	case !f.Availability.Valid():
		return fieldErr("availability", "is not a known availability")
	case !hasNonBlank(f.Images):
		return fieldErr("images", "needs at least one image URL")
	}
	return nil
}

// ListingPatch carries a partial update.  A nil field is left untouched.
// ID, OwnerID and CreatedAt have no counterpart here, so an update can
// never change them.
type ListingPatch struct {
	Title        *string       `json:"title,omitempty"`
	Location     *string       `json:"location,omitempty"`
	Price        *float64      `json:"price,omitempty"`
	PlotSize     *string       `json:"plotSize,omitempty"`
	Type         *ListingType  `json:"type,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Images       *[]string     `json:"images,omitempty"`
	Features     *[]string     `json:"features,omitempty"`
	OwnerName    *string       `json:"ownerName,omitempty"`
	OwnerPhone   *string       `json:"ownerPhone,omitempty"`
	OwnerEmail   *string       `json:"ownerEmail,omitempty"`
}

// Validate checks every set field on its own.
func (p ListingPatch) Validate() error {
	texts := []struct {
		name string
		v    *string
	}{
		{"title", p.Title},
		{"location", p.Location},
		{"plotSize", p.PlotSize},
		{"description", p.Description},
	}
	for _, t := range texts {
		if t.v != nil && strings.TrimSpace(*t.v) == "" {
			return fieldErr(t.name, "cannot be blank")
		}
	}
	if p.Price != nil && !(*p.Price > 0) {
		return fieldErr("price", "must be a positive amount")
	}
	if p.Type != nil && !p.Type.Valid() {
		return fieldErr("type", "is not a known plot type")
	}
	if p.Availability != nil && !p.Availability.Valid() {
		return fieldErr("availability", "is not a known availability")
	}
	if p.Images != nil && !hasNonBlank(*p.Images) {
		return fieldErr("images", "needs at least one image URL")
	}
	return nil
}

// Apply merges the set fields of p onto l and returns the result.
func (p ListingPatch) Apply(l Listing) Listing {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.PlotSize != nil {
		l.PlotSize = *p.PlotSize
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Availability != nil {
		l.Availability = *p.Availability
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Images != nil {
		l.Images = cloneStrings(*p.Images)
	}
	if p.Features != nil {
		l.Features = cloneStrings(*p.Features)
	}
	if p.OwnerName != nil {
		l.OwnerName = *p.OwnerName
	}
	if p.OwnerPhone != nil {
		l.OwnerPhone = *p.OwnerPhone
	}
	if p.OwnerEmail != nil {
		l.OwnerEmail = *p.OwnerEmail
	}
	return l
}

func fieldErr(field, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidListing, field, msg)
}

func hasNonBlank(ss []string) bool {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

func compact(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}
