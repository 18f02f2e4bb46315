// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Laptop is a tracked piece of equipment as returned by the inventory API.
// The identity (ID) is assigned by the server and never changes; update,
// distribute and return replace the record in place.
type Laptop struct {
	// ID is the opaque server identifier.
	ID string `json:"_id"`

	Name         string `json:"name"`
	SerialNumber string `json:"serialNumber"`
	Model        string `json:"model"`
	Price        Price  `json:"price"`
	Origin       string `json:"origin,omitempty"`

	// CreatedAt is the moment the laptop was received into the inventory.
	CreatedAt time.Time `json:"createdAt,omitzero"`

	// DistributedStatus is set by the server while the laptop is assigned to
	// somebody. AssignedTo carries the assignee in that case.
	DistributedStatus bool      `json:"distributedStatus"`
	AssignedTo        *Assignee `json:"assignedTo,omitempty"`

	// ReturnedReason and ReturnedAt describe the last return of the laptop.
	ReturnedReason string     `json:"returnedReason,omitempty"`
	ReturnedAt     *time.Time `json:"returnedAt,omitempty"`
}

// Assignee is the distribution sub-record of a [Laptop].
type Assignee struct {
	UserName        string `json:"userName"`
	UserEmail       string `json:"userEmail"`
	UserPhoneNumber string `json:"userPhoneNumber,omitempty"`
	UserPosition    string `json:"userPosition,omitempty"`
}

// LaptopInput is the body of POST /api/laptops and PUT /api/laptops/{id}.
type LaptopInput struct {
	Name         string `json:"name"`
	SerialNumber string `json:"serialNumber"`
	Model        string `json:"model"`
	Price        Price  `json:"price"`
	Origin       string `json:"origin"`
}

// Input returns the editable fields of l, used to prefill the edit form.
func (l Laptop) Input() LaptopInput {
	return LaptopInput{
		Name:         l.Name,
		SerialNumber: l.SerialNumber,
		Model:        l.Model,
		Price:        l.Price,
		Origin:       l.Origin,
	}
}

// DistributeRequest is the body of POST /api/laptops/distribute.
type DistributeRequest struct {
	LaptopID        string `json:"laptopId"`
	UserName        string `json:"userName"`
	UserEmail       string `json:"userEmail"`
	UserPhoneNumber string `json:"userPhoneNumber"`
	UserPosition    string `json:"userPosition"`
}

// ReturnRequest is the body of POST /api/laptops/return.
type ReturnRequest struct {
	LaptopID       string `json:"laptopId"`
	ReturnedReason string `json:"returnedReason"`
}

// Price is a laptop price. The API is not strict about its type, so Price
// accepts both JSON numbers and numeric strings and always encodes as a
// number.
type Price float64

// ParsePrice converts user input into a Price. Blank input is zero.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price(f), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (p *Price) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*p = 0
		return nil
	case float64:
		*p = Price(value)
		return nil
	case string:
		parsed, err := ParsePrice(value)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	default:
		return fmt.Errorf("unsupported price value %s", string(b))
	}
}

// String formats the price the shortest way that round-trips ("1200",
// "999.5").
func (p Price) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}
