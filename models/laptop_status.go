// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// LaptopStatus is the display status of a laptop. It is never stored; it is
// derived from the distribution flag and the return reason.
type LaptopStatus string

const (
	StatusAvailable   LaptopStatus = "available"
	StatusDistributed LaptopStatus = "distributed"
	StatusReturned    LaptopStatus = "returned"
)

// Status derives the display status of l. Distribution takes precedence over
// a stale return reason.
func (l Laptop) Status() LaptopStatus {
	switch {
	case l.DistributedStatus:
		return StatusDistributed
	case l.ReturnedReason != "":
		return StatusReturned
	default:
		return StatusAvailable
	}
}

// IsDistributed reports whether l is currently assigned to somebody.
func (l Laptop) IsDistributed() bool {
	return l.DistributedStatus
}

// dateLayout matches the dd/mm/yyyy rendering used in lists and search.
const dateLayout = "02/01/2006"

// FormatDate renders t as dd/mm/yyyy, or "-" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

// Matches reports whether term is a case-insensitive substring of any
// searchable attribute of l: name, model, serial number, price, origin,
// received date, return reason, assignee fields or the derived status word.
// An empty term matches everything.
func (l Laptop) Matches(term string) bool {
	term = strings.ToLower(term)

	contains := func(v string) bool {
		return strings.Contains(strings.ToLower(v), term)
	}

	if contains(l.Name) || contains(l.Model) || contains(l.SerialNumber) ||
		contains(l.Price.String()) || contains(l.Origin) {
		return true
	}
	if !l.CreatedAt.IsZero() && contains(l.CreatedAt.Format(dateLayout)) {
		return true
	}
	if l.ReturnedReason != "" && contains(l.ReturnedReason) {
		return true
	}
	if a := l.AssignedTo; a != nil {
		if contains(a.UserName) || contains(a.UserEmail) {
			return true
		}
		if (a.UserPhoneNumber != "" && contains(a.UserPhoneNumber)) ||
			(a.UserPosition != "" && contains(a.UserPosition)) {
			return true
		}
	}

	return contains(string(l.Status()))
}

// Search returns the laptops matching term, keeping their order.
func Search(items []Laptop, term string) []Laptop {
	return Filter(items, func(l Laptop) bool { return l.Matches(term) })
}

// Filter returns the laptops for which keep returns true, keeping their order.
func Filter(items []Laptop, keep func(Laptop) bool) []Laptop {
	out := make([]Laptop, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Available returns laptops that can be handed out.
func Available(items []Laptop) []Laptop {
	return Filter(items, func(l Laptop) bool { return !l.IsDistributed() })
}

// Distributed returns laptops that are currently assigned.
func Distributed(items []Laptop) []Laptop {
	return Filter(items, Laptop.IsDistributed)
}

// InventorySummary holds the dashboard counters.
type InventorySummary struct {
	Total       int
	Distributed int
	Available   int
}

// Summarize counts items for the dashboard. Everything not distributed is
// counted as available.
func Summarize(items []Laptop) InventorySummary {
	distributed := len(Distributed(items))
	return InventorySummary{
		Total:       len(items),
		Distributed: distributed,
		Available:   len(items) - distributed,
	}
}
