// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLaptop_Status(t *testing.T) {
	tests := []struct {
		name   string
		laptop Laptop
		want   LaptopStatus
	}{
		{"fresh", Laptop{}, StatusAvailable},
		{"distributed", Laptop{DistributedStatus: true, AssignedTo: &Assignee{UserName: "Bob"}}, StatusDistributed},
		{"returned", Laptop{ReturnedReason: "broken screen"}, StatusReturned},
		{"distributed wins over returned", Laptop{DistributedStatus: true, ReturnedReason: "old"}, StatusDistributed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.laptop.Status())
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "03/02/2026", FormatDate(time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "-", FormatDate(time.Time{}))
}

func TestLaptop_Matches(t *testing.T) {
	l := Laptop{
		Name:              "ThinkPad",
		SerialNumber:      "SN-42",
		Model:             "T14",
		Price:             1200,
		Origin:            "Lenovo",
		CreatedAt:         time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		DistributedStatus: true,
		AssignedTo:        &Assignee{UserName: "Bob", UserEmail: "bob@x.io", UserPosition: "QA"},
	}

	for _, term := range []string{"thinkpad", "sn-4", "t14", "120", "leno", "03/02", "bob", "X.IO", "qa", "distrib", ""} {
		assert.True(t, l.Matches(term), term)
	}
	for _, term := range []string{"dell", "available", "returned", "9999"} {
		assert.False(t, l.Matches(term), term)
	}
}

func TestLaptop_MatchesReturnedReason(t *testing.T) {
	l := Laptop{Name: "x", ReturnedReason: "Broken hinge"}

	assert.True(t, l.Matches("hinge"))
	assert.True(t, l.Matches("returned"))
}

func TestFiltersAndSummary(t *testing.T) {
	items := []Laptop{
		{ID: "1", DistributedStatus: true},
		{ID: "2"},
		{ID: "3", ReturnedReason: "old"},
		{ID: "4", DistributedStatus: true},
	}

	assert.Len(t, Distributed(items), 2)
	assert.Len(t, Available(items), 2)
	assert.Len(t, Search(items, "returned"), 1)
	assert.Equal(t, InventorySummary{Total: 4, Distributed: 2, Available: 2}, Summarize(items))
	assert.Equal(t, InventorySummary{}, Summarize(nil))
}
