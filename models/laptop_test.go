// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaptop_UnmarshalServerPayload(t *testing.T) {
	payload := `{
		"_id": "L1",
		"name": "ThinkPad",
		"serialNumber": "SN-1",
		"model": "T14",
		"price": "1200.50",
		"origin": "Lenovo",
		"createdAt": "2026-02-03T10:00:00.000Z",
		"distributedStatus": true,
		"assignedTo": {"userName": "Bob", "userEmail": "bob@x.io", "userPosition": "QA"},
		"returnedReason": ""
	}`

	var l Laptop
	require.NoError(t, json.Unmarshal([]byte(payload), &l))

	assert.Equal(t, "L1", l.ID)
	assert.Equal(t, Price(1200.5), l.Price)
	assert.Equal(t, 2026, l.CreatedAt.Year())
	require.NotNil(t, l.AssignedTo)
	assert.Equal(t, "Bob", l.AssignedTo.UserName)
	assert.Empty(t, l.AssignedTo.UserPhoneNumber)
	assert.Nil(t, l.ReturnedAt)
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Price
		wantErr bool
	}{
		{`1200`, 1200, false},
		{`999.5`, 999.5, false},
		{`"750"`, 750, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tt.in), &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestPrice_MarshalsAsNumber(t *testing.T) {
	b, err := json.Marshal(LaptopInput{Name: "n", Price: 999.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"n","serialNumber":"","model":"","price":999.5,"origin":""}`, string(b))
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice(" 1500 ")
	require.NoError(t, err)
	assert.Equal(t, "1500", p.String())

	p, err = ParsePrice("")
	require.NoError(t, err)
	assert.Zero(t, p)

	_, err = ParsePrice("12a")
	assert.Error(t, err)
}

func TestLaptop_Input(t *testing.T) {
	l := Laptop{
		ID: "L1", Name: "n", SerialNumber: "s", Model: "m", Price: 10, Origin: "o",
		CreatedAt: time.Now(), DistributedStatus: true,
	}

	assert.Equal(t, LaptopInput{Name: "n", SerialNumber: "s", Model: "m", Price: 10, Origin: "o"}, l.Input())
}
