// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-equip-keeper/models"
)

const (
	distributeUserName = iota
	distributeUserEmail
	distributeUserPhone
	distributeUserPosition
)

type distributeModel struct {
	form
	picker picker
}

func newDistributeModel() distributeModel {
	return distributeModel{form: newForm("User name", "User email", "Phone", "Position")}
}

// request builds the distribution of the picked laptop. Only laptops that are
// not distributed can be picked.
func (m distributeModel) request(available []models.Laptop) models.DistributeRequest {
	req := models.DistributeRequest{
		UserName:        m.value(distributeUserName),
		UserEmail:       m.value(distributeUserEmail),
		UserPhoneNumber: m.value(distributeUserPhone),
		UserPosition:    m.value(distributeUserPosition),
	}
	if l, ok := m.picker.selected(available); ok {
		req.LaptopID = l.ID
	}
	return req
}

func (m distributeModel) View(available []models.Laptop) string {
	var b strings.Builder
	b.WriteString("Laptop:\n")
	b.WriteString(m.picker.View(available, "No laptops available for distribution."))
	b.WriteString("\n")
	b.WriteString(m.form.View())
	return renderPage("DISTRIBUTE LAPTOP", b.String(), "up/down: laptop   tab: next field   enter: distribute   esc: back")
}
