// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-equip-keeper/models"
)

const returnReason = 0

type returnModel struct {
	form
	picker picker
}

func newReturnModel() returnModel {
	return returnModel{form: newForm("Reason")}
}

func (m returnModel) request(distributed []models.Laptop) models.ReturnRequest {
	req := models.ReturnRequest{ReturnedReason: m.value(returnReason)}
	if l, ok := m.picker.selected(distributed); ok {
		req.LaptopID = l.ID
	}
	return req
}

func (m returnModel) View(distributed []models.Laptop) string {
	var b strings.Builder
	b.WriteString("Laptop:\n")
	b.WriteString(m.picker.View(distributed, "No laptops are distributed."))
	if l, ok := m.picker.selected(distributed); ok && l.AssignedTo != nil {
		b.WriteString(helpStyle.Render("Assigned to " + l.AssignedTo.UserName + " <" + l.AssignedTo.UserEmail + ">"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.form.View())
	return renderPage("RETURN LAPTOP", b.String(), "up/down: laptop   enter: return   esc: back")
}
