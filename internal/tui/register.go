// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-equip-keeper/models"
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
)

var roles = []string{models.RoleUser, models.RoleITStaff, models.RoleAdmin}

type registerModel struct {
	form
	role int
}

func newRegisterModel() registerModel {
	m := registerModel{form: newForm("Username", "Email", "Password")}
	m.mask(registerPassword)
	return m
}

func (m *registerModel) cycleRole(delta int) {
	m.role = (m.role + delta + len(roles)) % len(roles)
}

func (m registerModel) registration() models.Registration {
	return models.Registration{
		Username: m.value(registerUsername),
		Email:    m.value(registerEmail),
		Password: m.inputs[registerPassword].Value(),
		Role:     roles[m.role],
	}
}

func (m registerModel) View(sessionErr string) string {
	var b strings.Builder
	b.WriteString(m.form.View())
	b.WriteString("\nRole: ")
	for i, r := range roles {
		if i == m.role {
			b.WriteString(selectedStyle.Render("[" + r + "]"))
		} else {
			b.WriteString(" " + r + " ")
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")
	if sessionErr != "" && m.err == "" && !m.submitting {
		b.WriteString("\n" + errorStyle.Render(sessionErr) + "\n")
	}
	return renderPage("CREATE ACCOUNT", b.String(), "tab: next field   up/down: role   enter: register   esc: back to log in")
}
