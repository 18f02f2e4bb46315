// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-equip-keeper/models"

const (
	loginEmail = iota
	loginPassword
)

type loginModel struct {
	form
}

func newLoginModel() loginModel {
	m := loginModel{form: newForm("Email", "Password")}
	m.mask(loginPassword)
	return m
}

func (m loginModel) credentials() models.Credentials {
	return models.Credentials{
		Email:    m.value(loginEmail),
		Password: m.inputs[loginPassword].Value(),
	}
}

func (m loginModel) View(sessionErr string) string {
	data := m.form.View()
	if sessionErr != "" && m.err == "" && !m.submitting {
		data += "\n" + errorStyle.Render(sessionErr) + "\n"
	}
	return renderPage("LOG IN", data, "tab: next field   enter: log in   ctrl+r: create an account")
}
