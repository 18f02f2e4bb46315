// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-equip-keeper/internal/validators"
	"github.com/MKhiriev/go-equip-keeper/models"
)

const (
	laptopName = iota
	laptopSerial
	laptopModel
	laptopPrice
	laptopOrigin
)

// laptopFormModel backs both the add and the edit view. loaded is set once
// the edit form has been prefilled from the collection.
type laptopFormModel struct {
	form
	loaded bool
}

func newLaptopFormModel() laptopFormModel {
	return laptopFormModel{form: newForm("Name", "Serial number", "Model", "Price", "Origin")}
}

func (m *laptopFormModel) fill(l models.Laptop) {
	m.setValue(laptopName, l.Name)
	m.setValue(laptopSerial, l.SerialNumber)
	m.setValue(laptopModel, l.Model)
	if l.Price != 0 {
		m.setValue(laptopPrice, l.Price.String())
	}
	m.setValue(laptopOrigin, l.Origin)
	m.loaded = true
}

// input reads the form. An unparsable price is reported like any other
// validation error.
func (m laptopFormModel) input() (models.LaptopInput, error) {
	price, err := models.ParsePrice(m.value(laptopPrice))
	if err != nil {
		return models.LaptopInput{}, fmt.Errorf("%w: %w", validators.ErrValidation, validators.ErrInvalidPrice)
	}

	return models.LaptopInput{
		Name:         m.value(laptopName),
		SerialNumber: m.value(laptopSerial),
		Model:        m.value(laptopModel),
		Price:        price,
		Origin:       m.value(laptopOrigin),
	}, nil
}

func (m laptopFormModel) View(editing bool) string {
	title, hotKeys := "ADD LAPTOP", "tab: next field   enter: save   esc: back"
	if editing {
		title = "EDIT LAPTOP"
		if !m.loaded {
			return renderPage(title, "Loading laptop...", "esc: back to list")
		}
	}
	return renderPage(title, m.form.View(), hotKeys)
}
