// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-equip-keeper/models"

// confirmModel holds a destructive request until the user answers.
type confirmModel struct {
	message    string
	op         requestOp
	laptopID   string
	distribute models.DistributeRequest
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
