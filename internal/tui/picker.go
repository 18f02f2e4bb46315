// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-equip-keeper/models"
)

// picker selects one laptop from a list that is recomputed on every render,
// so the index is clamped on use.
type picker struct {
	idx int
}

func (p *picker) move(delta, n int) {
	if n == 0 {
		p.idx = 0
		return
	}
	p.idx = ((min(p.idx, n-1)+delta)%n + n) % n
}

func (p picker) selected(items []models.Laptop) (models.Laptop, bool) {
	if len(items) == 0 {
		return models.Laptop{}, false
	}
	return items[min(p.idx, len(items)-1)], true
}

func (p picker) View(items []models.Laptop, empty string) string {
	if len(items) == 0 {
		return helpStyle.Render(empty) + "\n"
	}

	current, _ := p.selected(items)

	var b strings.Builder
	for _, l := range items {
		line := cursorMark(l.ID == current.ID) + laptopLabel(l)
		if l.ID == current.ID {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
