// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-equip-keeper/internal/state"
	"github.com/MKhiriev/go-equip-keeper/models"
)

type menuItem struct {
	title  string
	view   state.View
	logout bool
}

var homeMenu = []menuItem{
	{title: "All laptops", view: state.ViewListAll},
	{title: "Distributed laptops", view: state.ViewListDistributed},
	{title: "Add laptop", view: state.ViewAddLaptop},
	{title: "Distribute laptop", view: state.ViewDistributeForm},
	{title: "Return laptop", view: state.ViewReturnForm},
	{title: "Log out", logout: true},
}

type homeModel struct {
	cursor int
}

func (m *homeModel) move(delta int) {
	m.cursor = (m.cursor + delta + len(homeMenu)) % len(homeMenu)
}

func (m homeModel) selected() menuItem {
	return homeMenu[m.cursor]
}

func (m homeModel) View(inv state.Inventory) string {
	var b strings.Builder

	switch {
	case inv.Status() == state.StatusPending && inv.Len() == 0:
		b.WriteString("Loading inventory...\n")
	default:
		s := models.Summarize(inv.Items())
		fmt.Fprintf(&b, "Total: %d   Distributed: %d   Available: %d\n", s.Total, s.Distributed, s.Available)
	}
	b.WriteString("\n")

	for i, item := range homeMenu {
		line := cursorMark(i == m.cursor) + item.title
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("INVENTORY", b.String(), "up/down: move   enter: open   v: about   q: quit")
}
