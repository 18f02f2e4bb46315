// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-equip-keeper/internal/state"
	"github.com/MKhiriev/go-equip-keeper/models"
)

// listModel renders the whole collection or only the distributed laptops,
// narrowed by the search term.
type listModel struct {
	distributedOnly bool
	cursor          int
	search          textinput.Model
	searching       bool
}

func newListModel(distributedOnly bool) listModel {
	s := textinput.New()
	s.Prompt = "/ "
	s.Placeholder = "search"
	s.Width = 30
	return listModel{distributedOnly: distributedOnly, search: s}
}

func (m listModel) visible(items []models.Laptop) []models.Laptop {
	if m.distributedOnly {
		items = models.Distributed(items)
	}
	return models.Search(items, m.search.Value())
}

func (m listModel) selected(items []models.Laptop) (models.Laptop, bool) {
	visible := m.visible(items)
	if len(visible) == 0 {
		return models.Laptop{}, false
	}
	return visible[min(m.cursor, len(visible)-1)], true
}

func (m *listModel) move(delta, n int) {
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
}

func (m *listModel) startSearch() tea.Cmd {
	m.searching = true
	return m.search.Focus()
}

// stopSearch leaves search mode. The term keeps filtering unless clear is set.
func (m *listModel) stopSearch(clear bool) {
	m.searching = false
	m.search.Blur()
	if clear {
		m.search.SetValue("")
		m.cursor = 0
	}
}

func (m *listModel) updateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return cmd
}

const rowFormat = "%s%-22s %-16s %-14s %10s  %-10s  %-11s %s"

func (m listModel) View(inv state.Inventory) string {
	title := "ALL LAPTOPS"
	if m.distributedOnly {
		title = "DISTRIBUTED LAPTOPS"
	}

	var b strings.Builder
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	visible := m.visible(inv.Items())
	switch {
	case inv.Status() == state.StatusPending && inv.Len() == 0:
		b.WriteString("Loading...\n")
	case len(visible) == 0:
		b.WriteString("No laptops found.\n")
	default:
		b.WriteString(helpStyle.Render(fmt.Sprintf(rowFormat, "  ", "NAME", "SERIAL", "MODEL", "PRICE", "RECEIVED", "STATUS", "ASSIGNED TO")))
		b.WriteString("\n")
		current := min(m.cursor, len(visible)-1)
		for i, l := range visible {
			line := fmt.Sprintf(rowFormat,
				cursorMark(i == current),
				fitText(l.Name, 22),
				fitText(l.SerialNumber, 16),
				fitText(l.Model, 14),
				l.Price.String(),
				models.FormatDate(l.CreatedAt),
				l.Status(),
				assignee(l),
			)
			if i == current {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	hotKeys := "up/down: move   /: search   e: edit   d: delete   c: copy serial   r: reload   esc: back"
	if m.searching {
		hotKeys = "enter: keep filter   esc: clear search"
	}
	return renderPage(title, b.String(), hotKeys)
}

func assignee(l models.Laptop) string {
	if !l.IsDistributed() || l.AssignedTo == nil {
		return valueOrDash(l.ReturnedReason)
	}
	return fitText(l.AssignedTo.UserName+" <"+l.AssignedTo.UserEmail+">", 36)
}
