// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"slices"

	"github.com/MKhiriev/go-equip-keeper/models"
)

// Inventory is the laptop collection together with the view router state.
type Inventory struct {
	items     []models.Laptop
	view      View
	editingID string
	loaded    bool

	Lifecycle
}

// Items returns a copy of the collection in its current order.
func (i Inventory) Items() []models.Laptop { return slices.Clone(i.items) }

// Len returns the number of laptops held.
func (i Inventory) Len() int { return len(i.items) }

// View returns the current view.
func (i Inventory) View() View { return i.view.Normalize() }

// Loaded reports whether the collection was replaced by a successful fetch
// at least once.
func (i Inventory) Loaded() bool { return i.loaded }

// EditingID returns the id of the laptop targeted by the edit view.
func (i Inventory) EditingID() string { return i.editingID }

// Find looks a laptop up by id.
func (i Inventory) Find(id string) (models.Laptop, bool) {
	idx := i.indexOf(id)
	if idx < 0 {
		return models.Laptop{}, false
	}
	return i.items[idx], true
}

// Editing returns the laptop targeted by the edit view, if it is loaded.
func (i Inventory) Editing() (models.Laptop, bool) {
	if i.editingID == "" {
		return models.Laptop{}, false
	}
	return i.Find(i.editingID)
}

// Clone returns a copy that shares no memory with i.
func (i Inventory) Clone() Inventory {
	c := i
	c.items = slices.Clone(i.items)
	return c
}

// SetView navigates to v. Navigation always dismisses the banner and drops the
// editing id unless v is the edit view.
func (i *Inventory) SetView(v View) {
	i.view = v.Normalize()
	i.ClearBanner()
	if i.view != ViewEditLaptop {
		i.editingID = ""
	}
}

// SetEditingID targets a laptop for editing without navigating.
func (i *Inventory) SetEditingID(id string) {
	i.editingID = id
}

// BeginEdit targets id and opens the edit view.
func (i *Inventory) BeginEdit(id string) {
	i.SetEditingID(id)
	i.SetView(ViewEditLaptop)
}

// ReplaceAll swaps the whole collection and marks it loaded.
func (i *Inventory) ReplaceAll(items []models.Laptop) {
	i.items = slices.Clone(items)
	i.loaded = true
}

// Append adds a laptop at the end of the collection.
func (i *Inventory) Append(l models.Laptop) {
	i.items = append(i.items, l)
}

// Replace swaps the laptop with the same id in place. When no such laptop is
// held the collection is left untouched and false is returned.
func (i *Inventory) Replace(l models.Laptop) bool {
	idx := i.indexOf(l.ID)
	if idx < 0 {
		return false
	}
	i.items[idx] = l
	return true
}

// Remove drops the laptop with the given id.
func (i *Inventory) Remove(id string) bool {
	idx := i.indexOf(id)
	if idx < 0 {
		return false
	}
	i.items = slices.Delete(i.items, idx, idx+1)
	return true
}

func (i Inventory) indexOf(id string) int {
	return slices.IndexFunc(i.items, func(l models.Laptop) bool { return l.ID == id })
}
