// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

// NeedsFetch reports whether entering the current view should load the
// collection. Views that show laptops load it when nothing was loaded yet;
// the list, distribute and edit views also retry after a failure.
func NeedsFetch(authenticated bool, inv Inventory) bool {
	if !authenticated {
		return false
	}

	switch inv.Status() {
	case StatusIdle:
		switch inv.View() {
		case ViewHome, ViewListAll, ViewListDistributed, ViewDistributeForm, ViewReturnForm, ViewEditLaptop:
			return true
		}
	case StatusFailed:
		switch inv.View() {
		case ViewListAll, ViewListDistributed, ViewDistributeForm, ViewEditLaptop:
			return true
		}
	}
	return false
}
