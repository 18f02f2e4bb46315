// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

// Notice is a one-shot toast emitted by the auth gate when it redirects.
type Notice string

const (
	NoticeNone           Notice = ""
	NoticeLoginRequired  Notice = "Please log in to continue."
	NoticeLaptopNotFound Notice = "Laptop not found for editing. Redirecting to list."
)

// Decision is the outcome of one gate evaluation.
type Decision struct {
	// View is the view that must be shown after the evaluation.
	View View
	// Redirected is true when View differs from the evaluated view.
	Redirected bool
	// Notice is set at most once per redirect.
	Notice Notice
}

// Gate is the single auth gate rule. It is evaluated once after every
// transition and never mutates its inputs.
//
//  1. Without a valid session every view except login and register is
//     replaced by login. Leaving any view but home emits a login notice.
//  2. A valid session on the login view is left alone: leaving login is
//     driven by a successful login or register action only.
//  3. The edit view without a target, or with a target that is missing from a
//     collection loaded by a successful fetch, falls back to the full list.
//     While any request is pending the target may still arrive.
func Gate(validSession bool, inv Inventory) Decision {
	view := inv.View()
	keep := Decision{View: view}

	if !validSession {
		if view.Public() {
			return keep
		}
		d := Decision{View: ViewLogin, Redirected: true}
		if view != ViewHome {
			d.Notice = NoticeLoginRequired
		}
		return d
	}

	if view != ViewEditLaptop {
		return keep
	}

	switch {
	case inv.EditingID() == "":
		if inv.Status() == StatusPending {
			return keep
		}
		return Decision{View: ViewListAll, Redirected: true}
	case inv.Loaded() && inv.Status() != StatusPending:
		if _, ok := inv.Editing(); !ok {
			return Decision{View: ViewListAll, Redirected: true, Notice: NoticeLaptopNotFound}
		}
	}

	return keep
}
