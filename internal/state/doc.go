// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client-side state containers and the pure rules
// that govern them: the request lifecycle, the session and inventory
// snapshots, the view router and the auth gate.
//
// Nothing in this package performs I/O. The service layer owns the mutable
// instances, guards them with a mutex and drives the transitions defined
// here; the TUI reads immutable copies.
package state
