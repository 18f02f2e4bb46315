// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the terminal inventory client.
//
// It restores the cached session, runs the terminal UI until the user quits
// and releases the credential cache afterwards.
package client
