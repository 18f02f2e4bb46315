// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// startMsg is sent once by Init so the first view is prepared and gated like
// any other transition.
type startMsg struct{}

// requestDoneMsg reports the end of a store operation. The outcome texts are
// read from the store snapshot, err only decides the follow-up navigation.
// generation is the session generation the request was issued in.
type requestDoneMsg struct {
	op         requestOp
	err        error
	generation int
}

type bannerExpiredMsg struct {
	seq int
}

type copiedMsg struct {
	text string
}

type copyFailedMsg struct {
	err error
}
