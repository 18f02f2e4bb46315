// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type bannerKind int

const (
	bannerInfo bannerKind = iota
	bannerSuccess
	bannerError
)

// banner is the toast line under the header. seq identifies the expiry tick
// that may dismiss it; a newer banner invalidates older ticks.
type banner struct {
	text string
	kind bannerKind
	seq  int
}

func (b banner) View() string {
	switch b.kind {
	case bannerError:
		return errorStyle.Render(b.text)
	case bannerSuccess:
		return successStyle.Render(b.text)
	default:
		return infoStyle.Render(b.text)
	}
}
