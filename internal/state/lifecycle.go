// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

// RequestStatus is the tri-state (plus idle) of the most recent request of a
// store.
type RequestStatus int

const (
	StatusIdle RequestStatus = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Lifecycle tracks a store's request status together with its transient
// banner. At most one of the error and success texts is set at any time.
type Lifecycle struct {
	status  RequestStatus
	errText string
	msgText string
}

// Status returns the status of the most recent request.
func (l Lifecycle) Status() RequestStatus { return l.status }

// ErrorMessage returns the current error banner, if any.
func (l Lifecycle) ErrorMessage() string { return l.errText }

// SuccessMessage returns the current success banner, if any.
func (l Lifecycle) SuccessMessage() string { return l.msgText }

// Begin enters [StatusPending] and dismisses the banner. A request that
// starts while another one is still in flight simply re-enters pending.
func (l *Lifecycle) Begin() {
	l.status = StatusPending
	l.ClearBanner()
}

// Succeed enters [StatusSucceeded] with an optional success message.
func (l *Lifecycle) Succeed(message string) {
	l.status = StatusSucceeded
	l.SetSuccess(message)
}

// Fail enters [StatusFailed] with the given error text.
func (l *Lifecycle) Fail(errText string) {
	l.status = StatusFailed
	l.SetError(errText)
}

// SetError replaces the banner with an error without touching the status.
func (l *Lifecycle) SetError(errText string) {
	l.errText = errText
	l.msgText = ""
}

// SetSuccess replaces the banner with a success message without touching the
// status. An empty message clears the banner.
func (l *Lifecycle) SetSuccess(message string) {
	l.msgText = message
	l.errText = ""
}

// ClearBanner drops both banner texts.
func (l *Lifecycle) ClearBanner() {
	l.errText = ""
	l.msgText = ""
}
