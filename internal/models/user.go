// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package models

import (
	"time"
)

// User is an account with a yearly leave entitlement.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`

	// AnnualLeaveDays is the yearly vacation entitlement in working days.
	AnnualLeaveDays int `json:"annual_leave_days" validate:"min=0,max=365"`

	CreatedAt time.Time `json:"created_at"`
}

// LeaveType classifies an absence.
type LeaveType string

// Leave types.
const (
	LeaveVacation LeaveType = "vacation"
	LeaveSick     LeaveType = "sick"
	LeaveUnpaid   LeaveType = "unpaid"
	LeaveSpecial  LeaveType = "special"
)

// Valid reports whether the leave type is known.
func (t LeaveType) Valid() bool {
	switch t {
	case LeaveVacation, LeaveSick, LeaveUnpaid, LeaveSpecial:
		return true
	}
	return false
}

// LeaveStatus tracks the approval state of a leave request.
type LeaveStatus string

// Leave request states.
const (
	LeaveStatusRequested LeaveStatus = "requested"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
)

// LeaveRequest is a booked absence for a user over an inclusive date range.
type LeaveRequest struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Type      LeaveType   `json:"type" validate:"required,leave_type"`
	Status    LeaveStatus `json:"status" validate:"omitempty,leave_status"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	Note      string      `json:"note,omitempty" validate:"max=500"`

	CreatedAt time.Time `json:"created_at"`
}

// LeaveBalance summarizes a user's entitlement consumption for one year.
type LeaveBalance struct {
	UserID      string `json:"user_id"`
	Year        int    `json:"year"`
	Entitlement int    `json:"entitlement"`
	Booked      int    `json:"booked"`
	Remaining   int    `json:"remaining"`
}
