// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package leave

import (
	"time"

	"github.com/peregrine-app/peregrine/internal/models"
)

// WorkingDays counts the weekdays (Monday through Friday) in the
// inclusive range [start, end]. An inverted range counts as zero. Time
// of day is ignored.
func WorkingDays(start, end time.Time) int {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

// Overlaps reports whether two inclusive date ranges share at least one
// day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = truncateDay(aStart), truncateDay(aEnd)
	bStart, bEnd = truncateDay(bStart), truncateDay(bEnd)
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// ConflictsWith returns the existing requests whose date range overlaps
// the candidate for the same user. Rejected requests do not conflict,
// and a request never conflicts with itself.
func ConflictsWith(candidate models.LeaveRequest, existing []models.LeaveRequest) []models.LeaveRequest {
	var conflicts []models.LeaveRequest
	for _, r := range existing {
		if r.ID == candidate.ID || r.UserID != candidate.UserID {
			continue
		}
		if r.Status == models.LeaveStatusRejected {
			continue
		}
		if Overlaps(candidate.StartDate, candidate.EndDate, r.StartDate, r.EndDate) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}

// Balance computes the user's vacation balance for one calendar year.
// Only approved vacation requests consume the entitlement; the portion
// of a request falling outside the year is clipped.
func Balance(user models.User, requests []models.LeaveRequest, year int) models.LeaveBalance {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	booked := 0
	for _, r := range requests {
		if r.UserID != user.ID {
			continue
		}
		if r.Type != models.LeaveVacation || r.Status != models.LeaveStatusApproved {
			continue
		}
		start, end := truncateDay(r.StartDate), truncateDay(r.EndDate)
		if start.Before(yearStart) {
			start = yearStart
		}
		if end.After(yearEnd) {
			end = yearEnd
		}
		booked += WorkingDays(start, end)
	}

	return models.LeaveBalance{
		UserID:      user.ID,
		Year:        year,
		Entitlement: user.AnnualLeaveDays,
		Booked:      booked,
		Remaining:   user.AnnualLeaveDays - booked,
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
