// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package leave computes vacation balances and date-range overlaps for
// leave requests. Balances are simple arithmetic over working days: the
// annual entitlement minus the approved vacation days booked in a given
// year. There are no accrual or carry-over rules.
package leave
