// Package gorm implements the store interfaces using GORM over PostgreSQL.
//
// The check-then-write sequences the API depends on are made atomic here:
// the one-pending-request rule is backed by a partial unique index and the
// status-transition guard is a conditional UPDATE, so concurrent calls
// against the same key serialize in the database rather than racing in the
// application.
package gorm
