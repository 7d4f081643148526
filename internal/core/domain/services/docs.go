// Package services contains stateless domain services that operate across
// aggregates: the TransitionGuard, which decides whether a proposed order
// mutation is allowed, and the HistoryRecorder, which turns applied mutations
// into audit entries. Both are pure decision functions; persistence and
// transaction control stay in the application layer.
package services
