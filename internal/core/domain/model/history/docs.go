// Package history models the append-only audit ledger of order changes. Every
// status or location mutation produces one Entry; entries are immutable and
// form the order's timeline when sorted by timestamp ascending.
package history
