// Package ledger implements the inventory ledger: validated, transactional
// operations over book, customer and order records.
//
// The central invariant is stock sufficiency. PlaceOrder checks a tracked
// book's stock against the requested quantity and commits the order insert
// and the stock decrement as one unit; a tracked stock value never goes
// negative. Failures of correct usage (missing book, insufficient stock,
// duplicate customer) are reported as OutcomeError values and leave state
// unchanged.
package ledger
