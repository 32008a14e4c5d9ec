// Package order provides the Order aggregate for the tavern system: an order
// header together with its owned, ordered collection of line items, treated as
// one consistency boundary.
//
// The package includes:
//   - Order: the aggregate root managing identity, the paid transition, and
//     the child collection
//   - LineItem: a quantity of a menu item with a frozen snapshot of the menu
//     item's attributes taken when the item was composed
//
// Key business rules:
//   - Ids are absent until the store persists the aggregate, immutable after
//   - Quantity is always positive, validated at construction
//   - Paid is a one-way terminal transition; no mutation is allowed after it
//   - Totals and snapshot fields are assigned by the store, never by callers,
//     and only once the enclosing transaction has committed
//
// The package follows Domain-Driven Design principles, with validation in the
// factory functions so invalid aggregates never reach the persistence layer.
package order
