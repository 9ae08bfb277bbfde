// Package services provides domain services for the order system.
//
// The package includes:
//   - StatusResolver: a pure domain service resolving requested status changes
//     against an order's recorded state into a sequence of status codes
//
// Domain services hold business logic that doesn't naturally belong to a
// single aggregate, following Domain-Driven Design principles.
package services
