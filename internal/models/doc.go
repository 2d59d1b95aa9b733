// Package models defines the core domain models for futmanager.
//
// # Entities
//
//   - Player: a roster entry, either a recurring member (billed monthly)
//     or a guest (billed per match day attended)
//   - Team: one side of a draw; ephemeral until a match day is saved
//   - GameHistory: a saved match day with full team snapshots and results
//   - BarbecueEvent: a cost-shared social event
//   - FinancialSettings: monthly due, per-game fee and court rental
//   - PaymentRegistry: sparse set of "paid" flags keyed by obligation key
//
// # Design Principles
//
// 1. **Stored shape is the wire shape**: JSON field names match the blobs
// written by earlier versions of the app, so existing data loads unchanged.
// 2. **Snapshots over references**: match days embed full Player values so a
// record stays readable after the roster changes.
// 3. **Weak references**: guest sponsors and payment keys reference ids that
// may no longer resolve. Readers treat a miss as "unlinked" or inert, never
// as an error.
package models
