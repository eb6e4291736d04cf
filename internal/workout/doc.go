// Package workout provides the ownership-scoped workout log for FitTrack Core.
//
// Every workout row carries exactly one owner. Non-admin mutations are
// confined to the caller's own rows by encoding the ownership predicate
// in the repository operation itself (WHERE id = ? AND owner_id = ?), so
// a non-owner's update or delete reports not-found rather than forbidden
// and never reveals whether the row exists.
//
// Activities map onto a closed category table that governs which optional
// fields are meaningful: distance for endurance activities, a structured
// exercise blob for gym sessions. The blob is stored opaque; the engine
// never interprets its structure.
package workout
