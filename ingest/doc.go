// Package ingest converts raw social-graph exports into the dense,
// zero-based inputs the diffusion engine consumes.
//
// What:
//
//   - ReadEdgeList parses "u v" pairs whose endpoints use an arbitrary
//     ID scheme (numeric IDs, handles, mixed), assigning dense indices
//     in first-seen order and returning a Dataset.
//   - Dataset.Graph builds the engine's predecessor-list digraph.
//   - ReadScoresCSV reads a per-user sentiment CSV (user_id,sentiment
//     columns, matched case-insensitively by header) into a score map.
//   - Dataset.States maps scores onto node indices, defaulting unknown
//     users to the neutral tone 0.0.
//   - Dataset.WriteIndex persists the original-ID → index mapping as
//     JSON, so downstream tooling can translate results back.
//
// Ingest only maps precomputed scores onto nodes; computing sentiment
// from raw text is someone else's job.
//
// Errors:
//
//   - ErrBadEdgeLine: an edge line has fewer than two tokens.
//   - ErrMissingColumn: the CSV lacks a user_id or sentiment column.
//   - ErrBadScore: a sentiment cell does not parse as a real number.
package ingest
