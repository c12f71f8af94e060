// Package cashbook provides the types and engine for a small income/expense
// book with a running balance.
//
// The core functionalities include:
//   - Entry Management: recording dated income (IN), expense (OUT) and
//     balance-neutral (INOUT) entries in a chronological record.
//   - Normalization: turning loosely typed rows, as read from any store,
//     into typed entries annotated with their post-entry running balance.
//   - Dual Persistence: a remote tabular endpoint is the sink of record
//     when configured, with a local bolt store as offline fallback; with
//     no endpoint the book lives in the local store only.
//   - Export: serializing the annotated rows to CSV.
//
// This package serves as the foundational logic for the `cbk` command-line
// tool.
package cashbook
