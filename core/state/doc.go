// Package state persists the incremental sync watermark.
//
// The watermark is a single epoch-millisecond scalar: the timestamp of the
// newest order the sync engine has seen. It is read at the start of every pass
// as the lower bound for the feed listing and written back before the pass
// returns, so a process restart never replays more than it has to.
//
// # Drivers
//
//   - file: a JSON file on local disk, replaced atomically via temp file + rename.
//   - s3: a JSON object in an S3/MinIO bucket, for deployments without a
//     persistent filesystem.
//
// A Load of 0 means no watermark has ever been saved; the sync engine then
// falls back to its default lookback window.
package state
