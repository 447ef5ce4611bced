// Package csvfile writes the canonical table and data dictionary as CSV.
//
// Writes are whole-file and atomic (temp file + rename), so re-running
// the pipeline over unchanged input leaves byte-identical artifacts and
// a crash never leaves a partial file behind.
package csvfile
