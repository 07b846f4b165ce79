// Package roster reads player rosters from tab-separated CSV exports.
//
// It detects the file encoding from BOM bytes (UTF-16LE exports are common
// from federation tooling), validates the required column set, normalizes
// Unicode whitespace in every cell, and converts the birth-date triplet to
// integers. Malformed rows are skipped with a warning; structural problems
// such as missing columns abort the read.
//
// The matching engine consumes the records returned here verbatim and never
// re-parses raw text.
package roster
