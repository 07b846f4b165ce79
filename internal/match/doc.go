// Package match implements the multi-stage player matching engine.
//
// Event roster entries are resolved against a reference registry in four
// stages: exact normalized-name lookup, swapped-name lookup, a fuzzy
// Jaro-Winkler scan over the full reference set, and finally an explicit
// no-match result. Every stage is deterministic: candidate lists preserve
// reference-file order and ties are broken in favor of the earliest entry.
//
// Each resolved match carries a weighted confidence score, a tolerant
// variant that forgives diacritics and common name punctuation, and an
// ordered list of issue codes describing the discrepancies found.
package match
