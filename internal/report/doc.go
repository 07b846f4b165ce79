// Package report renders match results as CSV files, HTML pages, and
// console summaries.
package report
