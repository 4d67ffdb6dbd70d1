// Package accountstatement implements the query for the full transaction history
// of a single account, with a running balance per statement line.
package accountstatement
