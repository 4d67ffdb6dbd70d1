// Package accountsummaries implements the query for a summary of every account,
// projected from the full event history in global append order.
package accountsummaries
