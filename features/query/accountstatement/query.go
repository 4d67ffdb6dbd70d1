package accountstatement

import (
	"github.com/google/uuid"
)

const (
	queryType = "AccountStatement"
)

// Query represents the request for a statement of a single account.
type Query struct {
	AccountID uuid.UUID
}

// QueryType returns the type identifier for this query, used for observability.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query for the given account.
func BuildQuery(accountID uuid.UUID) Query {
	return Query{
		AccountID: accountID,
	}
}
