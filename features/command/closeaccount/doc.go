// Package closeaccount implements the use case of closing a bank account.
package closeaccount
