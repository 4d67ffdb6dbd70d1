// Package openaccount implements the use case of opening a new bank account.
package openaccount
