// Package withdrawmoney implements the use case of withdrawing money from an account.
package withdrawmoney
