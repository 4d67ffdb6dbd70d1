// Package depositmoney implements the use case of depositing money into an account.
package depositmoney
