//go:build unit

package admin

// NewCredentialCheckerWithCost lets tests skip the default bcrypt cost.
var NewCredentialCheckerWithCost = newCredentialChecker
