// Package util contains small shared helpers.
package util

import "strings"

// Sanitize strips angle brackets from user-entered text before it is
// persisted or echoed back, the storefront's minimal markup-injection guard.
func Sanitize(s string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(s)
}
