// Package sanitize scrubs user-supplied text before it is persisted. The
// API only ever stores and returns plain strings, so the policy is strict:
// all HTML markup is stripped, never escaped or preserved. Uses bluemonday
// so malformed markup is handled by a real HTML parser rather than regex.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the singleton strip-everything bluemonday policy.
// Initialized once via sync.Once for thread-safe lazy initialization.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, initializing it on first call.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text strips all HTML markup from s and collapses the result to trimmed
// plain text. Entities introduced by the sanitizer are decoded back so
// "A & B" survives the round trip unchanged.
func Text(s string) string {
	cleaned := getPolicy().Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Strings applies Text to every element of ss in place and returns ss.
func Strings(ss []string) []string {
	for i, s := range ss {
		ss[i] = Text(s)
	}
	return ss
}
