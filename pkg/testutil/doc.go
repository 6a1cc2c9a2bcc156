// Package testutil provides file fixture helpers for uniqr tests.
//
// Helpers take *testing.T and fail the test on error, so call sites stay
// free of error plumbing. All fixtures live under t.TempDir().
package testutil
