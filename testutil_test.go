package bcl

// Utility functions used exclusively by this package's tests: thin
// assertEquals/assertError helpers shared across its *_test.go files.

import (
	"strings"
	"testing"
)

func assertEquals(expected, actual string, t *testing.T) {
	if expected != actual {
		t.Errorf("Expected: %q Actual: %q", expected, actual)
	}
}

func assertError(result string, t *testing.T) {
	if !strings.HasPrefix(result, "ERROR: ") {
		t.Errorf("Expected error; actual: %q", result)
	}
}
