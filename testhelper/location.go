package testhelper

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
)

// CaseName appends the file and line of the caller to name, so a failing
// table entry can be found from the subtest name.
func CaseName(t *testing.T, name string) string {
	t.Helper()

	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return name
	}

	return fmt.Sprintf("%s (%s:%d)", name, filepath.Base(file), line)
}
