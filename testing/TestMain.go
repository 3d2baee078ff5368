package testing

import (
	"os"
	"sync"
	stdtesting "testing"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("BOTICA_TEST_MODE", "1")
		if os.Getenv("AUTH_SECRET") == "" {
			_ = os.Setenv("AUTH_SECRET", "test-only-secret")
		}
	})
}

func init() {
	ensureTestMode()
}

func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}
