package app

import (
	"os"
	"testing"

	"github.com/vk/volsweep/internal/hcl"
	"github.com/vk/volsweep/internal/testutil"
)

// SetupAppTest creates a new app instance backed by the HCL loader, with
// debug logging captured in the returned buffer. Set VOLSWEEP_TEST_LOGS=true
// to print the captured logs after the test.
func SetupAppTest(t *testing.T, cfg *Config) (*App, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	testApp := NewApp(logBuffer, cfg, hcl.NewLoader())

	t.Cleanup(func() {
		if os.Getenv("VOLSWEEP_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
