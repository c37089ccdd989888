package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/picview/pkg/picview"
)

func TestMain_PanicExitsWithPanicCode(t *testing.T) {
	if os.Getenv("PICVIEW_RUN_MAIN") == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMain_PanicExitsWithPanicCode")
	cmd.Env = append(os.Environ(), "PICVIEW_RUN_MAIN=1", "PICVIEW_TEST_PANIC=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "output: %s", out)
	assert.Equal(t, picview.ExitPanic, exitErr.ExitCode())
	assert.Contains(t, string(out), "panic: intentional test panic")
}
