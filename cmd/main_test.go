package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/web-doodle/face-annotator/pkg/face"
)

func TestReportFatal(t *testing.T) {
	cases := map[string]struct {
		err      error
		contains []string
		excludes string
	}{
		"configuration": {
			err:      &face.ConfigurationError{Missing: []string{"AI_SERVICE_KEY"}},
			contains: []string{"AI_SERVICE_KEY not set in .env", "Fix:"},
			excludes: "ERROR:",
		},
		"authorization": {
			err:      &face.AuthorizationError{Provider: face.ProviderAzure, Status: 401, Message: "Access denied"},
			contains: []string{"returned 401 (access denied)", "Keys and Endpoint", "Computer Vision keys will not work"},
			excludes: "ERROR:",
		},
		"other": {
			err:      errors.New("connection reset"),
			contains: []string{"ERROR: connection reset"},
			excludes: "Fix:",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out := &bytes.Buffer{}
			assert.Equal(t, 1, reportFatal(out, tc.err))
			for _, s := range tc.contains {
				assert.Contains(t, out.String(), s)
			}
			assert.NotContains(t, out.String(), tc.excludes)
		})
	}
}

// Runs exitWithError in a child process to check the real exit status and stderr.
func TestExitWithError(t *testing.T) {
	if os.Getenv("FACE_ANNOTATOR_EXIT") == "1" {
		exitWithError(&face.AuthorizationError{Provider: face.ProviderAzure, Status: 401, Message: "Access denied"})
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitWithError$")
	cmd.Env = append(os.Environ(), "FACE_ANNOTATOR_EXIT=1")
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected a non-zero exit, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr.String(), "Azure Face API returned 401 (access denied).")
	assert.Contains(t, stderr.String(), "Fix:")
}
