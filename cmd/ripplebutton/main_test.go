package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/ripplebutton/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { errors.SetHandler(nil) })

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "v1.2"
	commit = "abcdef1"
	date = "2026-10-03"

	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "ripplebutton v1.2.0")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
	require.Contains(t, output, "config schema: v1")
}

func TestRenderHTML(t *testing.T) {
	path := writeFile(t, "button.yaml", "variant: raised\nlabel: Save\ndisabled: true\n")

	output, err := execute(t, "render", "-f", path)
	require.NoError(t, err)
	require.Contains(t, output, `class="mdc-button mdc-button--raised"`)
	require.Contains(t, output, `disabled=""`)
	require.Contains(t, output, `aria-label="Save"`)
	require.NotContains(t, output, "mwc-ripple")
}

func TestRenderHostJSON(t *testing.T) {
	path := writeFile(t, "button.yaml", "label: OK\nfullwidth: true\n")

	output, err := execute(t, "render", "-f", path, "--format", "json", "--host")
	require.NoError(t, err)

	var tree struct {
		Tag      string `json:"tag"`
		Children []struct {
			Tag string `json:"tag"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &tree))
	require.Equal(t, "mwc-button", tree.Tag)
	require.Len(t, tree.Children, 1)
	require.Equal(t, "button", tree.Children[0].Tag)
}

func TestRenderRejectsBadInput(t *testing.T) {
	path := writeFile(t, "button.yaml", "variant: fab\n")

	_, err := execute(t, "render", "-f", path)
	require.ErrorContains(t, err, "variant")

	_, err = execute(t, "render", "-f", path, "--format", "svg")
	require.ErrorContains(t, err, "unsupported format")

	_, err = execute(t, "render")
	require.Error(t, err)
}

const pressScript = `button:
  variant: unelevated
  label: OK
steps:
  - op: pointerdown
  - op: pointerup
    x: 300
    y: 300
  - op: advance
    ms: 40
`

func TestReplayPrintsTrace(t *testing.T) {
	path := writeFile(t, "script.yaml", pressScript)

	output, err := execute(t, "replay", "-f", path)
	require.NoError(t, err)
	require.Contains(t, output, "step 2 @40ms startPress")
	require.Contains(t, output, "step 2 @40ms endPress")
	require.Contains(t, output, "mount: mounted")
	require.Contains(t, output, "global listeners: 0")
}

func TestSnapshotWritesPNG(t *testing.T) {
	path := writeFile(t, "script.yaml", pressScript)
	out := filepath.Join(t.TempDir(), "out.png")

	output, err := execute(t, "snapshot", "-f", path, "-o", out, "--scale", "1")
	require.NoError(t, err)
	require.Contains(t, output, "wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}
