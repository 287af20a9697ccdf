package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// run executes args against dataDir and requires success.
func run(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	out, errOut, err := execute(t, append([]string{"--data-dir", dataDir}, args...)...)
	require.NoError(t, err, "stderr: %s", errOut)
	return out
}

// decodeData unmarshals the data field of a JSON CLI response.
func decodeData(t *testing.T, out string, v any) {
	t.Helper()
	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Equal(t, "ok", resp.Status)
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

type glyphView struct {
	Glyph string `json:"glyph"`
	Name  string `json:"name"`
	Tone  string `json:"tone"`
}

func glyphsOf(views []glyphView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Glyph
	}
	return out
}
