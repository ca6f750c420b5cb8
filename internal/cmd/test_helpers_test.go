package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vce-tools/vce-deploy/internal/profile"
)

// executeCmd executes the root command with the given args and returns
// the captured output. Flag-bound package vars are reset first so state
// doesn't leak between test executions.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	injectDryRun = false
	injectOutput = DefaultOutputPath
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		require.NoError(t, f.Value.Set("false"))
		f.Changed = false
	}

	buf := new(bytes.Buffer)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

// setupDeployment builds a minimal deployment tree (template + one
// profile) in a fresh working directory and returns the template path.
func setupDeployment(t *testing.T, profileName, profileContent string) string {
	t.Helper()

	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll(profile.Dir, 0755))
	require.NoError(t, os.WriteFile(profile.Path(profileName), []byte(profileContent), 0644))

	templatePath := filepath.Join("deployment", "run-service.template.yaml")
	template := "name: {{SERVICE_NAME}}\nenv: {{ENVIRONMENT}}\nimage: {{IMAGE}}\n"
	require.NoError(t, os.WriteFile(templatePath, []byte(template), 0644))

	return templatePath
}

// chdir changes the working directory for the duration of the test,
// matching the behavior of testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
