package main

import (
	"bytes"
	"chargemap/internal/config"
	"chargemap/pkg/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := rootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// yamlBlock renders s as an indented YAML literal block.
func yamlBlock(s string) string {
	return "|\n    " + strings.ReplaceAll(strings.TrimSpace(s), "\n", "\n    ")
}

func TestRootCommand_MissingConfig(t *testing.T) {
	_, err := run(t, "-c", filepath.Join(t.TempDir(), "missing.yml"), "jwt", "keys")
	require.ErrorContains(t, err, "could not load config file")
}

func TestJWTCommand_KeysThenSign(t *testing.T) {
	path := writeConfig(t, "environment: production\nlogLevel: error\n")

	out, err := run(t, "-c", path, "jwt", "keys", "--bits", "1024")
	require.NoError(t, err)

	privatePEM, publicPEM, ok := strings.Cut(out, "-----END RSA PRIVATE KEY-----\n")
	require.True(t, ok, "unexpected output %q", out)
	privatePEM += "-----END RSA PRIVATE KEY-----\n"
	require.Contains(t, publicPEM, "BEGIN PUBLIC KEY")

	path = writeConfig(t, "environment: production\nlogLevel: error\njwt:\n"+
		"  privateKey: "+yamlBlock(privatePEM)+"\n"+
		"  publicKey: "+yamlBlock(publicPEM)+"\n")

	out, err = run(t, "-c", path, "jwt", "sign", "--subject", "max")
	require.NoError(t, err)

	verifier, err := token.NewVerifierFromPEM(publicPEM)
	require.NoError(t, err)
	subject, err := verifier.Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, "max", subject)
}

func TestJWTCommand_SignRequiresSubject(t *testing.T) {
	path := writeConfig(t, "environment: production\n")

	_, err := run(t, "-c", path, "jwt", "sign")
	require.ErrorContains(t, err, "subject")
}

func TestImportCommand_SourcePath(t *testing.T) {
	cfg := &config.Config{}
	cfg.Import.PostalCodesPath = "data/postal_codes.csv"
	cfg.Import.StationsPath = "data/charging_stations.csv"

	cmd := importCommand(cfg)
	require.NoError(t, cmd.Flags().Set("stations", "-"))

	require.Equal(t, "data/postal_codes.csv", sourcePath(cmd, "postal-codes", cfg.Import.PostalCodesPath))
	require.Empty(t, sourcePath(cmd, "stations", cfg.Import.StationsPath))

	require.NoError(t, cmd.Flags().Set("postal-codes", "/tmp/plz.csv"))
	require.Equal(t, "/tmp/plz.csv", sourcePath(cmd, "postal-codes", cfg.Import.PostalCodesPath))
}
