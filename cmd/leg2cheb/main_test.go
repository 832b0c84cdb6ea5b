package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polybasis/leg2cheb/binding"
	"github.com/polybasis/leg2cheb/transform"
)

// execute runs the command with args and stdin, and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func readText(t *testing.T, s string) []float64 {
	t.Helper()
	x, err := binding.NewTextAdapter(strings.NewReader(s), nil).ReadInput()
	require.NoError(t, err)
	return x
}

// openFiles returns the number of file descriptors held by the process.
func openFiles(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	return len(entries)
}

func TestConvertCmd(t *testing.T) {

	t.Run("Cheb2Leg", func(t *testing.T) {
		stdout, stderr, err := execute(t, "0 0 1 0", "cheb2leg")
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{-1. / 3, 0, 4. / 3, 0}, readText(t, stdout), 1e-12)
		require.Contains(t, stderr, "converted coefficients")
	})

	t.Run("Leg2Cheb/YAML", func(t *testing.T) {
		stdout, _, err := execute(t, "[0, 0, 1]", "leg2cheb", "--format", "yaml", "--log-level", "error")
		require.NoError(t, err)
		x, err := binding.NewYAMLAdapter(strings.NewReader(stdout), nil).ReadInput()
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{0.25, 0, 0.75}, x, 1e-15)
	})

	t.Run("Files/Binary", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "in.bin")
		out := filepath.Join(dir, "out.bin")

		x := []float64{1, 0.5, -0.25, 0.125, 2}

		var buf bytes.Buffer
		require.NoError(t, binding.NewBinaryAdapter(nil, &buf).WriteOutput(x))
		require.NoError(t, os.WriteFile(in, buf.Bytes(), 0o600))

		_, stderr, err := execute(t, "", "cheb2leg", "--format", "binary", "--in", in, "--out", out, "--digest", "--log-format", "json")
		require.NoError(t, err)
		require.Contains(t, stderr, `"digest"`)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		have, err := binding.NewBinaryAdapter(bytes.NewReader(data), nil).ReadInput()
		require.NoError(t, err)
		require.Equal(t, transform.Cheb2LegNew(x), have)
	})

	t.Run("Env", func(t *testing.T) {
		t.Setenv("LEG2CHEB_FORMAT", "yaml")
		stdout, _, err := execute(t, "[2]", "cheb2leg", "--log-level", "error")
		require.NoError(t, err)
		require.Contains(t, stdout, "- 2")
	})

	t.Run("ConfigFile", func(t *testing.T) {
		cfg := filepath.Join(t.TempDir(), "leg2cheb.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("format: yaml\nlog-level: error\n"), 0o600))
		stdout, stderr, err := execute(t, "[3]", "leg2cheb", "--config", cfg)
		require.NoError(t, err)
		require.Contains(t, stdout, "- 3")
		require.Empty(t, stderr)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		_, _, err := execute(t, "1 x", "cheb2leg", "--log-level", "error")
		require.Error(t, err)
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, _, err := execute(t, "1", "cheb2leg", "--format", "csv")
		require.ErrorIs(t, err, binding.ErrUnknownFormat)
	})

	t.Run("InvalidFormat/OutputClosed", func(t *testing.T) {
		if _, err := os.Stat("/proc/self/fd"); err != nil {
			t.Skip("/proc/self/fd is not available")
		}

		out := filepath.Join(t.TempDir(), "out.txt")

		before := openFiles(t)
		_, _, err := execute(t, "1", "cheb2leg", "--format", "csv", "--out", out)
		require.ErrorIs(t, err, binding.ErrUnknownFormat)
		require.Equal(t, before, openFiles(t))
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		_, _, err := execute(t, "1", "cheb2leg", "--log-level", "loud")
		require.Error(t, err)
	})

	t.Run("MissingInputFile", func(t *testing.T) {
		_, _, err := execute(t, "", "cheb2leg", "--in", filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
	})
}

func TestRoundTripCmd(t *testing.T) {

	stdout, _, err := execute(t, "", "roundtrip", "--size", "64", "--seed", "42", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, stdout, "cheb2leg then leg2cheb")
	require.Contains(t, stdout, "leg2cheb then cheb2leg")
	require.Contains(t, stdout, "MIN Prec")

	_, _, err = execute(t, "", "roundtrip", "--size", "-1")
	require.Error(t, err)

	_, _, err = execute(t, "", "roundtrip", "--size", strconv.Itoa(binding.DefaultMaxCoefficients+1))
	require.Error(t, err)

	_, _, err = execute(t, "", "roundtrip", "--size", strconv.Itoa(math.MaxInt))
	require.Error(t, err)

	// a zero seed draws a fresh one
	stdout, _, err = execute(t, "", "roundtrip", "--size", "8", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, stdout, "MIN Prec")
}

func TestApproxCmd(t *testing.T) {

	t.Run("Legendre", func(t *testing.T) {
		stdout, _, err := execute(t, "", "approx", "--function", "exp", "--degree", "20", "--log-level", "error")
		require.NoError(t, err)

		c := readText(t, stdout)
		require.Len(t, c, 21)

		// exp(x) = sum c[i] P_i(x): P_i(1) = 1 for all i
		var sum float64
		for _, v := range c {
			sum += v
		}
		require.InDelta(t, 2.718281828459045, sum, 1e-13)
	})

	t.Run("Chebyshev", func(t *testing.T) {
		stdout, _, err := execute(t, "", "approx", "--function", "cos", "--degree", "10", "--basis", "chebyshev", "--log-level", "error")
		require.NoError(t, err)

		c := readText(t, stdout)
		require.Len(t, c, 11)

		// T_i(1) = 1 for all i
		var sum float64
		for _, v := range c {
			sum += v
		}
		require.InDelta(t, 0.5403023058681398, sum, 1e-9)
	})

	t.Run("InvalidFunction", func(t *testing.T) {
		_, _, err := execute(t, "", "approx", "--function", "tan")
		require.Error(t, err)
	})

	t.Run("InvalidBasis", func(t *testing.T) {
		_, _, err := execute(t, "", "approx", "--basis", "monomial")
		require.Error(t, err)
	})
}
