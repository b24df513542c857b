// Public domain.

//go:build unix

package ctools_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/soniakeys/ctscripts/internal/ctools"
)

// fakeTool writes an executable shell script to dir that prints its
// arguments one per line and exits with the given status.
func fakeTool(t *testing.T, dir, name string, status int) {
	t.Helper()
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\"\necho done >&2\nexit " +
		string(rune('0'+status)) + "\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestExecRunner(t *testing.T) {
	dir := t.TempDir()
	fakeTool(t, dir, ctools.SimName, 0)
	var stdout, stderr bytes.Buffer
	r := &ctools.ExecRunner{BinDir: dir, Stdout: &stdout, Stderr: &stderr}
	args := []string{"inmodel=data/crab.xml", "ra=83.63"}
	if err := r.Run(context.Background(), ctools.SimName, args); err != nil {
		t.Fatal(err)
	}
	got := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if diff := cmp.Diff(args, got); diff != "" {
		t.Fatalf("arguments received (-want +got):\n%s", diff)
	}
	if stderr.String() != "done\n" {
		t.Fatalf("stderr %q", stderr.String())
	}
}

func TestExecRunnerExitStatus(t *testing.T) {
	dir := t.TempDir()
	fakeTool(t, dir, ctools.LikeName, 3)
	var stdout bytes.Buffer
	r := &ctools.ExecRunner{BinDir: dir, Stdout: &stdout}
	err := r.Run(context.Background(), ctools.LikeName, []string{"chatter=2"})
	var ee *exec.ExitError
	if !errors.As(err, &ee) || ee.ExitCode() != 3 {
		t.Fatal("expected exit status 3, got", err)
	}
	if !strings.HasPrefix(err.Error(), "ctlike: ") {
		t.Fatal("error not prefixed with tool name:", err)
	}
	if stdout.String() != "chatter=2\n" {
		t.Fatalf("stdout %q", stdout.String())
	}
}

func TestExecRunnerMissing(t *testing.T) {
	r := &ctools.ExecRunner{BinDir: t.TempDir()}
	err := r.Run(context.Background(), ctools.SelectName, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected missing executable, got", err)
	}
}

func TestExecRunnerCanceled(t *testing.T) {
	dir := t.TempDir()
	fakeTool(t, dir, ctools.SelectName, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &ctools.ExecRunner{BinDir: dir}
	if err := r.Run(ctx, ctools.SelectName, nil); err == nil {
		t.Fatal("canceled run succeeded")
	}
}
