package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/hemicycle/pkg/observability"
)

func TestDebugHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	installDebugHooks(c.Logger)

	opts := &renderOpts{output: t.TempDir() + "/p.svg", formats: []string{"svg"}, noCache: true}
	if err := c.runRender(withLogger(t.Context(), c.Logger), "A, 5", opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	for _, want := range []string{"normalized", "layout started", "layout complete", "render complete"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("debug log missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRootCommand(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := []string{"render", "parse", "capacity", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out.String(), "hemicycle") {
		t.Error("bash completion should mention the command name")
	}
}
