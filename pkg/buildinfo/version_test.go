package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", got)
	}
}

func TestFields(t *testing.T) {
	f := Fields()
	if len(f)%2 != 0 {
		t.Fatalf("Fields() has odd length %d", len(f))
	}
	if f[0] != "version" || f[1] != Version {
		t.Errorf("Fields() = %v", f)
	}
}
