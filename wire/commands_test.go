package wire

import (
	"strings"
	"testing"
)

func TestBaseCommandsLacksMobileEndpoints(t *testing.T) {
	base := BaseCommands()

	if _, ok := base[CommandTouchPerform]; ok {
		t.Error("base table must not contain touch perform")
	}
	if _, ok := base[CommandNewSession]; !ok {
		t.Error("base table must contain newSession")
	}
}

func TestRegisterMobileCommandsDoesNotMutateInput(t *testing.T) {
	base := BaseCommands()
	before := len(base)

	extended := RegisterMobileCommands(base)

	if len(base) != before {
		t.Errorf("base table grew from %d to %d entries", before, len(base))
	}
	if len(extended) <= before {
		t.Errorf("extended table has %d entries, want more than %d", len(extended), before)
	}
	if _, ok := extended[CommandMultiTouchPerform]; !ok {
		t.Error("extended table must contain multi touch perform")
	}
	// base entries carry over unchanged
	if extended[CommandNewSession] != base[CommandNewSession] {
		t.Error("base entries must carry over")
	}
}

func TestRegisteredCommandsAreWellFormed(t *testing.T) {
	for name, cmd := range RegisterMobileCommands(BaseCommands()) {
		if cmd.Method != "GET" && cmd.Method != "POST" && cmd.Method != "DELETE" {
			t.Errorf("%s: unexpected method %q", name, cmd.Method)
		}
		if !strings.HasPrefix(cmd.Path, "/") {
			t.Errorf("%s: path %q must start with /", name, cmd.Path)
		}
		if strings.Contains(cmd.Path, " ") {
			t.Errorf("%s: path %q contains whitespace", name, cmd.Path)
		}
	}
}

func TestTouchPerformTemplatesDiffer(t *testing.T) {
	commands := RegisterMobileCommands(BaseCommands())

	single := commands[CommandTouchPerform]
	multi := commands[CommandMultiTouchPerform]
	if single.Path == multi.Path {
		t.Error("single and multi perform must use distinct endpoints")
	}
}
