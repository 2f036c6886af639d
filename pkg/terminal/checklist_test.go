package terminal

import (
	"strings"
	"testing"
)

func TestChecklist_Run(t *testing.T) {
	var out strings.Builder
	c := NewChecklist(NewWriter(&out, nil), NewStyler(false))
	ok := c.Run([]Step{
		{Message: "short", Check: func() bool { return true }},
		{Message: "longer step", Check: func() bool { return false }},
	})
	if ok {
		t.Error("Run should report the failing step")
	}
	want := "short      OK\nlonger stepFAIL\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
