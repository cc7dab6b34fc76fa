package script_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"todolist/internal/script"
	"todolist/internal/todo"
)

func run(t *testing.T, src string) (*todo.Controller, string, error) {
	t.Helper()
	ctrl := todo.NewController()
	var out bytes.Buffer
	err := script.NewRunner(ctrl, &out, nil).Run(strings.NewReader(src))
	return ctrl, out.String(), err
}

func TestRun_RoundTrip(t *testing.T) {
	ctrl, _, err := run(t, "add buy milk\ncomplete 1\nreturn 1\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	inc := ctrl.Incomplete()
	if len(inc) != 1 || inc[0] != (todo.Item{ID: 1, Text: "buy milk"}) {
		t.Errorf("unexpected incomplete list: %v", inc)
	}
	if len(ctrl.Completed()) != 0 {
		t.Errorf("expected empty complete list, got %v", ctrl.Completed())
	}
}

func TestRun_AliasesAndComments(t *testing.T) {
	src := `
# groceries
add a
add b
add c
done 2
rm 1
`
	ctrl, _, err := run(t, src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	inc, comp := ctrl.Len()
	if inc != 1 || comp != 1 {
		t.Errorf("expected 1/1, got %d/%d", inc, comp)
	}
	if _, state, ok := ctrl.Lookup(3); !ok || state != todo.Incomplete {
		t.Errorf("expected item 3 incomplete")
	}
}

func TestRun_AddKeepsTextVerbatim(t *testing.T) {
	ctrl, _, err := run(t, "add   padded  text \nadd\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	inc := ctrl.Incomplete()
	if len(inc) != 2 {
		t.Fatalf("expected 2 items, got %v", inc)
	}
	if inc[0].Text != "  padded  text " {
		t.Errorf("expected verbatim text, got %q", inc[0].Text)
	}
	if inc[1].Text != "" {
		t.Errorf("expected empty text, got %q", inc[1].Text)
	}
}

func TestRun_Show(t *testing.T) {
	_, out, err := run(t, "add a\nshow\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	expected := "------------\nIncomplete\n------------\n       1  a\n" +
		"------------\nComplete\n------------\n    (none)\n"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		line     int
		notFound bool
		usage    bool
	}{
		{"complete on empty", "complete 99\n", 1, true, false},
		{"return incomplete item", "add a\nreturn 1\n", 2, true, false},
		{"delete completed item", "add a\ndone 1\ndelete 1\n", 3, true, false},
		{"unknown command", "add a\n\nedit 1 b\n", 3, false, true},
		{"missing id", "done\n", 1, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.src)
			var le *script.LineError
			if !errors.As(err, &le) {
				t.Fatalf("expected LineError, got %v", err)
			}
			if le.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, le.Line)
			}
			if got := errors.Is(err, todo.ErrNotFound); got != tt.notFound {
				t.Errorf("errors.Is(ErrNotFound) = %v, want %v", got, tt.notFound)
			}
			if got := errors.Is(err, script.ErrUsage); got != tt.usage {
				t.Errorf("errors.Is(ErrUsage) = %v, want %v", got, tt.usage)
			}
		})
	}
}

func TestRun_BadID(t *testing.T) {
	_, _, err := run(t, "complete one\n")
	var ie *todo.InvalidIDError
	if !errors.As(err, &ie) || ie.Input != "one" {
		t.Fatalf("expected InvalidIDError for %q, got %v", "one", err)
	}
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	ctrl, _, err := run(t, "add a\ndone 5\nadd b\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if inc, _ := ctrl.Len(); inc != 1 {
		t.Errorf("expected later lines skipped, got %d items", inc)
	}
}
