package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/todo"
)

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var mm tea.Model
		mm, cmd = m.Update(k)
		m = mm.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	down     = tea.KeyMsg{Type: tea.KeyDown}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
)

func addVia(t *testing.T, m Model, text string) Model {
	t.Helper()
	m.input.SetValue(text)
	m, _ = press(t, m, enter)
	return m
}

func TestUpdate_EnterAddsAndClearsInput(t *testing.T) {
	ctrl := todo.NewController()
	m := New(ctrl, Options{})

	m = addVia(t, m, "buy milk")

	inc := ctrl.Incomplete()
	if len(inc) != 1 || inc[0].Text != "buy milk" {
		t.Fatalf("expected one item 'buy milk', got %v", inc)
	}
	if m.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", m.input.Value())
	}
}

func TestUpdate_EmptyInputStillAdds(t *testing.T) {
	ctrl := todo.NewController()
	m := New(ctrl, Options{})

	m, _ = press(t, m, enter)

	inc := ctrl.Incomplete()
	if len(inc) != 1 || inc[0].Text != "" {
		t.Fatalf("expected one empty item, got %v", inc)
	}
	if !strings.Contains(m.View(), "(untitled)") {
		t.Error("expected empty item to render as (untitled)")
	}
}

func TestUpdate_CompleteReturnDelete(t *testing.T) {
	ctrl := todo.NewController()
	m := New(ctrl, Options{})
	m = addVia(t, m, "a")
	m = addVia(t, m, "b")
	m = addVia(t, m, "c")

	// Focus incomplete, select "b", complete it.
	m, _ = press(t, m, tab, down, runes("c"))
	if got := ctrl.Completed(); len(got) != 1 || got[0].Text != "b" {
		t.Fatalf("expected b completed, got %v", got)
	}

	// Cursor stays in range: now on "c"; delete it.
	m, _ = press(t, m, runes("d"))
	if got := ctrl.Incomplete(); len(got) != 1 || got[0].Text != "a" {
		t.Fatalf("expected only a left, got %v", got)
	}

	// Focus complete and return "b".
	m, _ = press(t, m, tab, runes("r"))
	if got := ctrl.Incomplete(); len(got) != 2 || got[1].Text != "b" {
		t.Fatalf("expected b returned to the tail, got %v", got)
	}
	if len(ctrl.Completed()) != 0 {
		t.Errorf("expected empty complete list")
	}
	if m.cursor != [2]int{0, 0} {
		t.Errorf("expected cursors clamped to 0, got %v", m.cursor)
	}
}

func TestUpdate_CompletedItemsCannotBeDeleted(t *testing.T) {
	ctrl := todo.NewController()
	id := ctrl.Add("done")
	if err := ctrl.Complete(id); err != nil {
		t.Fatal(err)
	}
	m := New(ctrl, Options{})

	m, _ = press(t, m, shiftTab, runes("d"))

	if _, state, ok := ctrl.Lookup(id); !ok || state != todo.Complete {
		t.Fatalf("expected item to stay complete")
	}
	if m.status == "" {
		t.Error("expected a status message")
	}
}

func TestUpdate_ActionsOnEmptyListsAreNoops(t *testing.T) {
	ctrl := todo.NewController()
	m := New(ctrl, Options{})

	m, _ = press(t, m, tab, runes("c"), runes("d"), tab, runes("r"))

	if inc, comp := ctrl.Len(); inc != 0 || comp != 0 {
		t.Errorf("expected empty lists, got %d/%d", inc, comp)
	}
	if m.status != "" {
		t.Errorf("expected no status, got %q", m.status)
	}
}

func TestUpdate_FocusCycle(t *testing.T) {
	m := New(todo.NewController(), Options{})

	m, _ = press(t, m, tab)
	if m.focus != focusIncomplete || m.input.Focused() {
		t.Fatalf("expected incomplete focus with blurred input")
	}
	m, _ = press(t, m, tab, tab)
	if m.focus != focusInput || !m.input.Focused() {
		t.Fatalf("expected input focus after full cycle")
	}
	m, _ = press(t, m, tab, runes("a"))
	if m.focus != focusInput {
		t.Errorf("expected 'a' to return to the input")
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := New(todo.NewController(), Options{})

	// q types into the input rather than quitting.
	m, _ = press(t, m, runes("q"))
	if m.input.Value() != "q" {
		t.Fatalf("expected q typed into the input, got %q", m.input.Value())
	}

	_, cmd := press(t, m, esc)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg from esc")
	}

	_, cmd = press(t, New(todo.NewController(), Options{}), tab, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command from list focus")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg from q")
	}
}

func TestView_RendersBothLists(t *testing.T) {
	ctrl := todo.NewController()
	ctrl.Add("buy milk")
	done := ctrl.Add("call mom")
	if err := ctrl.Complete(done); err != nil {
		t.Fatal(err)
	}
	m := New(ctrl, Options{Title: "Groceries"})

	view := m.View()
	for _, want := range []string{"Groceries", "Incomplete", "Complete", "1  buy milk", "2  call mom"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q\n%s", want, view)
		}
	}
	if strings.Index(view, "buy milk") > strings.Index(view, "call mom") {
		t.Error("expected incomplete section before complete section")
	}
}
