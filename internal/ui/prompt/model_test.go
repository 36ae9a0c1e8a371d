package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeInto(t *testing.T, m loginModel, text string) loginModel {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(key(r))
		m = next.(loginModel)
	}
	return m
}

func enter(t *testing.T, m loginModel) loginModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(loginModel)
}

func TestLoginFormWalksFieldsAndCollectsValues(t *testing.T) {
	t.Parallel()
	m := newLoginModel()
	m = typeInto(t, m, "acme")
	m = enter(t, m)
	m = typeInto(t, m, "jdoe")
	m = enter(t, m)
	m = typeInto(t, m, "hunter2")
	m = enter(t, m)

	if !m.done || m.cancelled {
		t.Fatalf("form must finish after the password field, got %+v", m)
	}
	fields := m.fields()
	if fields.Company != "acme" || fields.Username != "jdoe" || fields.Password != "hunter2" {
		t.Fatalf("collected fields wrong: %+v", fields)
	}
}

func TestLoginFormEscCancels(t *testing.T) {
	t.Parallel()
	m := newLoginModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := next.(loginModel); !got.cancelled {
		t.Fatalf("esc must cancel the form")
	}
}

func TestPickerCursorClampsAndChooses(t *testing.T) {
	t.Parallel()
	m := newPickerModel("Pick", []string{"a", "b", "c"})

	step := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(pickerModel)
	}
	step(key('k'))
	if m.cursor != 0 {
		t.Fatalf("cursor must clamp at the top, got %d", m.cursor)
	}
	step(key('j'))
	step(key('j'))
	step(key('j'))
	if m.cursor != 2 {
		t.Fatalf("cursor must clamp at the bottom, got %d", m.cursor)
	}
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.done || m.cursor != 2 {
		t.Fatalf("enter must confirm the highlighted item, got %+v", m)
	}
}

func TestPickerEscCancels(t *testing.T) {
	t.Parallel()
	m := newPickerModel("Pick", []string{"a"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := next.(pickerModel); !got.cancelled {
		t.Fatalf("esc must cancel the picker")
	}
}
