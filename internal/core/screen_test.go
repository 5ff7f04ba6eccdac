package core

import "testing"

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetWithColor(3, 2, '#', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("expected red '#' at (3,2), got %q %v", cell.Rune, cell.Color)
	}

	// Out-of-bounds writes are ignored, reads return blanks.
	s.Set(10, 0, 'x')
	s.Set(-1, 0, 'x')
	if cell := s.GetCell(10, 0); cell.Rune != ' ' {
		t.Errorf("expected blank out-of-bounds cell, got %q", cell.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetWithColor(1, 1, '@', ColorGreen)

	s.Clear()
	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("expected blank default cell after clear, got %q %v", cell.Rune, cell.Color)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(2, 1, 'A')

	s.Resize(8, 5)
	if got := s.GetCell(2, 1).Rune; got != 'A' {
		t.Errorf("expected 'A' preserved after grow, got %q", got)
	}

	s.Resize(2, 2)
	if got := s.GetCell(2, 1).Rune; got != ' ' {
		t.Errorf("expected clipped cell blank after shrink, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(6, 0, "hello") // clipped at the right edge

	if got := s.Row(0); got != "      he" {
		t.Errorf("expected clipped text, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("unexpected screen string %q", got)
	}
}
