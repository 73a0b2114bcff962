package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill('X')
	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if s.Get(x, y) != ' ' {
				t.Fatalf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorGreen)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorGreen {
			t.Errorf("DrawText: expected green %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultiByte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "a—b")

	if s.Get(0, 0) != 'a' || s.Get(1, 0) != '—' || s.Get(2, 0) != 'b' {
		t.Errorf("multi-byte runes should occupy one cell each, got %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestScreenDrawOverlay(t *testing.T) {
	s := NewScreen(40, 11)
	s.Fill('.')
	s.DrawOverlay(ColorRed, "GAME OVER!", "Press R")

	if !strings.Contains(s.String(), "GAME OVER!") || !strings.Contains(s.String(), "Press R") {
		t.Fatalf("overlay text missing:\n%s", s.String())
	}
	// Box is 14x5 centered: interior cells are blanked.
	if s.Get(14, 4) != ' ' {
		t.Errorf("overlay interior should be blank, got %q", s.Get(14, 4))
	}
	if s.Get(0, 0) != '.' {
		t.Error("overlay should not touch cells outside the box")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if len(s.Row(7)) != 15 {
		t.Errorf("new rows should be allocated, got %q", s.Row(7))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
