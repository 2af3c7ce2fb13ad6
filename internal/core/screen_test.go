package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '@', ColorGreen)
	s.Set(9, 9, 'x')

	if got := s.GetCell(1, 1); got.Rune != '@' || got.Color != ColorGreen {
		t.Errorf("GetCell(1,1) = %+v", got)
	}
	if s.Get(9, 9) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if s.String() != "    \n @  " {
		t.Errorf("String() = %q", s.String())
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(2, 0, "abcdef")
	if s.Row(0) != "  abc" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "  abc")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(7, 1)
	s.DrawTextCentered(0, "▲▲▲", ColorYellow)
	if s.Row(0) != "  ▲▲▲  " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(2, 0).Color != ColorYellow {
		t.Error("centered text lost its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorDefault)
	want := "┌──┐\n│  │\n└──┘"
	if s.String() != want {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", s.String(), want)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(2, 2)
	s.Set(0, 0, 'x')
	s.Resize(3, 1)
	if s.Width() != 3 || s.Height() != 1 || s.Row(0) != "   " {
		t.Errorf("after Resize: %dx%d %q", s.Width(), s.Height(), s.Row(0))
	}
}

func TestRectHelpers(t *testing.T) {
	r := CenteredRect(20, 10, 6, 4)
	if r != NewRect(7, 3, 6, 4) {
		t.Errorf("CenteredRect = %+v", r)
	}
	if !r.Contains(7, 3) || r.Contains(13, 3) || r.Contains(7, 7) {
		t.Error("Contains uses exclusive right and bottom edges")
	}
	if Clamp(-1, 0, 5) != 0 || Clamp(9, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Error("Clamp")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	c := f.Clone()
	f.Clear()
	if f.Has(ActionFire) || !c.Has(ActionFire) {
		t.Error("Clone must not share state with the original")
	}
	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame has no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on a zero frame")
	}
}
