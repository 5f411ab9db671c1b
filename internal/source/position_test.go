package source

import "testing"

func pos(offset uint32) Position {
	return Position{Offset: offset, Line: 1, Col: offset + 1}
}

func TestSpan_Contains(t *testing.T) {
	outer := NewSpan(pos(2), pos(10))
	cases := []struct {
		name  string
		inner Span
		want  bool
	}{
		{"identical", NewSpan(pos(2), pos(10)), true},
		{"strictly inside", NewSpan(pos(3), pos(9)), true},
		{"touching both edges", NewSpan(pos(2), pos(10)), true},
		{"empty at start", NewSpan(pos(2), pos(2)), true},
		{"starts before", NewSpan(pos(1), pos(5)), false},
		{"ends after", NewSpan(pos(5), pos(11)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.Contains(tc.inner); got != tc.want {
				t.Fatalf("Contains(%v) = %v, want %v", tc.inner, got, tc.want)
			}
		})
	}
}

func TestSpan_Cover(t *testing.T) {
	base := NewSpan(pos(4), pos(8))

	widened := base.Cover(NewSpan(pos(1), pos(6)))
	if widened.Start.Offset != 1 || widened.End.Offset != 8 {
		t.Fatalf("Cover widened to %v, want [1,8)", widened)
	}

	widened = base.Cover(NewSpan(pos(6), pos(12)))
	if widened.Start.Offset != 4 || widened.End.Offset != 12 {
		t.Fatalf("Cover widened to %v, want [4,12)", widened)
	}

	// полностью внутри — спан не меняется
	same := base.Cover(NewSpan(pos(5), pos(7)))
	if same != base {
		t.Fatalf("Cover(%v) = %v, want unchanged %v", NewSpan(pos(5), pos(7)), same, base)
	}
}

func TestMerge_TakesFirstStartLastEnd(t *testing.T) {
	first := NewSpan(pos(3), pos(5))
	last := NewSpan(pos(9), pos(14))
	merged := Merge(first, last)
	if merged.Start.Offset != 3 || merged.End.Offset != 14 {
		t.Fatalf("Merge = %v, want [3,14)", merged)
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	if !NewSpan(pos(7), pos(7)).Empty() {
		t.Fatalf("zero-width span must be empty")
	}
	if NewSpan(pos(7), pos(9)).Empty() {
		t.Fatalf("two-byte span must not be empty")
	}
	if got := NewSpan(pos(7), pos(9)).Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
}

func TestPosition_EqualIgnoresLineCol(t *testing.T) {
	a := Position{Offset: 5, Line: 1, Col: 6}
	b := Position{Offset: 5, Line: 2, Col: 1}
	if !a.Equal(b) {
		t.Fatalf("positions with equal offsets must compare equal")
	}
	if a.Equal(Position{Offset: 6}) {
		t.Fatalf("positions with different offsets must not compare equal")
	}
}

func TestSpan_String(t *testing.T) {
	s := Span{
		Start: Position{Offset: 0, Line: 1, Col: 1},
		End:   Position{Offset: 12, Line: 3, Col: 4},
	}
	if got := s.String(); got != "1:1-3:4" {
		t.Fatalf("String = %q, want 1:1-3:4", got)
	}
}
