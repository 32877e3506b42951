package hamming

import (
	"errors"
	"testing"
)

func TestDistance(t *testing.T) {
	t.Run("ints", func(t *testing.T) {
		got, err := Distance([]int{1, 2, 3}, []int{1, 0, 3})
		if err != nil {
			t.Fatal(err)
		}
		if got != 1 {
			t.Errorf("Distance = %d, want 1", got)
		}
	})

	t.Run("runes all differ", func(t *testing.T) {
		got, err := Distance([]rune{'a', 'b'}, []rune{'c', 'd'})
		if err != nil {
			t.Fatal(err)
		}
		if got != 2 {
			t.Errorf("Distance = %d, want 2", got)
		}
	})

	t.Run("strings as elements", func(t *testing.T) {
		got, err := Distance([]string{"red", "green"}, []string{"red", "blue"})
		if err != nil {
			t.Fatal(err)
		}
		if got != 1 {
			t.Errorf("Distance = %d, want 1", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got, err := Distance([]byte(nil), []byte{})
		if err != nil {
			t.Fatal(err)
		}
		if got != 0 {
			t.Errorf("Distance = %d, want 0", got)
		}
	})
}

func TestDistance_Reflexive(t *testing.T) {
	seqs := [][]int{
		nil,
		{0},
		{1, 2, 3},
		{7, 7, 7, 7, 7, 7},
	}
	for _, s := range seqs {
		got, err := Distance(s, s)
		if err != nil {
			t.Fatal(err)
		}
		if got != 0 {
			t.Errorf("Distance(%v, %v) = %d, want 0", s, s, got)
		}
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := []byte("GAGCCT")
	b := []byte("CATCGT")

	ab, err := Distance(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Distance(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if ab != ba {
		t.Errorf("Distance(a, b) = %d, Distance(b, a) = %d", ab, ba)
	}
	if ab != 3 {
		t.Errorf("Distance = %d, want 3", ab)
	}
}

func TestDistance_UpperBound(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := []int{9, 8, 7, 6, 5}

	got, err := Distance(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got > len(a) {
		t.Errorf("Distance = %d, exceeds len %d", got, len(a))
	}
}

func TestDistance_LengthMismatch(t *testing.T) {
	_, err := Distance([]int{1}, []int{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"one letter", "Cat", "Hat", 1},
		{"identical", "Hamming", "Hamming", 0},
		{"all differ", "abc", "xyz", 3},
		{"empty", "", "", 0},
		{"multibyte runes", "héllo", "hällo", 1},
		{"case sensitive", "go", "Go", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strings(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Strings(%q, %q) returned error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Strings(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Strings compares rune counts, not byte counts: "né" is three bytes but two
// runes, so it pairs with "ne" and not with "net".
func TestStrings_RuneLengthSemantics(t *testing.T) {
	got, err := Strings("né", "ne")
	if err != nil {
		t.Fatalf("equal rune counts should be comparable, got error: %v", err)
	}
	if got != 1 {
		t.Errorf("Strings(%q, %q) = %d, want 1", "né", "ne", got)
	}

	// Same byte count (3), different rune counts (2 vs 3).
	_, err = Strings("né", "net")
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("error = %v, want ErrLengthMismatch", err)
	}

	var lengths *LengthMismatchError
	if !errors.As(err, &lengths) {
		t.Fatalf("error %v is not a *LengthMismatchError", err)
	}
	if lengths.LenA != 2 || lengths.LenB != 3 {
		t.Errorf("recorded rune counts = (%d, %d), want (2, 3)", lengths.LenA, lengths.LenB)
	}
}

func TestStrings_LengthMismatch(t *testing.T) {
	_, err := Strings("kitten", "cat")
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("error = %v, want ErrLengthMismatch", err)
	}
}
