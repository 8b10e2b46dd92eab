package mathx

import "testing"

func TestTruncDiv_TowardZero(t *testing.T) {
	cases := []struct{ a, b, want int32 }{
		{7, 2, 3},
		{-7, 2, -3},
		{543, 6, 90},
		{-3, 4, 0},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := TruncDiv(c.a, c.b); got != c.want {
			t.Fatalf("TruncDiv(%d,%d)=%d want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestBetweenAndAbs(t *testing.T) {
	if !Between(5, 10, 1) {
		t.Fatal("Between should be order-insensitive")
	}
	if Between(11, 1, 10) {
		t.Fatal("11 is not within [1,10]")
	}
	if Abs(int64(-42)) != 42 || Abs(int8(3)) != 3 {
		t.Fatal("Abs mismatch")
	}
}
