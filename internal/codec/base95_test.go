package codec

import (
	"errors"
	"math/big"
	"testing"
)

func TestBase95SmallValues(t *testing.T) {
	for _, tc := range []struct {
		n    int64
		want string
	}{
		{0, ""},
		{1, "!"},
		{94, "~"},
		{95, " !"},
		{96, "!!"},
		{95 * 95, "  !"},
	} {
		got, err := FormatBase95(big.NewInt(tc.n))
		if err != nil {
			t.Fatalf("FormatBase95(%d): %v", tc.n, err)
		}
		if got != tc.want {
			t.Fatalf("FormatBase95(%d) = %q, want %q", tc.n, got, tc.want)
		}
		back, err := ParseBase95(got)
		if err != nil {
			t.Fatalf("ParseBase95(%q): %v", got, err)
		}
		if back.Int64() != tc.n {
			t.Fatalf("ParseBase95(%q) = %s, want %d", got, back, tc.n)
		}
	}
}

func TestBase95LargeRoundTrip(t *testing.T) {
	n := new(big.Int).Sub(MaxEncoded, big.NewInt(1))
	s, err := FormatBase95(n)
	if err != nil {
		t.Fatalf("FormatBase95: %v", err)
	}
	back, err := ParseBase95(s)
	if err != nil {
		t.Fatalf("ParseBase95(%q): %v", s, err)
	}
	if back.Cmp(n) != 0 {
		t.Fatalf("round trip: got %s, want %s", back, n)
	}
}

func TestFormatBase95Negative(t *testing.T) {
	if _, err := FormatBase95(big.NewInt(-7)); !errors.Is(err, ErrCorruptInput) {
		t.Fatalf("error = %v, want ErrCorruptInput", err)
	}
}

func TestParseBase95Invalid(t *testing.T) {
	for _, s := range []string{"\n", "abc\tdef", "ok\x7f"} {
		if _, err := ParseBase95(s); !errors.Is(err, ErrCorruptInput) {
			t.Fatalf("ParseBase95(%q) error = %v, want ErrCorruptInput", s, err)
		}
	}
}
