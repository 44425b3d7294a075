package conv

import "testing"

func TestHex(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
		want  string
	}{
		{0, 0, "0x0"},
		{0, 2, "0x00"},
		{0x3c, 2, "0x3c"},
		{0x8, 2, "0x08"},
		{0xdeadbeef, 0, "0xdeadbeef"},
		{^uint64(0), 0, "0xffffffffffffffff"},
		{0x1, 20, "0x0000000000000001"},
	}
	for _, c := range cases {
		if got := Hex(c.v, c.width); got != c.want {
			t.Errorf("Hex(%#x, %d) = %q, want %q", c.v, c.width, got, c.want)
		}
	}
}

func TestDec(t *testing.T) {
	cases := map[int]string{
		0:   "0",
		7:   "7",
		25:  "25",
		-13: "-13",
	}
	for v, want := range cases {
		if got := Dec(v); got != want {
			t.Errorf("Dec(%d) = %q, want %q", v, got, want)
		}
	}
}
