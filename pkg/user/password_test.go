package user

import (
	"testing"
)

func TestCheckPasswordTampered(t *testing.T) {
	hash, err := HashPassword("sekret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flipped := append([]byte{}, hash...)
	flipped[len(flipped)-1] ^= 0xff

	cases := map[string][]byte{
		"flipped last byte": flipped,
		"extra byte":        append(append([]byte{}, hash...), 0),
		"missing byte":      hash[:len(hash)-1],
		"salt only":         hash[:saltLen],
	}

	for name, h := range cases {
		if CheckPassword(h, "sekret") {
			t.Errorf("%s: expected hash to be rejected", name)
		}
	}
}
