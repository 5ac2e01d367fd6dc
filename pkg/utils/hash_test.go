package utils

import "testing"

func TestHashString(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashString("abc"); got != want {
		t.Fatalf("HashString(abc) = %s, want %s", got, want)
	}
}

func TestShortHash(t *testing.T) {
	got := ShortHash("1234567890")
	if len(got) != shortHashLen {
		t.Fatalf("expected %d chars, got %q", shortHashLen, got)
	}
	if got != HashString("1234567890")[:shortHashLen] {
		t.Fatalf("short hash is not a prefix of the full hash")
	}
}
