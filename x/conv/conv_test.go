package conv

import "testing"

func TestAppendUintInt(t *testing.T) {
	if got := string(AppendUint(nil, 0)); got != "0" {
		t.Fatalf("AppendUint(0) = %q", got)
	}
	if got := string(AppendUint(nil, 65535)); got != "65535" {
		t.Fatalf("AppendUint(65535) = %q", got)
	}
	if got := string(AppendInt(nil, -42)); got != "-42" {
		t.Fatalf("AppendInt(-42) = %q", got)
	}
	// appends after existing content
	if got := string(AppendInt([]byte("n="), 7)); got != "n=7" {
		t.Fatalf("AppendInt append = %q", got)
	}
}

func TestAppendHex(t *testing.T) {
	if got := string(AppendHex(nil, 0, false)); got != "0" {
		t.Fatalf("AppendHex(0) = %q", got)
	}
	if got := string(AppendHex(nil, 0xbeef, false)); got != "beef" {
		t.Fatalf("AppendHex lower = %q", got)
	}
	if got := string(AppendHex(nil, 0xbeef, true)); got != "BEEF" {
		t.Fatalf("AppendHex upper = %q", got)
	}
}

func TestAppendHexPad(t *testing.T) {
	if got := string(AppendHexPad(nil, 0xB, 8)); got != "0000000B" {
		t.Fatalf("AppendHexPad = %q", got)
	}
	if got := string(AppendHexPad(nil, 0x123456789, 8)); got != "123456789" {
		t.Fatalf("AppendHexPad wide value = %q", got)
	}
}
