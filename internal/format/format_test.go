package format

import "testing"

func TestFacingString(t *testing.T) {
	want := map[byte]string{0: "down", 1: "up", 2: "north", 3: "south", 4: "west", 5: "east"}
	for code, name := range want {
		got, ok := FacingString(code)
		if !ok || got != name {
			t.Fatalf("FacingString(%d) = %q, %v", code, got, ok)
		}
	}
	for _, code := range []byte{6, 7, 100, 255} {
		if got, ok := FacingString(code); ok {
			t.Fatalf("FacingString(%d) = %q, want no suffix", code, got)
		}
	}
}

func TestSlotIndex(t *testing.T) {
	if got := SlotIndex(0, 0); got != 0 {
		t.Fatalf("SlotIndex(0,0) = %d", got)
	}
	if got := SlotIndex(3, 2); got != 35 {
		t.Fatalf("SlotIndex(3,2) = %d", got)
	}
	if got := SlotIndex(15, 15); got != RegionSlots-1 {
		t.Fatalf("SlotIndex(15,15) = %d", got)
	}
}

func TestLenientU32(t *testing.T) {
	if got := U32([]byte{0x43, 0x49, 0x53, 0x34}); got != Magic {
		t.Fatalf("U32 = %#x", got)
	}
	if got := U32([]byte{0x43, 0x49}); got != 0 {
		t.Fatalf("short U32 = %#x", got)
	}
	if got := U16([]byte{0x01}); got != 0 {
		t.Fatalf("short U16 = %#x", got)
	}
}

func TestPutReadRoundTrip(t *testing.T) {
	b := make([]byte, 8)
	PutU32(b, 0, 0xDEADBEEF)
	PutU16(b, 4, 0x1234)
	if got := ReadU32(b, 0); got != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %#x", got)
	}
	if got := ReadU16(b, 4); got != 0x1234 {
		t.Fatalf("ReadU16 = %#x", got)
	}
}
