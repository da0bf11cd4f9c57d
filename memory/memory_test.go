package memory

import "testing"

func TestReadWriteRoundTrip(t *testing.T) {
	m := New()
	tests := []struct {
		addr uint16
		val  uint8
	}{
		{0x0000, 0x00},
		{0x0000, 0xFF},
		{0x00FF, 0x42},
		{0x0100, 0x01},
		{0x01FF, 0xAB},
		{0xFFFF, 0xCD},
		{0x8000, 0x7F},
	}
	for _, tc := range tests {
		m.Write(tc.addr, tc.val)
		if got := m.Read(tc.addr); got != tc.val {
			t.Errorf("Read(%.4X) after Write(%.4X, %.2X) got %.2X want %.2X", tc.addr, tc.addr, tc.val, got, tc.val)
		}
	}
}

func TestWritesDontAlias(t *testing.T) {
	m := New()
	m.Write(0x1234, 0x11)
	m.Write(0x5678, 0x22)
	if got := m.Read(0x1234); got != 0x11 {
		t.Errorf("Read(0x1234) got %.2X want 0x11 - aliasing detected", got)
	}
	if got := m.Read(0x5678); got != 0x22 {
		t.Errorf("Read(0x5678) got %.2X want 0x22 - aliasing detected", got)
	}
}

func TestReset(t *testing.T) {
	m := New()
	m.Write(0x0000, 0xFF)
	m.Write(0x8000, 0xFF)
	m.Write(0xFFFF, 0xFF)
	m.Reset()
	for _, addr := range []uint16{0x0000, 0x8000, 0xFFFF} {
		if got := m.Read(addr); got != 0x00 {
			t.Errorf("after Reset Read(%.4X) got %.2X want 0x00", addr, got)
		}
	}
}
