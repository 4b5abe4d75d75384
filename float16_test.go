package rescueline

import "testing"

func TestConvertFloat16BufferToFloat32(t *testing.T) {

	// float16 bit patterns with exact float32 representations
	tests := []struct {
		bits     uint16
		expected float32
	}{
		{0x0000, 0.0},
		{0x3C00, 1.0},
		{0x4000, 2.0},
		{0x3800, 0.5},
		{0xC000, -2.0},
		{0x7BFF, 65504.0}, // largest normal float16
	}

	buf := make([]uint16, len(tests))

	for i, tc := range tests {
		buf[i] = tc.bits
	}

	converted := convertFloat16BufferToFloat32(buf)

	if len(converted) != len(tests) {
		t.Fatalf("expected %d values, got %d", len(tests), len(converted))
	}

	for i, tc := range tests {
		if converted[i] != tc.expected {
			t.Errorf("bits 0x%04X: expected %f, got %f",
				tc.bits, tc.expected, converted[i])
		}
	}
}

func TestNewOutputsFloat16(t *testing.T) {

	// one prediction row of fp16 values
	buf := []uint16{0x3800, 0x3800, 0x3C00, 0x3C00, 0x3C00, 0x0000}

	outputs, err := NewOutputsFloat16(buf, 6)

	if err != nil {
		t.Fatalf("failed to create outputs: %v", err)
	}

	expected := []float32{0.5, 0.5, 1.0, 1.0, 1.0, 0.0}

	for i, want := range expected {
		if outputs.BufFloat[i] != want {
			t.Errorf("value %d: expected %f, got %f", i, want, outputs.BufFloat[i])
		}
	}
}
