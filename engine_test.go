package rescueline

import "testing"

func TestNewOutputsRowSize(t *testing.T) {

	tests := []struct {
		rowSize   int
		expectErr bool
	}{
		{4, true},
		{0, true},
		{5, false},
		{84, false},
	}

	for _, tc := range tests {
		_, err := NewOutputs([]float32{}, tc.rowSize)

		if tc.expectErr && err == nil {
			t.Errorf("expected error for row size %d, got none", tc.rowSize)
		}

		if !tc.expectErr && err != nil {
			t.Errorf("unexpected error for row size %d: %v", tc.rowSize, err)
		}
	}
}

func TestOutputsRows(t *testing.T) {

	buf := []float32{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}

	outputs, err := NewOutputs(buf, 6)

	if err != nil {
		t.Fatalf("failed to create outputs: %v", err)
	}

	if outputs.NumPredictions() != 2 {
		t.Errorf("expected 2 predictions, got %d", outputs.NumPredictions())
	}

	rows := outputs.Rows()

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0][0] != 1 || rows[0][5] != 6 {
		t.Errorf("first row incorrect: %v", rows[0])
	}

	if rows[1][0] != 7 || rows[1][5] != 12 {
		t.Errorf("second row incorrect: %v", rows[1])
	}
}

func TestOutputsRowsPartialTrailing(t *testing.T) {

	buf := []float32{1, 2, 3, 4, 5, 6, 7, 8}

	outputs, err := NewOutputs(buf, 6)

	if err != nil {
		t.Fatalf("failed to create outputs: %v", err)
	}

	rows := outputs.Rows()

	if len(rows) != 2 {
		t.Fatalf("expected full row plus partial trailing row, got %d rows",
			len(rows))
	}

	if len(rows[1]) != 2 {
		t.Errorf("expected trailing row of 2 values, got %d", len(rows[1]))
	}
}

func TestOutputsRowsEmpty(t *testing.T) {

	outputs, err := NewOutputs(nil, 6)

	if err != nil {
		t.Fatalf("failed to create outputs: %v", err)
	}

	if rows := outputs.Rows(); rows != nil {
		t.Errorf("expected nil rows for empty buffer, got %d rows", len(rows))
	}
}
