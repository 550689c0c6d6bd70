package validators

import "testing"

func TestParseHM(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12:5", 0, true},
		{"12", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
		{"-1:00", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseHM(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseHM(%q) = %d, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHM(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHM(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestValidateWindow(t *testing.T) {
	if err := ValidateWindow("09:00", "18:00"); err != nil {
		t.Errorf("ValidateWindow(09:00, 18:00) error = %v", err)
	}
	if err := ValidateWindow("18:00", "09:00"); err == nil {
		t.Errorf("inverted window accepted")
	}
	if err := ValidateWindow("10:00", "10:00"); err == nil {
		t.Errorf("empty window accepted")
	}
	if err := ValidateWindow("nope", "18:00"); err == nil {
		t.Errorf("malformed start accepted")
	}
}
