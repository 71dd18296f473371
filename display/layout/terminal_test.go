package layout

import (
	"errors"
	"testing"
)

func TestDetectWidth(t *testing.T) {
	prev := getSize
	defer func() { getSize = prev }()

	tests := []struct {
		name    string
		size    func(uintptr) (int, int, error)
		columns string
		want    int
	}{
		{
			name: "tty width wins",
			size: func(uintptr) (int, int, error) { return 132, 40, nil },
			want: 132,
		},
		{
			name:    "COLUMNS fallback",
			size:    func(uintptr) (int, int, error) { return 0, 0, errors.New("not a tty") },
			columns: "100",
			want:    100,
		},
		{
			name:    "invalid COLUMNS ignored",
			size:    func(uintptr) (int, int, error) { return 0, 0, errors.New("not a tty") },
			columns: "wide",
			want:    FallbackWidth,
		},
		{
			name: "zero tty width ignored",
			size: func(uintptr) (int, int, error) { return 0, 0, nil },
			want: FallbackWidth,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getSize = tt.size
			if got := detectWidth(1, tt.columns); got != tt.want {
				t.Fatalf("detectWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}
