package availability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffective(t *testing.T) {
	free := StatusFree
	occupied := StatusOccupied

	tests := []struct {
		name          string
		base          BaseStatus
		rangeSelected bool
		verdict       *Status
		want          Status
	}{
		{
			name:          "permanently withdrawn dominates a free verdict",
			base:          BaseUnavailable,
			rangeSelected: true,
			verdict:       &free,
			want:          StatusOccupied,
		},
		{
			name:          "permanently withdrawn dominates without a range",
			base:          BaseUnavailable,
			rangeSelected: false,
			want:          StatusOccupied,
		},
		{
			name:          "free verdict passes through",
			base:          BaseOccupied,
			rangeSelected: true,
			verdict:       &free,
			want:          StatusFree,
		},
		{
			name:          "occupied verdict passes through",
			base:          BaseAvailable,
			rangeSelected: true,
			verdict:       &occupied,
			want:          StatusOccupied,
		},
		{
			name:          "range selected without a verdict fails safe to occupied",
			base:          BaseAvailable,
			rangeSelected: true,
			verdict:       nil,
			want:          StatusOccupied,
		},
		{
			name: "no range, available maps to free",
			base: BaseAvailable,
			want: StatusFree,
		},
		{
			name: "no range, occupied maps to occupied",
			base: BaseOccupied,
			want: StatusOccupied,
		},
		{
			name: "no range, reserved maps to occupied",
			base: BaseReserved,
			want: StatusOccupied,
		},
		{
			name: "no range, available_soon maps to occupied",
			base: BaseAvailableSoon,
			want: StatusOccupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Effective(tt.base, tt.rangeSelected, tt.verdict)
			require.Equal(t, tt.want, got)
		})
	}
}
