package apischema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckRange(t *testing.T) {
	tests := []struct {
		kind    Kind
		value   any
		lo, hi  *float64
		message string
	}{
		{kind: KindNumber, value: 5.0, lo: Float(0), hi: Float(10)},
		{kind: KindNumber, value: 0.0, lo: Float(0), hi: Float(10)},
		{kind: KindNumber, value: 10.0, lo: Float(0), hi: Float(10)},
		{kind: KindNumber, value: -0.5, lo: Float(0), hi: Float(10), message: "must be between 0 and 10"},
		{kind: KindNumber, value: 10.5, lo: Float(0), hi: Float(10), message: "must be between 0 and 10"},
		{kind: KindNumber, value: 1.0, lo: Float(1.5), message: "must be at least 1.5"},
		{kind: KindNumber, value: 1e9, lo: Float(1.5)},
		{kind: KindNumber, value: 3.0, hi: Float(2), message: "must be at most 2"},
		{kind: KindString, value: "ab", lo: Float(3), message: "must be at least 3 characters"},
		{kind: KindString, value: "日本語", lo: Float(3), hi: Float(3)},
		{kind: KindString, value: "", hi: Float(0)},
		{kind: KindArray, value: []any{1, 2, 3}, hi: Float(2), message: "must be at most 2 items"},
		{kind: KindArray, value: []any{}, lo: Float(1), hi: Float(4), message: "must be between 1 and 4 items"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s:%v", tt.kind, tt.value), func(t *testing.T) {
			err := checkRange(tt.kind, tt.value, tt.lo, tt.hi)
			if tt.message == "" {
				require.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			require.Equal(t, string(CodeOutOfRange), err.Code())
			require.Equal(t, tt.message, err.Error())
		})
	}
}
