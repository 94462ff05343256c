//go:build unit

package worker

import (
	"testing"
	"time"

	"raffle-engine/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLifecycleSweeper(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name       string
		activateAt string
		closeAt    string
		wantErr    bool
	}{
		{"正常: HH:MM形式", "09:00", "00:05", false},
		{"異常: 活性化時刻の形式不正", "9am", "00:05", true},
		{"異常: クローズ時刻の形式不正", "09:00", "25:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLifecycleSweeper(nil, clk, tt.activateAt, tt.closeAt)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUntilNext(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		at   string
		want time.Duration
	}{
		{
			name: "当日のこれからの時刻まで待つ",
			now:  time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
			at:   "09:00",
			want: 30 * time.Minute,
		},
		{
			name: "過ぎた時刻は翌日まで待つ",
			now:  time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			at:   "09:00",
			want: 23*time.Hour + 30*time.Minute,
		},
		{
			name: "ちょうど時刻上なら丸一日待つ",
			now:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			at:   "09:00",
			want: 24 * time.Hour,
		},
		{
			name: "秒の端数も含めて計算する",
			now:  time.Date(2026, 3, 1, 8, 59, 30, 0, time.UTC),
			at:   "09:00",
			want: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, untilNext(tt.now, tt.at))
		})
	}
}
