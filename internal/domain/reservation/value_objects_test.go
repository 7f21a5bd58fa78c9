//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"petboard/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) string {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC).Format(reservation.DateLayout)
}

func mustRange(t *testing.T, startDay, endDay int) reservation.DateRange {
	t.Helper()
	r, err := reservation.ParseDateRange(day(startDay), day(endDay))
	require.NoError(t, err)
	return r
}

func TestParseDateRange(t *testing.T) {
	t.Run("正常な範囲OK", func(t *testing.T) {
		r, err := reservation.ParseDateRange("2025-06-02", "2025-06-05")
		require.NoError(t, err)
		assert.Equal(t, 4, r.Days())
	})

	t.Run("開始日と終了日が同じ日OK（1日だけの予約）", func(t *testing.T) {
		r, err := reservation.ParseDateRange("2025-06-02", "2025-06-02")
		require.NoError(t, err)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("開始日が終了日より後NG", func(t *testing.T) {
		_, err := reservation.ParseDateRange("2025-06-05", "2025-06-02")
		assert.ErrorIs(t, err, reservation.ErrInvalidRange)
	})

	t.Run("日付形式が不正NG", func(t *testing.T) {
		cases := [][2]string{
			{"2025/06/02", "2025-06-05"},
			{"2025-06-02", "not-a-date"},
			{"", "2025-06-05"},
			{"2025-06-02T00:00:00Z", "2025-06-05"},
		}
		for _, c := range cases {
			_, err := reservation.ParseDateRange(c[0], c[1])
			assert.ErrorIs(t, err, reservation.ErrMalformedDate, "start=%q end=%q", c[0], c[1])
		}
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    [2]int
		b    [2]int
		want bool
	}{
		{name: "境界が接する場合は重複扱い ([2,5] vs [5,8])", a: [2]int{2, 5}, b: [2]int{5, 8}, want: true},
		{name: "離れた区間は重複しない ([2,5] vs [6,8])", a: [2]int{2, 5}, b: [2]int{6, 8}, want: false},
		{name: "完全に包含する区間", a: [2]int{1, 10}, b: [2]int{3, 4}, want: true},
		{name: "部分的に重なる区間", a: [2]int{3, 7}, b: [2]int{5, 9}, want: true},
		{name: "同一区間", a: [2]int{3, 7}, b: [2]int{3, 7}, want: true},
		{name: "1日予約同士が同日", a: [2]int{4, 4}, b: [2]int{4, 4}, want: true},
		{name: "開始側で接する場合も重複扱い", a: [2]int{5, 8}, b: [2]int{2, 5}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustRange(t, tc.a[0], tc.a[1])
			b := mustRange(t, tc.b[0], tc.b[1])

			assert.Equal(t, tc.want, a.Overlaps(b))
			// 重複判定は対称
			assert.Equal(t, tc.want, b.Overlaps(a))
		})
	}
}

func TestDateRangeString(t *testing.T) {
	r := mustRange(t, 2, 5)
	assert.Equal(t, "2025-06-02/2025-06-05", r.String())
}
