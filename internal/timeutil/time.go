package timeutil

import (
	"fmt"
	"time"
)

// 15.04 形式（フィンランド式の時刻表記）
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15.04")
}

// 番組の放送時間帯 "15.00 - 16.00"
func FormatRange(start time.Time, end time.Time, loc *time.Location) string {
	return FormatClock(start, loc) + " - " + FormatClock(end, loc)
}

// 再生位置を HH:MM:SS にする
// 時は 24 で折り返す
func FormatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	seconds := (ms / 1000) % 60
	minutes := (ms / (1000 * 60)) % 60
	hours := (ms / (1000 * 60 * 60)) % 24
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
