package history

import "time"

// 聴いた曲の記録 1 件
type Entry struct {
	UUID    string
	Song    string
	HeardAt time.Time
}
