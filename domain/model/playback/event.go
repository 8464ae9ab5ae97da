package playback

// 1 回の通知にまとめて載るイベントの集合
type Events uint8

const (
	EventPlaybackStateChanged Events = 1 << iota
	EventIsPlayingChanged
	EventPositionDiscontinuity
)

func (e Events) ContainsAny(events ...Events) bool {
	for _, ev := range events {
		if e&ev != 0 {
			return true
		}
	}
	return false
}
