package playback

// プレイヤーの再生状態
type State int

const (
	StateIdle State = iota
	StateBuffering
	StateReady
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuffering:
		return "buffering"
	case StateReady:
		return "ready"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}
