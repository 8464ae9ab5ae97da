package nowplaying

// 今流れている曲
type NowPlaying struct {
	// "Artist - Title" のような 1 行の文字列
	Song string
}
