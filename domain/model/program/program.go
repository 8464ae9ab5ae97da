package program

import (
	"sort"
	"time"
)

// 番組表の 1 枠
// Start <= End であることは配信元を信用する（ここでは検証しない）
type Program struct {
	ID string

	// 番組の開始・終了日時
	Start time.Time
	End   time.Time

	// 番組タイトル
	Title string

	// 出演者（"Äänessä"）
	Host string

	// プロデューサー（"Tuottaja"）
	Prod string

	// 番組説明
	// 改行や連続した空白を含むことがある
	Desc string

	// 番組画像と、そのサムネイルの URL
	Photo string
	Thumb string

	// 配信元での更新日時？
	Timestamp time.Time

	Name string
}

// t が [Start, End] に含まれるか（両端含む）
func (p Program) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// 開始日時の昇順に並べた新しいスライスを返す
// 開始日時が同じもの同士の順序は元の順序を保つ
func SortByStart(pgrams []Program) []Program {
	sorted := make([]Program, len(pgrams))
	copy(sorted, pgrams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}

// now に放送中の番組を先頭から探す
// 時間帯が重なっている番組があれば先に見つかったほうを返す
// 見つからなければ nil
func FindCurrent(schedule []Program, now time.Time) *Program {
	for i := range schedule {
		if schedule[i].Contains(now) {
			pgram := schedule[i]
			return &pgram
		}
	}
	return nil
}
