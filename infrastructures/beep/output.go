package beep

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// 音の出口
// テストでは本物のスピーカーを使わないよう差し替える
type output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

// speaker.Clear は内部でロックを取るので、Lock 中に呼ばないこと
func (speakerOutput) Clear() {
	speaker.Clear()
}

func (speakerOutput) Lock() {
	speaker.Lock()
}

func (speakerOutput) Unlock() {
	speaker.Unlock()
}
