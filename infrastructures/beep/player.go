package beep

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/playback"
	"github.com/sobadon/wappuradio/domain/repository"
	"github.com/sobadon/wappuradio/internal/errutil"
)

const resampleQuality = 4

type player struct {
	httpClient *http.Client
	out        output

	// open と Close を直列にする
	openMu sync.Mutex

	mu            sync.Mutex
	url           string
	state         playback.State
	playWhenReady bool

	// 再生中のストリーム
	// ctrl.Paused はスピーカーのロック下で触る
	source       beep.StreamSeekCloser
	ctrl         *beep.Ctrl
	counter      *countingStreamer
	streamCancel context.CancelFunc

	// 古いストリームの終了通知を無視するための世代
	generation int

	speakerInitialized bool
	speakerRate        beep.SampleRate

	subs    map[int]chan playback.Events
	nextSub int
}

// mp3 のライブストリームを再生するプレイヤー
// 音源が用意でき次第すぐ鳴らす
func New() repository.Player {
	return newPlayer(&http.Client{}, speakerOutput{})
}

func newPlayer(httpClient *http.Client, out output) *player {
	return &player{
		httpClient:    httpClient,
		out:           out,
		state:         playback.StateIdle,
		playWhenReady: true,
		subs:          make(map[int]chan playback.Events),
	}
}

func (p *player) SetSource(ctx context.Context, url string) error {
	p.mu.Lock()
	p.url = url
	p.mu.Unlock()

	return p.open(ctx)
}

// 接続してデコードを始め、スピーカーに流す
// ctx はログのためだけに使い、キャンセルはストリームに伝えない
// （ストリームは次の open か Close まで生き続ける）
func (p *player) open(ctx context.Context) error {
	p.openMu.Lock()
	defer p.openMu.Unlock()

	p.stopCurrent()

	p.mu.Lock()
	url := p.url
	p.mu.Unlock()
	if url == "" {
		return errors.Wrap(errutil.ErrPlayerSource, "source url is empty")
	}

	p.setState(playback.StateBuffering)
	log.Ctx(ctx).Debug().Msgf("connecting stream ... (url = %s)", url)

	streamCtx, streamCancel := context.WithCancel(context.WithoutCancel(ctx))
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, url, nil)
	if err != nil {
		streamCancel()
		p.setState(playback.StateEnded)
		return errors.Wrap(errutil.ErrPlayerSource, err.Error())
	}

	res, err := p.httpClient.Do(req)
	if err != nil {
		streamCancel()
		p.setState(playback.StateEnded)
		return errors.Wrap(errutil.ErrPlayerSource, err.Error())
	}
	if res.StatusCode < 200 || 300 <= res.StatusCode {
		res.Body.Close()
		streamCancel()
		p.setState(playback.StateEnded)
		return errors.Wrapf(errutil.ErrPlayerSource, "http status is %s", res.Status)
	}

	source, format, err := mp3.Decode(res.Body)
	if err != nil {
		res.Body.Close()
		streamCancel()
		p.setState(playback.StateEnded)
		return errors.Wrap(errutil.ErrAudioDecode, err.Error())
	}

	// スピーカーの初期化は一度きり
	// 以降のストリームはスピーカーのサンプルレートに合わせる
	p.mu.Lock()
	if !p.speakerInitialized {
		err := p.out.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
		if err != nil {
			p.mu.Unlock()
			source.Close()
			streamCancel()
			p.setState(playback.StateEnded)
			return errors.Wrap(errutil.ErrPlayerSource, err.Error())
		}
		p.speakerInitialized = true
		p.speakerRate = format.SampleRate
	}

	var streamer beep.Streamer = source
	if format.SampleRate != p.speakerRate {
		streamer = beep.Resample(resampleQuality, format.SampleRate, p.speakerRate, source)
	}

	p.generation++
	generation := p.generation
	p.source = source
	p.counter = &countingStreamer{Streamer: streamer}
	p.ctrl = &beep.Ctrl{Streamer: p.counter, Paused: !p.playWhenReady}
	p.streamCancel = streamCancel
	ctrl := p.ctrl
	p.mu.Unlock()

	p.out.Play(beep.Seq(ctrl, beep.Callback(func() {
		// スピーカーのロック下で呼ばれるので、ここではロックを取らない
		go p.finish(ctx, generation)
	})))

	p.setState(playback.StateReady)
	log.Ctx(ctx).Info().Msgf("stream started (sample rate = %d)", format.SampleRate)
	return nil
}

// ストリームが終わった（切断・デコード失敗を含む）
func (p *player) finish(ctx context.Context, generation int) {
	p.mu.Lock()
	if generation != p.generation {
		p.mu.Unlock()
		return
	}
	var err error
	if p.source != nil {
		err = p.source.Err()
	}
	p.mu.Unlock()

	if err != nil {
		log.Ctx(ctx).Warn().Msgf("stream ended with error: %s", err)
	} else {
		log.Ctx(ctx).Info().Msg("stream ended")
	}
	p.setState(playback.StateEnded)
}

// 再生中のストリームを止めて捨てる
func (p *player) stopCurrent() {
	p.mu.Lock()
	source := p.source
	cancel := p.streamCancel
	p.generation++
	p.source = nil
	p.ctrl = nil
	p.counter = nil
	p.streamCancel = nil
	p.mu.Unlock()

	if source == nil {
		return
	}

	p.out.Clear()
	p.out.Lock()
	source.Close()
	p.out.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (p *player) Play() {
	p.setPlayWhenReady(true)
}

func (p *player) Pause() {
	p.setPlayWhenReady(false)
}

func (p *player) TogglePlayPause() {
	p.mu.Lock()
	next := !p.playWhenReady
	p.mu.Unlock()
	p.setPlayWhenReady(next)
}

func (p *player) setPlayWhenReady(playWhenReady bool) {
	p.mu.Lock()
	if p.playWhenReady == playWhenReady {
		p.mu.Unlock()
		return
	}
	p.playWhenReady = playWhenReady
	ctrl := p.ctrl
	if ctrl != nil {
		p.out.Lock()
		ctrl.Paused = !playWhenReady
		p.out.Unlock()
	}
	p.notifyLocked(playback.EventIsPlayingChanged)
	p.mu.Unlock()
}

func (p *player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playWhenReady && p.state == playback.StateReady
}

// ライブ配信なので、最新位置に飛ぶ = 接続し直す
// 再生位置は 0 に戻る
func (p *player) SeekToLive(ctx context.Context) error {
	err := p.open(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.notifyLocked(playback.EventPositionDiscontinuity)
	p.mu.Unlock()
	return nil
}

func (p *player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.counter == nil || !p.speakerInitialized {
		return 0
	}
	return p.speakerRate.D(int(p.counter.Samples()))
}

func (p *player) State() playback.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *player) setState(state playback.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == state {
		return
	}
	p.state = state
	p.notifyLocked(playback.EventPlaybackStateChanged)
}

func (p *player) Subscribe() (<-chan playback.Events, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSub
	p.nextSub++
	ch := make(chan playback.Events, 1)
	p.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			if _, ok := p.subs[id]; ok {
				delete(p.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// 購読者が読んでいない通知があれば、それとまとめて 1 つの通知にする
// p.mu を取った状態で呼ぶ
func (p *player) notifyLocked(events playback.Events) {
	for _, ch := range p.subs {
		merged := events
		select {
		case pending := <-ch:
			merged |= pending
		default:
		}
		ch <- merged
	}
}

func (p *player) Close() error {
	p.openMu.Lock()
	defer p.openMu.Unlock()

	p.stopCurrent()
	p.setState(playback.StateIdle)

	p.mu.Lock()
	defer p.mu.Unlock()
	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
	return nil
}
