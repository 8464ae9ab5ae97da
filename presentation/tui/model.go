package tui

import (
	"context"
	"regexp"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/domain/model/program"
	"github.com/sobadon/wappuradio/internal/latest"
)

// 再生操作
type Controls interface {
	TogglePlayPause()
	SeekToLive(ctx context.Context) error
	IsPlaying() bool
}

// 画面に出す値の出どころ
type Sources struct {
	NowPlaying *latest.Cell[*nowplaying.NowPlaying]
	Program    *latest.Cell[*program.Program]
	Loading    *latest.Cell[bool]
	Elapsed    *latest.Cell[time.Duration]
}

type nowPlayingMsg struct{ np *nowplaying.NowPlaying }
type programMsg struct{ pgram *program.Program }
type loadingMsg struct{ loading bool }
type elapsedMsg struct{ elapsed time.Duration }
type seekDoneMsg struct{ err error }

var whitespaces = regexp.MustCompile(`\s+`)

type subscriptions struct {
	nowPlaying <-chan *nowplaying.NowPlaying
	program    <-chan *program.Program
	loading    <-chan bool
	elapsed    <-chan time.Duration
	cancels    []func()
}

type model struct {
	ctx      context.Context
	controls Controls
	subs     *subscriptions
	loc      *time.Location

	width int

	nowPlaying *nowplaying.NowPlaying
	program    *program.Program
	loading    bool
	elapsed    time.Duration
	playing    bool
	seekErr    error

	spinner spinner.Model
}

func newModel(ctx context.Context, controls Controls, sources Sources, loc *time.Location) model {
	subs := &subscriptions{}
	var cancel func()
	subs.nowPlaying, cancel = sources.NowPlaying.Subscribe()
	subs.cancels = append(subs.cancels, cancel)
	subs.program, cancel = sources.Program.Subscribe()
	subs.cancels = append(subs.cancels, cancel)
	subs.loading, cancel = sources.Loading.Subscribe()
	subs.cancels = append(subs.cancels, cancel)
	subs.elapsed, cancel = sources.Elapsed.Subscribe()
	subs.cancels = append(subs.cancels, cancel)

	return model{
		ctx:      ctx,
		controls: controls,
		subs:     subs,
		loc:      loc,
		playing:  controls.IsPlaying(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
	}
}

func (s *subscriptions) cancel() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

// 購読チャネルが閉じられたら何もしない（nil を返すと次の待ちは仕掛けられない）
func listen[T any, M tea.Msg](ch <-chan T, wrap func(T) M) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(v)
	}
}

func (m model) listenNowPlaying() tea.Cmd {
	return listen(m.subs.nowPlaying, func(np *nowplaying.NowPlaying) nowPlayingMsg { return nowPlayingMsg{np} })
}

func (m model) listenProgram() tea.Cmd {
	return listen(m.subs.program, func(pgram *program.Program) programMsg { return programMsg{pgram} })
}

func (m model) listenLoading() tea.Cmd {
	return listen(m.subs.loading, func(loading bool) loadingMsg { return loadingMsg{loading} })
}

func (m model) listenElapsed() tea.Cmd {
	return listen(m.subs.elapsed, func(elapsed time.Duration) elapsedMsg { return elapsedMsg{elapsed} })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.listenNowPlaying(),
		m.listenProgram(),
		m.listenLoading(),
		m.listenElapsed(),
		m.spinner.Tick,
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nowPlayingMsg:
		m.nowPlaying = msg.np
		return m, m.listenNowPlaying()
	case programMsg:
		m.program = msg.pgram
		return m, m.listenProgram()
	case loadingMsg:
		m.loading = msg.loading
		m.playing = m.controls.IsPlaying()
		return m, m.listenLoading()
	case elapsedMsg:
		m.elapsed = msg.elapsed
		m.playing = m.controls.IsPlaying()
		return m, m.listenElapsed()
	case seekDoneMsg:
		m.seekErr = msg.err
		m.playing = m.controls.IsPlaying()
		if msg.err != nil {
			log.Ctx(m.ctx).Error().Msgf("%+v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case " ", "space", "p":
			m.controls.TogglePlayPause()
			m.playing = m.controls.IsPlaying()
		case "l":
			return m, m.seekToLive()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// 接続し直すのでブロックする
// tea.Cmd として別の goroutine で実行させる
func (m model) seekToLive() tea.Cmd {
	ctx := m.ctx
	controls := m.controls
	return func() tea.Msg {
		return seekDoneMsg{err: controls.SeekToLive(ctx)}
	}
}

// 説明文の改行や連続した空白を 1 つの空白にまとめる
func compactDesc(desc string) string {
	return whitespaces.ReplaceAllString(desc, " ")
}
