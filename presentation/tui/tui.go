// Package tui は端末で動くプレイヤー画面
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// 画面を表示し、ユーザーが終了するか ctx がキャンセルされるまで戻らない
func Run(ctx context.Context, controls Controls, sources Sources) error {
	m := newModel(ctx, controls, sources, time.Local)
	defer m.subs.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.WithStack(err)
	}
	return nil
}
