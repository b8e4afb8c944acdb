package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielolaszy/issuetable/internal/logging"
	"github.com/danielolaszy/issuetable/internal/table"
)

// Run shows the issue table for repository until the user quits or ctx is done.
// Log output is discarded while the program owns the terminal.
func Run(ctx context.Context, fetcher table.Fetcher, repository string, initial table.State) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logging.Discard()

	sorts := make(chan table.SortEvent)
	pages := make(chan table.PageEvent)

	m := New(ctx, repository, initial, sorts, pages)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	controller := table.NewController(fetcher, initial, table.OnUpdate(func(s table.Snapshot) {
		// Send blocks until the program reads the message; never hold up the
		// controller on it.
		go p.Send(MsgSnapshot{Snapshot: s})
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = controller.Run(ctx, sorts, pages)
	}()

	_, err := p.Run()
	cancel()
	<-done

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
