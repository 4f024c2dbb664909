package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"phpfix/internal/driver"
	"phpfix/internal/ui"
)

type fixOutcome struct {
	results []driver.FixResult
	err     error
}

// runFixWithUI runs FixPaths while a progress view consumes its events.
func runFixWithUI(ctx context.Context, title string, paths []string, opts driver.Options) ([]driver.FixResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan fixOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.FixPaths(ctx, paths, optsCopy)
		outcomeCh <- fixOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// если UI завершился раньше, дочитываем события, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
