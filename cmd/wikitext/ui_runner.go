package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wikitext/internal/driver"
	"wikitext/internal/ui"
)

type batchOutcome struct {
	result *driver.BatchResult
	err    error
}

// runParseDirWithUI разбирает директорию под интерактивным прогрессом bubbletea.
func runParseDirWithUI(ctx context.Context, title, dir, ext string, jobs int) (*driver.BatchResult, error) {
	files, err := driver.ListFiles(dir, ext)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &driver.BatchResult{Dir: dir}, nil
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		res, err := driver.ParseDir(ctx, dir, ext, jobs, driver.ChannelSink{Ch: events})
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
