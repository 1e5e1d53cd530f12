package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"verse-order/internal/chapter"
	"verse-order/internal/game"
	"verse-order/internal/settings"
)

const defaultFetchTimeout = 10 * time.Second

// ChapterLoader is the part of chapter.Loader the UI needs.
type ChapterLoader interface {
	Load(ctx context.Context, id string) (chapter.Chapter, error)
	List(ctx context.Context) ([]string, error)
}

type chaptersListedMsg struct{ ids []string }

type listFailedMsg struct{ err error }

type chapterLoadedMsg struct {
	generation uint64
	mode       game.Mode
	chapter    chapter.Chapter
}

type chapterFailedMsg struct {
	generation uint64
	id         string
	err        error
}

type settingsSavedMsg struct{ err error }

func listChapters(loader ChapterLoader, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		ids, err := loader.List(ctx)
		if err != nil {
			return listFailedMsg{err}
		}
		return chaptersListedMsg{ids}
	}
}

func loadChapter(loader ChapterLoader, id string, mode game.Mode, generation uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		ch, err := loader.Load(ctx, id)
		if err != nil {
			return chapterFailedMsg{generation: generation, id: id, err: err}
		}
		return chapterLoadedMsg{generation: generation, mode: mode, chapter: ch}
	}
}

func saveSettings(path string, s settings.Settings) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		return settingsSavedMsg{settings.Save(path, s)}
	}
}
