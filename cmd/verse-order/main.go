package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"verse-order/internal/audio"
	"verse-order/internal/audio/ebiten"
	"verse-order/internal/chapter"
	"verse-order/internal/config"
	"verse-order/internal/game"
	"verse-order/internal/logger"
	"verse-order/internal/settings"
	"verse-order/internal/theme"
	"verse-order/internal/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	log, closer, err := logger.Open(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(log)

	settingsPath := cfg.UI.SettingsFile
	if settingsPath == "" {
		if settingsPath, err = settings.DefaultPath(); err != nil {
			log.Warn("no settings directory, preferences will not be saved", "error", err)
			settingsPath = ""
		}
	}
	prefs, err := settings.Load(settingsPath)
	if err != nil {
		log.Warn("ignoring unreadable settings", "path", settingsPath, "error", err)
	}

	chapterID := firstNonEmpty(prefs.Chapter, cfg.Chapters.Default)
	mode := game.ParseMode(firstNonEmpty(prefs.Mode, cfg.UI.Mode))
	palette := theme.Get(firstNonEmpty(prefs.Theme, cfg.UI.Theme))

	src, err := chapter.Open(cfg.Chapters.Source)
	if err != nil {
		return err
	}
	loader, err := chapter.NewLoader(src, chapter.LoaderOptions{
		MaxCostBytes: cfg.Chapters.CacheMaxBytes,
		TTL:          cfg.Chapters.CacheTTL,
		Logger:       log,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := loader.Close(); err != nil {
			log.Warn("closing chapter loader", "error", err)
		}
	}()

	var backend audio.Backend
	if cfg.Sound.Enabled {
		backend = ebiten.NewBackend(cfg.Sound.SampleRate)
	}
	player := audio.NewPlayer(backend, cfg.Sound.Dir, audio.LogSink(log))

	log.Info("starting", "source", cfg.Chapters.Source, "chapter", chapterID, "mode", mode.String())

	p := tea.NewProgram(
		ui.NewModel(ui.Options{
			Loader:       loader,
			Player:       player,
			Logger:       log,
			Theme:        palette,
			Mode:         mode,
			Chapter:      chapterID,
			FetchTimeout: cfg.Chapters.FetchTimeout,
			SettingsPath: settingsPath,
		}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
