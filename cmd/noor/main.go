package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/noorjournal/noor/internal/backup"
	"github.com/noorjournal/noor/internal/cli"
	"github.com/noorjournal/noor/internal/constants"
	"github.com/noorjournal/noor/internal/content"
	"github.com/noorjournal/noor/internal/journal"
	"github.com/noorjournal/noor/internal/keyring"
	"github.com/noorjournal/noor/internal/logger"
	"github.com/noorjournal/noor/internal/storage"
	"github.com/noorjournal/noor/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the single-file JSON store; anything else uses SQLite." default:"~/.config/noor/noor.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd        `cmd:"" help:"Initialize noor storage."`
	Day      cli.DayCmd         `cmd:"" help:"Show the journal for a day." default:"1"`
	Pray     cli.PrayCmd        `cmd:"" help:"Mark a prayer done or not done."`
	Habit    cli.HabitCmd       `cmd:"" help:"Update the quran or workout habit."`
	Skill    cli.SkillCmd       `cmd:"" help:"Update skill practice with optional notes."`
	Diary    cli.DiaryCmd       `cmd:"" help:"Write the day's diary."`
	Hijri    cli.HijriCmd       `cmd:"" help:"Show the Hijri date for a Gregorian date."`
	Inspire  cli.InspireCmd     `cmd:"" help:"Show today's ayah and hadith."`
	Delete   cli.EntryDeleteCmd `cmd:"" help:"Delete an entry by id."`
	Task     struct {
		Add  cli.TaskAddCmd  `cmd:"" help:"Add a task to a day."`
		Done cli.TaskDoneCmd `cmd:"" help:"Toggle a task's done state."`
		Rm   cli.TaskRmCmd   `cmd:"" help:"Remove a task."`
	} `cmd:"" help:"Manage a day's checklist."`
	Settings struct {
		Show  cli.SettingsShowCmd  `cmd:"" help:"Show current settings." default:"1"`
		Set   cli.SettingsSetCmd   `cmd:"" help:"Update settings fields."`
		Alarm cli.SettingsAlarmCmd `cmd:"" help:"Update one prayer alarm."`
		Reset cli.SettingsResetCmd `cmd:"" help:"Restore default settings."`
	} `cmd:"" help:"Manage application settings."`
	Tasbeeh  struct {
		Count cli.TasbeehCountCmd `cmd:"" help:"Run an interactive counting session."`
		Log   cli.TasbeehLogCmd   `cmd:"" help:"Show recent counting sessions." default:"1"`
	} `cmd:"" help:"Count dhikr and review session history."`
	Export   cli.ExportCmd  `cmd:"" help:"Export all entries to a JSON backup file."`
	Restore  cli.RestoreCmd `cmd:"" help:"Replace all entries from a JSON backup file."`
	Backup   struct {
		Create cli.BackupCreateCmd `cmd:"" help:"Create a timestamped backup." default:"1"`
		List   cli.BackupListCmd   `cmd:"" help:"List available backups."`
	} `cmd:"" help:"Manage automatic backups."`
	Apikey   struct {
		Set   cli.APIKeySetCmd   `cmd:"" help:"Store the Gemini API key in the OS keyring."`
		Clear cli.APIKeyClearCmd `cmd:"" help:"Remove the stored Gemini API key."`
	} `cmd:"" help:"Manage the Gemini API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily Islamic journal: prayers, habits, reflections, and tasbeeh"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := utils.ExpandHome(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	kv := storage.Select(configPath)
	appCtx := &cli.Context{KV: kv}

	// Everything except init runs against loaded storage.
	if ctx.Selected() == nil || ctx.Selected().Name != "init" {
		if err := buildContext(appCtx, kv, configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer kv.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildContext(appCtx *cli.Context, kv storage.KV, configPath string) error {
	if err := kv.Load(); err != nil {
		return err
	}

	entries, err := journal.NewEntryStore(kv)
	if err != nil {
		return err
	}
	settings, err := journal.NewSettingsStore(kv)
	if err != nil {
		return err
	}
	tasbeeh, err := journal.NewTasbeehLog(kv)
	if err != nil {
		return err
	}

	appCtx.Entries = entries
	appCtx.Settings = settings
	appCtx.Tasbeeh = tasbeeh
	appCtx.Backups = backup.NewManager(entries, configPath)

	// Resolution chains: remote/AI tiers are optional extras in front of
	// the local tiers, and only join the chain when a Gemini key exists.
	hijriSources := []content.HijriSource{content.NewAladhanSource()}
	inspirationSources := []content.InspirationSource{}

	if apiKey, err := keyring.GetAPIKey(); err == nil {
		gemini, gerr := content.NewGeminiClient(context.Background(), apiKey)
		if gerr != nil {
			logger.Warn("gemini client unavailable", "error", gerr)
		} else {
			hijriSources = append(hijriSources, content.NewGeminiHijriSource(gemini))
			inspirationSources = append(inspirationSources, content.NewGeminiInspirationSource(gemini))
		}
	} else if !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("gemini api key lookup failed", "error", err)
	}

	hijriSources = append(hijriSources, content.LocalHijriSource{})
	inspirationSources = append(inspirationSources, content.NewProviderPairSource())

	appCtx.Hijri = content.NewHijriResolver(content.NewHijriDateCache(kv), hijriSources...)
	appCtx.Inspiration = content.NewInspirationResolver(content.NewInspirationCache(kv), inspirationSources...)

	return nil
}
