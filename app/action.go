package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/kicks/internal/config"
	"github.com/ayoisaiah/kicks/internal/logger"
	"github.com/ayoisaiah/kicks/internal/models"
	"github.com/ayoisaiah/kicks/internal/osutil"
	"github.com/ayoisaiah/kicks/internal/pathutil"
	"github.com/ayoisaiah/kicks/internal/timeutil"
	"github.com/ayoisaiah/kicks/internal/ui"
	"github.com/ayoisaiah/kicks/report"
	"github.com/ayoisaiah/kicks/store"
	"github.com/ayoisaiah/kicks/tracker"
	"github.com/ayoisaiah/kicks/tui"
)

const (
	envNoColor      = "NO_COLOR"
	envKicksNoColor = "KICKS_NO_COLOR"
)

var (
	errMissingCategory = errors.New(
		"please specify the category of the movement to record",
	)
	errMissingKey = errors.New(
		"please specify the key of the record to delete",
	)
)

// logCloser releases the log file when the app exits.
var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig resolves the configuration for the current invocation.
func loadConfig(ctx *cli.Context, opts ...config.Option) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	options := append(opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
		config.WithPaths(
			configPath,
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
		),
	)

	cfg, err := config.New(options...)
	if err != nil {
		return nil, err
	}

	closer, err := logger.Init(cfg.System.LogPath, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	logCloser = closer

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// trackerHelper opens the database and returns a controller over it with
// the persisted log loaded.
func trackerHelper(
	ctx *cli.Context,
	view tracker.View,
	opts ...tracker.Option,
) (*tracker.Controller, *config.Config, store.DB, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}

	options := append([]tracker.Option{
		tracker.WithCategories(cfg.Intensities()),
		tracker.WithLogger(slog.Default()),
	}, opts...)

	ctrl := tracker.New(db, view, confirmer(cfg), options...)

	err = ctrl.LoadOnStartup()
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	return ctrl, cfg, db, nil
}

// confirmer returns the confirmation gate for one-shot commands.
func confirmer(cfg *config.Config) tracker.Confirmer {
	if !cfg.Settings.Confirm {
		return tracker.AlwaysConfirm
	}

	return tracker.ConfirmFunc(promptConfirm)
}

// promptConfirm asks a yes/no question on the terminal. Aborting the prompt
// counts as no.
func promptConfirm(message string) bool {
	var ok bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)

	err := form.Run()
	if err != nil {
		return false
	}

	return ok
}

// defaultAction opens the interactive movement log.
func defaultAction(ctx *cli.Context) error {
	_, err := config.New(
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
	)
	if err != nil {
		return err
	}

	ctrl, cfg, db, err := trackerHelper(ctx, tracker.NopView{})
	if err != nil {
		return err
	}

	defer db.Close()

	m, err := tui.New(ctrl, cfg.Settings.Confirm)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m).Run()

	return err
}

// addAction records a single movement.
func addAction(ctx *cli.Context) error {
	category := ctx.Args().First()
	if category == "" {
		return errMissingCategory
	}

	ctrl, _, db, err := trackerHelper(ctx, tracker.NopView{})
	if err != nil {
		return err
	}

	defer db.Close()

	var r models.Record

	if at := ctx.String("at"); at != "" {
		now := timeutil.SystemClock{}.Now()

		t, err := timeutil.FromStr(at, now)
		if err != nil {
			return err
		}

		if !timeutil.SameDay(t, now) {
			slog.Warn(
				"backdated movement falls on another day",
				slog.Time("at", t),
			)
		}

		r, err = ctrl.RecordMovementAt(models.Intensity(category), t)
		if err != nil {
			return err
		}
	} else {
		r, err = ctrl.RecordMovement(models.Intensity(category))
		if err != nil {
			return err
		}
	}

	report.RecordAdded(r)

	return nil
}

// listAction prints the movement log.
func listAction(ctx *cli.Context) error {
	view := &tableView{}

	ctrl, _, db, err := trackerHelper(ctx, view)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("json") {
		return printRecordsJSON(os.Stdout, ctrl.State())
	}

	view.Render(os.Stdout, ctrl.Categories())

	return nil
}

// deleteAction removes a single record after confirmation.
func deleteAction(ctx *cli.Context) error {
	key := ctx.Args().First()
	if key == "" {
		return errMissingKey
	}

	view := &tableView{}

	ctrl, _, db, err := trackerHelper(ctx, view)
	if err != nil {
		return err
	}

	defer db.Close()

	deleted, err := ctrl.DeleteEntry(key)
	if err != nil {
		return err
	}

	if !deleted {
		report.Cancelled()
		return nil
	}

	report.RecordDeleted(key)
	report.Notice(view.tally)

	return nil
}

// clearAction wipes every record after confirmation.
func clearAction(ctx *cli.Context) error {
	ctrl, _, db, err := trackerHelper(ctx, tracker.NopView{})
	if err != nil {
		return err
	}

	defer db.Close()

	cleared, err := ctrl.ClearAll()
	if err != nil {
		return err
	}

	if !cleared {
		report.Cancelled()
		return nil
	}

	report.Cleared()

	return nil
}

// editConfigAction handles the edit-config command which opens the kicks
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/kicks/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if KICKS_NO_COLOR is set
	if _, exists := os.LookupEnv(envKicksNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting kicks")

	if logCloser != nil {
		err := logCloser.Close()
		logCloser = nil

		return err
	}

	return nil
}
