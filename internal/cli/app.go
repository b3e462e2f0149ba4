package cli

import (
	"errors"
	"io"
	"os"

	"colorkit/internal/clipboard"
	"colorkit/internal/config"
	"colorkit/internal/metrics"
	"colorkit/internal/ui"
)

// App carries the dependencies shared by all commands.
type App struct {
	Config  *config.Config
	Metrics *metrics.Metrics
	Copier  clipboard.Copier
	Version string
}

// Execute loads configuration, runs the command line and returns the exit code.
func Execute(version string) int {
	cfg := config.Load()
	ui.SetDebug(cfg.Env.Verbose())

	if err := cfg.Validate(); err != nil {
		ui.LogStatus("error", err.Error())
		return 1
	}

	app := &App{
		Config:  cfg,
		Metrics: metrics.New(),
		Copier:  clipboard.System{},
		Version: version,
	}

	return app.Run(os.Args[1:])
}

// Run executes one command line, flushes metrics and reports any failure.
func (app *App) Run(args []string) int {
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)

	err := cmd.Execute()
	app.flushMetrics()
	if err != nil {
		ui.ErrorNote(err.Error())
		return 1
	}
	return 0
}

func (app *App) flushMetrics() {
	path := app.Config.MetricsFile
	if path == "" {
		return
	}
	if err := app.Metrics.WriteTextfile(path); err != nil {
		ui.LogStatus("warning", "Could not write metrics: "+err.Error())
		return
	}
	ui.LogStatus("debug", "Metrics written to "+path)
}

// copyText sends text to the clipboard. Failure is reported but not fatal:
// the result has already been printed.
func (app *App) copyText(text, what string) {
	err := app.Copier.Copy(text)
	app.Metrics.ObserveClipboard(err)
	if errors.Is(err, clipboard.ErrUnsupported) {
		ui.WarningNote("No clipboard utility found. Install xclip, xsel or wl-clipboard to use --copy.")
		return
	}
	if err != nil {
		ui.LogStatus("warning", "Could not copy "+what+": "+err.Error())
		return
	}
	ui.LogStatus("success", "Copied "+what+" to clipboard")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
