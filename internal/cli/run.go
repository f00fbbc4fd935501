package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"folio/internal/config"
	"folio/internal/eventbus"
	"folio/internal/ui"
	"folio/internal/ui/input/types"
)

// E2EEnv enables the ready marker used by the PTY test driver
const E2EEnv = "FOLIO_E2E_TEST"

// Size of a static frame when stdout has no size
const (
	printWidth  = 80
	printHeight = 24
)

// run loads the configuration, applies command overrides and starts the UI on screen
func run(cmd *cobra.Command, screen types.Screen, override func(*config.Config) error) error {
	closeLog, err := setupLogging(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New()
	defer eventbus.LogEvents(bus)()

	cfg, err := loadConfig(cmd, bus)
	if err != nil {
		return err
	}
	if override != nil {
		if err := override(cfg); err != nil {
			return err
		}
	}

	model := ui.NewModel(bus, cfg,
		ui.WithScreen(screen),
		ui.WithReadyMarker(os.Getenv(E2EEnv) == "1"),
	)
	defer model.Close()

	out := cmd.OutOrStdout()
	printOnly, _ := cmd.Flags().GetBool("print")
	if printOnly || !isTerminal(out) {
		return printFrame(out, model)
	}

	var opts []tea.ProgramOption
	if cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	log.Printf("Starting UI on %s", screen)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

func loadConfig(cmd *cobra.Command, bus eventbus.EventBus) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.NewConfigServiceWithBus(path, bus).Load()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging sends the standard logger to --log, or discards it so nothing
// is written over the UI
func setupLogging(cmd *cobra.Command) (func(), error) {
	path, _ := cmd.Flags().GetString("log")
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "folio")
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	return func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}

// printFrame renders one frame sized to out, in the colors out supports
func printFrame(out io.Writer, model *ui.Model) error {
	width, height := printWidth, printHeight
	if f, ok := out.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			width, height = w, h
		}
	}

	lipgloss.SetColorProfile(termenv.NewOutput(out).EnvColorProfile())
	_, err := fmt.Fprintln(out, model.Render(width, height))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
