package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"

	"folio/internal/ui/input"
	"folio/internal/ui/input/types"
	"folio/internal/ui/views"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	styles *views.Styles
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(styles *views.Styles) *HelpRenderer {
	return &HelpRenderer{styles: styles}
}

// RenderHelpContent lists the bindings of screen followed by the global ones
func (r *HelpRenderer) RenderHelpContent(keys input.KeyMap, screen types.Screen) string {
	var help strings.Builder

	help.WriteString(r.styles.Title.Render("folio help"))
	help.WriteString("\n")

	sections := []string{screen.Title(), "General"}
	for i, group := range keys.ForScreen(screen).FullHelp() {
		help.WriteString("\n")
		help.WriteString(r.styles.HelpSection.Render(sections[i]))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(r.line(h.Key, h.Desc))
		}
	}

	if mouse := mouseHelp(screen); len(mouse) > 0 {
		help.WriteString("\n")
		help.WriteString(r.styles.HelpSection.Render("Mouse"))
		help.WriteString("\n")
		for _, pair := range mouse {
			help.WriteString(r.line(pair[0], pair[1]))
		}
	}

	return strings.TrimSuffix(help.String(), "\n")
}

// RenderHelpMarkdown lists the same bindings as RenderHelpContent as markdown
func (r *HelpRenderer) RenderHelpMarkdown(keys input.KeyMap, screen types.Screen) string {
	var md strings.Builder
	md.WriteString("# folio help\n")

	sections := []string{screen.Title(), "General"}
	for i, group := range keys.ForScreen(screen).FullHelp() {
		fmt.Fprintf(&md, "\n## %s\n\n| Key | Action |\n|---|---|\n", sections[i])
		for _, b := range group {
			h := b.Help()
			fmt.Fprintf(&md, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	if mouse := mouseHelp(screen); len(mouse) > 0 {
		md.WriteString("\n## Mouse\n\n| Target | Action |\n|---|---|\n")
		for _, pair := range mouse {
			fmt.Fprintf(&md, "| %s | %s |\n", pair[0], pair[1])
		}
	}
	return md.String()
}

// RenderPagerContent renders the markdown help for the pager, falling back to
// the popup text when glamour fails
func (r *HelpRenderer) RenderPagerContent(keys input.KeyMap, screen types.Screen) string {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(80),
	)
	if err == nil {
		var out string
		if out, err = tr.Render(r.RenderHelpMarkdown(keys, screen)); err == nil {
			return out
		}
	}
	log.Printf("Help markdown rendering failed: %v", err)
	return r.RenderHelpContent(keys, screen)
}

func (r *HelpRenderer) line(key, desc string) string {
	return fmt.Sprintf("  %s  %s\n", r.styles.HelpKey.Render(fmt.Sprintf("%-10s", key)), r.styles.HelpDesc.Render(desc))
}

func mouseHelp(screen types.Screen) [][2]string {
	switch screen {
	case types.ScreenCarousel:
		return [][2]string{{"‹ / ›", "previous / next slide"}, {"thumbnail", "jump to slide"}}
	case types.ScreenCalendar:
		return [][2]string{{"‹ / ›", "previous / next month"}}
	default:
		return [][2]string{{"click", "open page"}}
	}
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program reference for terminal management
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// Available reports whether the pager can take over the terminal
func (h *HelpOps) Available() bool {
	return h != nil && h.program != nil
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
