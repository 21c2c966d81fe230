package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/services"
	"github.com/bozothegeek/pegasus-frontend/internal/theme"
)

type editorMode int

const (
	modeBrowse editorMode = iota
	modeCaptureAdd
	modeCaptureReplace
	modeConfirmReset
)

// keyRow is one line of the binding table
type keyRow struct {
	Codes []domain.KeyCode
	Event domain.KeyEvent
	Label string
	Names []string
}

// KeyEditorModel is the bubbletea model of the binding editor.
// Rows are rebuilt from the registry on every change notification.
type KeyEditorModel struct {
	ctx      context.Context
	devMode  bool
	editor   *services.KeyEditorService
	eventIdx int
	help     help.Model
	keyIdx   int
	keys     EditorKeys
	mode     editorMode
	rows     []keyRow
	status   string
	sub      *services.Subscription
}

// NewKeyEditorModel creates the editor view and subscribes it to the registry
func NewKeyEditorModel(ctx context.Context, editor *services.KeyEditorService, devMode bool) *KeyEditorModel {
	m := &KeyEditorModel{
		ctx:     ctx,
		devMode: devMode,
		editor:  editor,
		help:    help.New(),
		keys:    NewEditorKeys(),
	}
	m.rebuildRows()
	m.sub = editor.Subscribe(m.rebuildRows)
	return m
}

// Close unsubscribes the view from the registry
func (m *KeyEditorModel) Close() {
	m.sub.Unsubscribe()
}

func (m *KeyEditorModel) Init() tea.Cmd {
	return nil
}

func (m *KeyEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeCaptureAdd, modeCaptureReplace:
			return m.updateCapture(msg)
		case modeConfirmReset:
			return m.updateConfirmReset(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *KeyEditorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.eventIdx > 0 {
			m.eventIdx--
			m.keyIdx = 0
		}
	case key.Matches(msg, m.keys.Down):
		if m.eventIdx < len(m.rows)-1 {
			m.eventIdx++
			m.keyIdx = 0
		}
	case key.Matches(msg, m.keys.Left):
		if m.keyIdx > 0 {
			m.keyIdx--
		}
	case key.Matches(msg, m.keys.Right):
		if m.keyIdx < len(m.selectedRow().Codes)-1 {
			m.keyIdx++
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeCaptureAdd
	case key.Matches(msg, m.keys.Replace):
		if _, ok := m.selectedCode(); ok {
			m.mode = modeCaptureReplace
		}
	case key.Matches(msg, m.keys.Delete):
		if code, ok := m.selectedCode(); ok {
			m.editor.DelKey(m.ctx, m.eventIdx, code)
			m.status = m.persistStatus(fmt.Sprintf("Removed %s", m.editor.KeyName(code)))
		}
	case key.Matches(msg, m.keys.Reset):
		m.mode = modeConfirmReset
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// updateCapture hands the pressed key to the registry as raw input
func (m *KeyEditorModel) updateCapture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode
	m.mode = modeBrowse

	if key.Matches(msg, m.keys.Cancel) {
		m.status = "Cancelled"
		return m, nil
	}

	logging.Logger.Debug("Captured key", "key", msg.String(), "event", domain.KeyEvent(m.eventIdx))

	before := len(m.selectedRow().Codes)
	if mode == modeCaptureAdd {
		m.editor.AddKey(m.ctx, m.eventIdx, msg)
	} else if code, ok := m.selectedCode(); ok {
		m.editor.ReplaceKey(m.ctx, m.eventIdx, code, msg)
	}

	switch {
	case mode == modeCaptureAdd && len(m.selectedRow().Codes) == before:
		m.status = fmt.Sprintf("%q not added", msg.String())
	default:
		m.status = m.persistStatus("Saved")
	}

	return m, nil
}

func (m *KeyEditorModel) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse

	if msg.String() != "y" && msg.String() != "Y" {
		m.status = "Reset cancelled"
		return m, nil
	}

	m.editor.ResetKeys(m.ctx)
	m.status = m.persistStatus("Key bindings reset to defaults")
	return m, nil
}

func (m *KeyEditorModel) persistStatus(ok string) string {
	if err := m.editor.PersistError(); err != nil {
		return "Error: " + err.Error()
	}
	return ok
}

func (m *KeyEditorModel) rebuildRows() {
	rows := make([]keyRow, m.editor.EventCount())
	for i := range rows {
		event := domain.KeyEvent(i)
		codes := m.editor.KeyCodesOf(i)
		names := make([]string, len(codes))
		for j, code := range codes {
			names[j] = m.editor.KeyName(code)
		}
		rows[i] = keyRow{Codes: codes, Event: event, Label: event.Label(), Names: names}
	}
	m.rows = rows

	if n := len(m.selectedRow().Codes); m.keyIdx >= n {
		m.keyIdx = max(n-1, 0)
	}
}

func (m *KeyEditorModel) selectedRow() keyRow {
	if m.eventIdx < 0 || m.eventIdx >= len(m.rows) {
		return keyRow{}
	}
	return m.rows[m.eventIdx]
}

func (m *KeyEditorModel) selectedCode() (domain.KeyCode, bool) {
	row := m.selectedRow()
	if m.keyIdx < 0 || m.keyIdx >= len(row.Codes) {
		return 0, false
	}
	return row.Codes[m.keyIdx], true
}

func (m *KeyEditorModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.devMode, "Key bindings"))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		selected := i == m.eventIdx
		if selected {
			b.WriteString(theme.CursorStyle.Render("> "))
			b.WriteString(theme.SelectedEventLabelStyle.Render(row.Label))
		} else {
			b.WriteString("  ")
			b.WriteString(theme.EventLabelStyle.Render(row.Label))
		}
		b.WriteString(m.renderKeys(row, selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m *KeyEditorModel) renderKeys(row keyRow, selected bool) string {
	if len(row.Codes) == 0 {
		return theme.UnboundStyle.Render("(none)")
	}

	parts := make([]string, len(row.Codes))
	for j, code := range row.Codes {
		style := theme.KeyboardKeyStyle
		if code.IsGamepad() {
			style = theme.GamepadKeyStyle
		}
		if selected && j == m.keyIdx {
			style = theme.SelectedKeyStyle
		}
		parts[j] = style.Render(row.Names[j])
	}
	return strings.Join(parts, ", ")
}

func (m *KeyEditorModel) renderStatus() string {
	label := m.selectedRow().Label
	switch m.mode {
	case modeCaptureAdd:
		return theme.CaptureStyle.Render(fmt.Sprintf("Press a key to add to %s (esc to cancel)", label))
	case modeCaptureReplace:
		code, _ := m.selectedCode()
		return theme.CaptureStyle.Render(fmt.Sprintf("Press a key to replace %s in %s (esc to cancel)", m.editor.KeyName(code), label))
	case modeConfirmReset:
		return theme.CaptureStyle.Render("Reset all key bindings to defaults? (y/n)")
	}

	if strings.HasPrefix(m.status, "Error: ") {
		return theme.ErrorStyle.Render(m.status)
	}
	return theme.StatusStyle.Render(m.status)
}
