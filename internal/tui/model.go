package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/recite/internal/i18n"
	"github.com/verte-zerg/recite/internal/model"
	"github.com/verte-zerg/recite/internal/session"
	"github.com/verte-zerg/recite/internal/store"
	"github.com/verte-zerg/recite/internal/textcmp"
)

const (
	editorHeight    = 6
	minContentWidth = 20
)

type tickMsg struct {
	generation int
}

// Model implements the Bubble Tea practice UI.
type Model struct {
	cfg   model.Config
	store *store.Store
	sess  *session.Session

	keys keyMap
	help help.Model

	refInput textarea.Model
	attInput textarea.Model

	width  int
	height int

	startedAt time.Time
}

// NewModel constructs a practice TUI model around an existing session.
func NewModel(cfg model.Config, st *store.Store, sess *session.Session) *Model {
	refInput := textarea.New()
	refInput.SetValue(sess.Reference())
	refInput.SetHeight(editorHeight)
	refInput.CharLimit = 0
	refInput.Focus()

	attInput := textarea.New()
	attInput.SetValue(sess.Attempt())
	attInput.SetHeight(editorHeight)
	attInput.CharLimit = 0

	return &Model{
		cfg:      cfg,
		store:    st,
		sess:     sess,
		keys:     newKeyMap(cfg.Lang),
		help:     help.New(),
		refInput: refInput,
		attInput: attInput,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refInput.SetWidth(m.contentWidth())
		m.attInput.SetWidth(m.contentWidth())
		return m, nil
	case tickMsg:
		if m.sess.Tick(msg.generation) {
			return m, m.scheduleTick()
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			return m, m.handleStart()
		case key.Matches(msg, m.keys.Reveal):
			m.handleReveal()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.handleReset()
			return m, nil
		case key.Matches(msg, m.keys.ToggleCase):
			if m.sess.State() == session.StateEditing {
				m.toggleCase()
			}
			return m, nil
		case key.Matches(msg, m.keys.TogglePunct):
			if m.sess.State() == session.StateEditing {
				m.togglePunct()
			}
			return m, nil
		case key.Matches(msg, m.keys.ToggleMask):
			if m.sess.State() == session.StateEditing {
				m.toggleMask()
			}
			return m, nil
		case key.Matches(msg, m.keys.CycleLang):
			if m.sess.State() == session.StateEditing {
				m.cycleLang()
			}
			return m, nil
		}
	}
	return m, m.updateEditor(msg)
}

func (m *Model) updateEditor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.sess.State() == session.StateEditing {
		m.refInput, cmd = m.refInput.Update(msg)
		if value := m.refInput.Value(); value != m.sess.Reference() {
			m.sess.SetReference(value)
			m.persist(store.KeyReference, value)
		}
		return cmd
	}
	m.attInput, cmd = m.attInput.Update(msg)
	if value := m.attInput.Value(); value != m.sess.Attempt() {
		m.sess.SetAttempt(value)
		m.persist(store.KeyAttempt, value)
	}
	return cmd
}

func (m *Model) handleStart() tea.Cmd {
	if !m.sess.Start() {
		return nil
	}
	m.startedAt = time.Now()
	m.attInput.Reset()
	m.refInput.Blur()
	m.attInput.Focus()
	m.persist(store.KeyAttempt, "")
	return tea.Batch(textarea.Blink, m.scheduleTick())
}

func (m *Model) handleReveal() {
	if !m.sess.Reveal() {
		return
	}
	m.finishSession()
	m.attInput.Blur()
	m.refInput.Focus()
}

func (m *Model) handleReset() {
	m.sess.ResetAll()
	m.refInput.Reset()
	m.attInput.Reset()
	m.attInput.Blur()
	m.refInput.Focus()
	m.persist(store.KeyReference, "")
	m.persist(store.KeyAttempt, "")
}

func (m *Model) toggleCase() {
	opts := m.sess.Options()
	opts.IgnoreCase = !opts.IgnoreCase
	m.sess.SetOptions(opts)
	m.persist(store.KeyIgnoreCase, strconv.FormatBool(opts.IgnoreCase))
}

func (m *Model) togglePunct() {
	opts := m.sess.Options()
	opts.IgnorePunctuation = !opts.IgnorePunctuation
	m.sess.SetOptions(opts)
	m.persist(store.KeyIgnorePunct, strconv.FormatBool(opts.IgnorePunctuation))
}

func (m *Model) toggleMask() {
	m.cfg.MaskWords = !m.cfg.MaskWords
	m.persist(store.KeyMaskWords, strconv.FormatBool(m.cfg.MaskWords))
}

func (m *Model) cycleLang() {
	langs := i18n.Languages()
	next := langs[0]
	for i, lang := range langs {
		if lang == m.cfg.Lang {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	m.cfg.Lang = next
	m.keys = newKeyMap(next)
	m.persist(store.KeyLang, next)
}

// finishSession records the completed run in the history, best-effort.
func (m *Model) finishSession() {
	stats := textcmp.Score(m.sess.Reference(), m.sess.Attempt(), m.sess.Options())
	opts := m.sess.Options()
	record := model.SessionStats{
		StartedAt:   m.startedAt,
		EndedAt:     time.Now(),
		Lang:        m.cfg.Lang,
		IgnoreCase:  opts.IgnoreCase,
		IgnorePunct: opts.IgnorePunctuation,
		TotalWords:  stats.TotalWords,
		WordsTyped:  stats.WordsTyped,
		Accuracy:    stats.Accuracy,
		DurationSec: m.sess.ElapsedSeconds(),
	}
	if m.store == nil {
		return
	}
	if _, err := m.store.InsertSession(context.Background(), record); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
}

func (m *Model) scheduleTick() tea.Cmd {
	generation := m.sess.Generation()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

func (m *Model) persist(key, value string) {
	if m.store == nil {
		return
	}
	if err := m.store.SetValue(context.Background(), key, value); err != nil {
		logErrf("failed to persist %s: %v\n", key, err)
	}
}

func (m *Model) contentWidth() int {
	width := int(float64(m.width) * 0.70)
	if width < minContentWidth {
		width = minContentWidth
	}
	return width
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.sess.State() == session.StateEditing {
		content = m.viewEditing()
	} else {
		content = m.viewPracticing()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	statsLine := footerStyle.Render(m.renderStats())
	helpLine := m.help.ShortHelpView(m.activeBindings())
	if m.height < 5 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 2
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	statsPlaced := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, statsLine)
	helpPlaced := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
	return body + "\n" + statsPlaced + "\n" + helpPlaced
}

func (m *Model) viewEditing() string {
	lines := []string{
		titleStyle.Render(i18n.T(m.cfg.Lang, "title")),
		hintStyle.Render(i18n.T(m.cfg.Lang, "editing.hint")),
		"",
		m.refInput.View(),
		"",
		hintStyle.Render(m.renderOptions()),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewPracticing() string {
	marks := textcmp.Classify(m.sess.Reference(), m.sess.Attempt(), m.sess.Options())
	lines := []string{
		hintStyle.Render(i18n.T(m.cfg.Lang, "practicing.hint")),
		"",
		renderMarks(marks, m.cfg.MaskWords, m.contentWidth()),
		"",
		m.attInput.View(),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderOptions() string {
	lang := m.cfg.Lang
	opts := m.sess.Options()
	segments := []string{
		fmt.Sprintf("%s: %s", i18n.T(lang, "option.ignore-case"), m.onOff(opts.IgnoreCase)),
		fmt.Sprintf("%s: %s", i18n.T(lang, "option.ignore-punct"), m.onOff(opts.IgnorePunctuation)),
		fmt.Sprintf("%s: %s", i18n.T(lang, "option.mask"), m.onOff(m.cfg.MaskWords)),
		fmt.Sprintf("%s: %s", i18n.T(lang, "option.lang"), lang),
	}
	return strings.Join(segments, " · ")
}

func (m *Model) onOff(v bool) string {
	if v {
		return i18n.T(m.cfg.Lang, "option.on")
	}
	return i18n.T(m.cfg.Lang, "option.off")
}

func (m *Model) renderStats() string {
	lang := m.cfg.Lang
	stats := textcmp.Score(m.sess.Reference(), m.sess.Attempt(), m.sess.Options())
	segments := []string{
		fmt.Sprintf("%s %d%%", i18n.T(lang, "label.accuracy"), stats.Accuracy),
		fmt.Sprintf("%s %d/%d", i18n.T(lang, "label.words"), stats.WordsTyped, stats.TotalWords),
		fmt.Sprintf("%s %d", i18n.T(lang, "label.wpm"), session.WPM(stats.WordsTyped, m.sess.ElapsedSeconds())),
		fmt.Sprintf("%s %s", i18n.T(lang, "label.time"), session.FormatTime(m.sess.ElapsedSeconds())),
	}
	return strings.Join(segments, "  ")
}

func (m *Model) activeBindings() []key.Binding {
	if m.sess.State() == session.StateEditing {
		return []key.Binding{
			m.keys.Start, m.keys.Reset,
			m.keys.ToggleCase, m.keys.TogglePunct, m.keys.ToggleMask, m.keys.CycleLang,
			m.keys.Quit,
		}
	}
	return []key.Binding{m.keys.Reveal, m.keys.Reset, m.keys.Quit}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
