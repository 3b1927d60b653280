package home

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/router"
	"github.com/erininge/Time-Game/internal/screen"
	"github.com/erininge/Time-Game/internal/screens/history"
	sessionscreen "github.com/erininge/Time-Game/internal/screens/session"
	"github.com/erininge/Time-Game/internal/session"
	"github.com/erininge/Time-Game/internal/streak"
	"github.com/erininge/Time-Game/internal/ui/components"
	"github.com/erininge/Time-Game/internal/ui/layout"
)

// StreakService reads and records the practice streak.
type StreakService interface {
	Current(ctx context.Context) streak.Record
	Touch(ctx context.Context) (streak.Record, error)
}

// EventStore records and reads quiz events.
type EventStore interface {
	history.Reader
	session.EventRecorder
}

// Deps are the collaborators of the home screen. Nil members disable the
// features that need them.
type Deps struct {
	// Settings pre-fill the options form.
	Settings quiz.Settings
	Streak   StreakService
	Events   EventStore
	Log      logrus.FieldLogger
}

// Option rows, in display order.
const (
	fieldOrientation = iota
	fieldQuestions
	fieldScript
	fieldDigital
	fieldMinutes
	fieldScriptCheck
	fieldCrossScript
	fieldCount
)

var questionCounts = []int{5, 10, 15, 20, 30}

// HomeScreen is the main home screen: quiz options, streak and menu.
type HomeScreen struct {
	deps   Deps
	fields []components.Choice
	menu   components.Menu
	focus  int
	streak int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:   deps,
		fields: newFields(deps.Settings),
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: h.startQuiz},
		{Label: "HISTORY", Action: h.openHistory, Disabled: deps.Events == nil},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	h.setFocus(fieldCount)
	return h
}

func newFields(s quiz.Settings) []components.Choice {
	counts := questionCounts
	if !containsInt(counts, s.Questions) && s.Questions > 0 {
		counts = append([]int{s.Questions}, counts...)
	}
	countOpts := make([]components.ChoiceOption, 0, len(counts))
	for _, n := range counts {
		v := strconv.Itoa(n)
		countOpts = append(countOpts, components.ChoiceOption{Label: v, Value: v})
	}

	onOff := "on"
	if !s.CrossScriptEra {
		onOff = "off"
	}

	return []components.Choice{
		fieldOrientation: components.NewChoice("Direction", []components.ChoiceOption{
			{Label: "Mixed", Value: string(quiz.OrientationMixed)},
			{Label: "Japanese → Digital", Value: string(quiz.JapaneseToDigital)},
			{Label: "Digital → Japanese", Value: string(quiz.DigitalToJapanese)},
		}, string(s.Orientation)),
		fieldQuestions: components.NewChoice("Questions", countOpts, strconv.Itoa(s.Questions)),
		fieldScript: components.NewChoice("Script", []components.ChoiceOption{
			{Label: "Mixed", Value: string(quiz.ScriptMixed)},
			{Label: "Kanji 漢字", Value: string(quiz.ScriptKanji)},
			{Label: "Kana かな", Value: string(quiz.ScriptKana)},
		}, string(s.Script)),
		fieldDigital: components.NewChoice("Clock", []components.ChoiceOption{
			{Label: "Mixed", Value: string(quiz.DigitalMixed)},
			{Label: "12-hour", Value: string(quiz.Digital12h)},
			{Label: "24-hour", Value: string(quiz.Digital24h)},
		}, string(s.Digital)),
		fieldMinutes: components.NewChoice("Minutes", []components.ChoiceOption{
			{Label: "Round (mostly :05s)", Value: string(quiz.MinutesRound)},
			{Label: "Any", Value: string(quiz.MinutesAny)},
		}, string(s.Minutes)),
		fieldScriptCheck: components.NewChoice("Script check", []components.ChoiceOption{
			{Label: "Strict", Value: string(quiz.ScriptCheckStrict)},
			{Label: "Merged", Value: string(quiz.ScriptCheckMerged)},
		}, string(s.ScriptCheck)),
		fieldCrossScript: components.NewChoice("Mixed era", []components.ChoiceOption{
			{Label: "Allowed", Value: "on"},
			{Label: "Off", Value: "off"},
		}, onOff),
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// Settings returns the quiz settings chosen in the form.
func (h *HomeScreen) Settings() quiz.Settings {
	s := h.deps.Settings
	s.Orientation = quiz.Orientation(h.fields[fieldOrientation].Value())
	if n, err := strconv.Atoi(h.fields[fieldQuestions].Value()); err == nil {
		s.Questions = n
	}
	s.Script = quiz.Script(h.fields[fieldScript].Value())
	s.Digital = quiz.DigitalStyle(h.fields[fieldDigital].Value())
	s.Minutes = quiz.Minutes(h.fields[fieldMinutes].Value())
	s.ScriptCheck = quiz.ScriptCheck(h.fields[fieldScriptCheck].Value())
	s.CrossScriptEra = h.fields[fieldCrossScript].Value() == "on"
	return s
}

// Init loads the streak for the header.
func (h *HomeScreen) Init() tea.Cmd {
	svc := h.deps.Streak
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		return screen.StreakUpdatedMsg{Streak: svc.Current(context.Background()).Streak}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.focus < fieldCount {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "←→", Description: "Change"},
			{Key: "Enter", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StreakUpdatedMsg:
		h.streak = msg.Streak
		return h, nil

	case tea.KeyMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if h.focus < fieldCount {
		switch key {
		case "up", "k":
			if h.focus > 0 {
				h.setFocus(h.focus - 1)
			}
			return h, nil
		case "down", "j":
			h.setFocus(h.focus + 1)
			return h, nil
		case "enter":
			return h, h.startQuiz()
		}
		var cmd tea.Cmd
		h.fields[h.focus], cmd = h.fields[h.focus].Update(msg)
		return h, cmd
	}

	if (key == "up" || key == "k") && h.menu.AtTop() {
		h.setFocus(fieldCount - 1)
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// setFocus moves focus to an option row, or to the menu at fieldCount.
func (h *HomeScreen) setFocus(i int) {
	h.focus = min(max(i, 0), fieldCount)
	for j := range h.fields {
		h.fields[j].Focused = j == h.focus
	}
	h.menu.Focused = h.focus == fieldCount
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	next := sessionscreen.New(h.Settings(), sessionscreen.Deps{
		Events: h.deps.Events,
		Streak: h.deps.Streak,
		Log:    h.deps.Log,
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) openHistory() tea.Cmd {
	if h.deps.Events == nil {
		return nil
	}
	next := history.New(h.deps.Events)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompact(width, termHeight)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.streak), cw))
	}
	sections = append(sections,
		renderStreakBar(h.streak, cw),
		renderSettings(h.fields, cw),
		renderMenu(h.menu.View(), cw),
	)

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.Frame(strings.Join(sections, sep), width, height)
}
