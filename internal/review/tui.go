// Package review is an interactive TUI over a saved analysis: it toggles
// checklist items, flips per-skill confidence, and persists confidence
// changes back through the history store. The engine itself stays a plain
// caller-facing library; this package is one of its callers.
package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kodnest/prepkit/internal/history"
	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/score"
)

var (
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")) // bright blue

	inactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")) // dim gray

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	activeHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("39"))

	inactiveHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	roundTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	itemStyle = lipgloss.NewStyle()

	checkedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Strikethrough(true)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")). // bright white
				Background(lipgloss.Color("24"))  // dark blue bg

	knowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // green

	practiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // orange

	savedHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// checklistRow is one selectable line of the checklist pane. Round headers
// are rendered but not selectable.
type checklistRow struct {
	header  bool
	round   string
	item    string
	itemIdx int // index into the flat item list, -1 for headers
}

type reviewModel struct {
	record model.AnalysisRecord
	store  *history.Store

	rows       []checklistRow
	checked    map[int]bool // itemIdx -> done, session-local
	totalItems int

	skills     []string // flattened skill list, stable order
	confidence map[string]model.Confidence

	leftViewport  viewport.Model
	rightViewport viewport.Model
	activePane    int // 0=checklist, 1=skills
	leftCursor    int // indexes selectable checklist rows
	rightCursor   int
	width         int
	height        int
	ready         bool

	dirty    bool
	saveErr  string
	savedMsg bool
}

func newReviewModel(rec model.AnalysisRecord, store *history.Store) reviewModel {
	var rows []checklistRow
	itemIdx := 0
	for _, round := range rec.Checklist {
		rows = append(rows, checklistRow{header: true, round: round.RoundTitle, itemIdx: -1})
		for _, item := range round.Items {
			rows = append(rows, checklistRow{item: item, itemIdx: itemIdx})
			itemIdx++
		}
	}

	skills := rec.ExtractedSkills.Flatten()
	confidence := make(map[string]model.Confidence, len(rec.SkillConfidence))
	for k, v := range rec.SkillConfidence {
		confidence[k] = v
	}

	return reviewModel{
		record:     rec,
		store:      store,
		rows:       rows,
		checked:    make(map[int]bool),
		totalItems: itemIdx,
		skills:     skills,
		confidence: confidence,
	}
}

// Run opens the review TUI for the record and blocks until the user quits.
func Run(store *history.Store, rec model.AnalysisRecord) error {
	p := tea.NewProgram(newReviewModel(rec, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m reviewModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "left", "right":
		m.activePane = 1 - m.activePane
		m.recalcContent()
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		m.recalcContent()
		m.ensureCursorVisible()
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		m.recalcContent()
		m.ensureCursorVisible()
		return m, nil
	case " ", "enter":
		m.toggle()
		m.recalcContent()
		return m, nil
	case "s":
		m.save()
		m.recalcContent()
		return m, nil
	}

	// Forward other keys (pgup/pgdn/home/end) to the active viewport.
	var cmd tea.Cmd
	if m.activePane == 0 {
		m.leftViewport, cmd = m.leftViewport.Update(msg)
	} else {
		m.rightViewport, cmd = m.rightViewport.Update(msg)
	}
	return m, cmd
}

// selectableRows returns indexes into m.rows that carry a checklist item.
func (m reviewModel) selectableRows() []int {
	var out []int
	for i, r := range m.rows {
		if !r.header {
			out = append(out, i)
		}
	}
	return out
}

func (m *reviewModel) moveCursor(delta int) {
	if m.activePane == 0 {
		m.leftCursor = clamp(m.leftCursor+delta, 0, max(m.totalItems-1, 0))
	} else {
		m.rightCursor = clamp(m.rightCursor+delta, 0, max(len(m.skills)-1, 0))
	}
}

func (m *reviewModel) toggle() {
	m.savedMsg = false
	if m.activePane == 0 {
		if m.totalItems == 0 {
			return
		}
		m.checked[m.leftCursor] = !m.checked[m.leftCursor]
		return
	}
	if len(m.skills) == 0 {
		return
	}
	skill := m.skills[m.rightCursor]
	if m.confidence[skill] == model.ConfidenceKnow {
		m.confidence[skill] = model.ConfidencePractice
	} else {
		m.confidence[skill] = model.ConfidenceKnow
	}
	m.dirty = true
}

// save persists the confidence map and the recomputed final score.
func (m *reviewModel) save() {
	final := score.Final(m.record.BaseScore, m.confidence)
	err := m.store.Update(m.record.ID, history.Patch{
		SkillConfidence: m.confidence,
		FinalScore:      &final,
	})
	if err != nil {
		m.saveErr = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.saveErr = ""
	m.dirty = false
	m.savedMsg = true
	m.record.SkillConfidence = m.confidence
	m.record.FinalScore = final
}

func (m *reviewModel) ensureCursorVisible() {
	var vp *viewport.Model
	var line int
	if m.activePane == 0 {
		vp = &m.leftViewport
		// Find the rendered line of the selected item row.
		sel := m.selectableRows()
		if m.leftCursor < len(sel) {
			line = sel[m.leftCursor]
		}
	} else {
		vp = &m.rightViewport
		line = m.rightCursor
	}

	if line < vp.YOffset {
		vp.SetYOffset(line)
	} else if line >= vp.YOffset+vp.Height {
		vp.SetYOffset(line - vp.Height + 1)
	}
}

func (m *reviewModel) recalcLayout() {
	// 2 border chars per pane + 1 gap between panes.
	paneWidth := max((m.width-5)/2, 20)

	// Header (1 line) + border top/bottom (2) + status bar (1) = 4 lines overhead.
	paneHeight := max(m.height-4, 5)

	if !m.ready {
		m.leftViewport = viewport.New(paneWidth, paneHeight)
		m.rightViewport = viewport.New(paneWidth, paneHeight)
		m.ready = true
	} else {
		m.leftViewport.Width = paneWidth
		m.leftViewport.Height = paneHeight
		m.rightViewport.Width = paneWidth
		m.rightViewport.Height = paneHeight
	}

	m.recalcContent()
}

func (m *reviewModel) recalcContent() {
	m.leftViewport.SetContent(m.renderChecklist())
	m.rightViewport.SetContent(m.renderSkills())
}

func (m reviewModel) renderChecklist() string {
	var b strings.Builder
	for _, row := range m.rows {
		if row.header {
			b.WriteString(roundTitleStyle.Render(row.round) + "\n")
			continue
		}
		mark := "☐"
		style := itemStyle
		if m.checked[row.itemIdx] {
			mark = "☑"
			style = checkedItemStyle
		}
		line := fmt.Sprintf("  %s %s", mark, row.item)
		if m.activePane == 0 && row.itemIdx == m.leftCursor {
			line = selectedItemStyle.Render(line)
		} else {
			line = style.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m reviewModel) renderSkills() string {
	var b strings.Builder
	for i, skill := range m.skills {
		level := m.confidence[skill]
		var tag string
		if level == model.ConfidenceKnow {
			tag = knowStyle.Render("know    ")
		} else {
			tag = practiceStyle.Render("practice")
		}
		line := fmt.Sprintf("  %s  %s", tag, skill)
		if m.activePane == 1 && i == m.rightCursor {
			line = selectedItemStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// progressBadge summarizes checklist progress: not started, in progress,
// or shipped, from the count of checked items.
func (m reviewModel) progressBadge() string {
	done := 0
	for _, v := range m.checked {
		if v {
			done++
		}
	}
	switch {
	case done == 0:
		return "Not Started"
	case done == m.totalItems:
		return "Shipped"
	default:
		return "In Progress"
	}
}

func (m reviewModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	paneWidth := m.leftViewport.Width

	leftHeader := fmt.Sprintf(" Checklist (%s)", m.progressBadge())
	rightHeader := fmt.Sprintf(" Skills (%d)", len(m.skills))

	var leftHeaderRendered, rightHeaderRendered string
	var leftBorder, rightBorder lipgloss.Style

	if m.activePane == 0 {
		leftHeaderRendered = activeHeaderStyle.Render(leftHeader)
		rightHeaderRendered = inactiveHeaderStyle.Render(rightHeader)
		leftBorder = activeBorderStyle.Width(paneWidth)
		rightBorder = inactiveBorderStyle.Width(paneWidth)
	} else {
		leftHeaderRendered = inactiveHeaderStyle.Render(leftHeader)
		rightHeaderRendered = activeHeaderStyle.Render(rightHeader)
		leftBorder = inactiveBorderStyle.Width(paneWidth)
		rightBorder = activeBorderStyle.Width(paneWidth)
	}

	leftPane := leftBorder.Render(m.leftViewport.View())
	rightPane := rightBorder.Render(m.rightViewport.View())

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(paneWidth+2).Render(leftHeaderRendered),
		" ",
		lipgloss.NewStyle().Width(paneWidth+2).Render(rightHeaderRendered),
	)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, " ", rightPane)

	liveScore := score.Final(m.record.BaseScore, m.confidence)
	statusText := fmt.Sprintf(" Score %d/100    ←/→/Tab switch  ↑/↓ cursor  Space toggle  s save  q quit", liveScore)
	if m.dirty {
		statusText += "  (unsaved)"
	}
	if m.savedMsg {
		statusText += "  " + savedHintStyle.Render("saved")
	}
	if m.saveErr != "" {
		statusText += "  " + m.saveErr
	}
	statusBar := statusBarStyle.Width(m.width).Render(statusText)

	return headerRow + "\n" + panes + "\n" + statusBar
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
