// Package tui implements the interactive conversion view: two selected
// tokens, an editable amount on either side, and the derived paired amount.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tokenconv/tokenconv/internal/catalog"
	"github.com/tokenconv/tokenconv/internal/convert"
	"github.com/tokenconv/tokenconv/internal/pricing"
)

// ConvertState represents the current state of the conversion TUI.
type ConvertState int

const (
	// ConvertStateLoading indicates the initial token fetch is in flight.
	ConvertStateLoading ConvertState = iota
	// ConvertStateReady indicates tokens are loaded and amounts are editable.
	ConvertStateReady
	// ConvertStateQuitting indicates the application is exiting.
	ConvertStateQuitting
)

// Side identifies which amount field has focus.
type Side int

const (
	// SideLeft focuses the left (source) amount.
	SideLeft Side = iota
	// SideRight focuses the right (target) amount.
	SideRight
)

// tokensLoadedMsg is sent when the catalog-wide fetch settles.
type tokensLoadedMsg struct {
	result pricing.Result
}

// FetchFunc resolves the full catalog token set.
type FetchFunc func(context.Context) pricing.Result

// Default dimensions for the conversion view.
const (
	convertDefaultWidth = 72
	amountInputLimit    = 24
)

// ConvertModel is the Bubble Tea model for interactive token conversion.
type ConvertModel struct {
	ctx     context.Context
	fetchFn FetchFunc

	// Loaded token set, one per catalog position.
	tokens   []catalog.Token
	leftIdx  int
	rightIdx int

	// Amount fields. The focused side is authoritative; the other side is
	// derived through the linear rate on every accepted keystroke.
	leftInput  textinput.Model
	rightInput textinput.Model
	focus      Side

	state  ConvertState
	banner string

	width int
}

// NewConvertModel creates the conversion view. The fetch callback runs as the
// model's init command; until it settles the view shows a loading state over
// the static catalog.
func NewConvertModel(ctx context.Context, fetchFn FetchFunc) ConvertModel {
	left := newAmountInput()
	left.Focus()
	right := newAmountInput()

	// Pre-populate from the static catalog so selectors render immediately.
	entries := catalog.Entries()
	tokens := make([]catalog.Token, len(entries))
	for i, e := range entries {
		tokens[i] = catalog.Fallback(e)
	}

	return ConvertModel{
		ctx:        ctx,
		fetchFn:    fetchFn,
		tokens:     tokens,
		leftIdx:    0,
		rightIdx:   2, // USDC → ETH is the canonical starting pair
		leftInput:  left,
		rightInput: right,
		focus:      SideLeft,
		state:      ConvertStateLoading,
		width:      convertDefaultWidth,
	}
}

func newAmountInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "0"
	in.Prompt = ""
	in.CharLimit = amountInputLimit
	return in
}

// Init starts the catalog fetch.
func (m ConvertModel) Init() tea.Cmd {
	return func() tea.Msg {
		return tokensLoadedMsg{result: m.fetchFn(m.ctx)}
	}
}

// Update handles messages and key input.
func (m ConvertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tokensLoadedMsg:
		// A fetch settling after quit is discarded, not applied.
		if m.state == ConvertStateQuitting {
			return m, nil
		}
		m.tokens = msg.result.Tokens
		if msg.result.Err != nil {
			m.banner = "Failed to load token data"
		}
		m.state = ConvertStateReady
		m.recompute()
		return m, nil

	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width < m.width {
			m.width = msg.Width
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes one keystroke. Letter keys are free for commands because
// the amount fields only ever accept digits and a single decimal point.
func (m ConvertModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.state = ConvertStateQuitting
		return m, tea.Quit

	case "s":
		m.swap()
		return m, nil

	case "tab":
		m.toggleFocus()
		return m, nil

	case "up":
		m.cycleToken(+1)
		return m, nil

	case "down":
		m.cycleToken(-1)
		return m, nil
	}

	if m.state != ConvertStateReady {
		return m, nil
	}

	return m.handleAmountKey(msg)
}

// handleAmountKey forwards a keystroke to the focused amount field, but only
// if the resulting text would still be a valid amount. Invalid keystrokes
// leave all state unchanged.
func (m ConvertModel) handleAmountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := m.focusedInput()

	updated, cmd := focused.Update(msg)
	if !convert.ValidAmount(updated.Value()) {
		return m, nil
	}

	*focused = updated
	m.recompute()
	return m, cmd
}

// focusedInput returns the input owning keyboard focus.
func (m *ConvertModel) focusedInput() *textinput.Model {
	if m.focus == SideRight {
		return &m.rightInput
	}
	return &m.leftInput
}

// recompute derives the unfocused amount from the focused one through the
// linear rate.
func (m *ConvertModel) recompute() {
	left := m.tokens[m.leftIdx]
	right := m.tokens[m.rightIdx]

	if m.focus == SideLeft {
		amount := convert.ParseAmount(m.leftInput.Value())
		m.rightInput.SetValue(convert.Format(convert.Convert(amount, left, right)))
		return
	}

	amount := convert.ParseAmount(m.rightInput.Value())
	m.leftInput.SetValue(convert.Format(convert.Convert(amount, right, left)))
}

// swap exchanges both selected tokens and both displayed amounts in a single
// model update. Focus follows the amounts so the user keeps editing the same
// number they were typing.
func (m *ConvertModel) swap() {
	m.leftIdx, m.rightIdx = m.rightIdx, m.leftIdx

	leftVal := m.leftInput.Value()
	m.leftInput.SetValue(m.rightInput.Value())
	m.rightInput.SetValue(leftVal)

	m.toggleFocus()
}

// toggleFocus moves keyboard focus to the other amount field.
func (m *ConvertModel) toggleFocus() {
	if m.focus == SideLeft {
		m.focus = SideRight
		m.leftInput.Blur()
		m.rightInput.Focus()
	} else {
		m.focus = SideLeft
		m.rightInput.Blur()
		m.leftInput.Focus()
	}
}

// cycleToken advances the focused side's token selection through the loaded
// set, skipping over the other side's selection.
func (m *ConvertModel) cycleToken(step int) {
	n := len(m.tokens)
	if n < 2 {
		return
	}

	idx := &m.leftIdx
	other := m.rightIdx
	if m.focus == SideRight {
		idx = &m.rightIdx
		other = m.leftIdx
	}

	next := *idx
	for {
		next = (next + step + n) % n
		if next != other {
			break
		}
	}
	*idx = next
	m.recompute()
}

// LeftToken returns the currently selected source token.
func (m ConvertModel) LeftToken() catalog.Token { return m.tokens[m.leftIdx] }

// RightToken returns the currently selected target token.
func (m ConvertModel) RightToken() catalog.Token { return m.tokens[m.rightIdx] }

// LeftAmount returns the left amount field's text.
func (m ConvertModel) LeftAmount() string { return m.leftInput.Value() }

// RightAmount returns the right amount field's text.
func (m ConvertModel) RightAmount() string { return m.rightInput.Value() }

// Banner returns the non-blocking error banner, or "" when healthy.
func (m ConvertModel) Banner() string { return m.banner }

// State returns the model's current lifecycle state.
func (m ConvertModel) State() ConvertState { return m.state }
