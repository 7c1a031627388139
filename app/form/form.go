package form

import (
	"errors"
	"fmt"
	"strings"

	"reversewords/app/reverse"

	"github.com/google/uuid"
)

type State int

const (
	StateInitial State = iota
	StateTyping
	StateResult
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateTyping:
		return "typing"
	case StateResult:
		return "result"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Mode int

const (
	ModeDefault Mode = iota
	ModeCustom
)

var ErrUnknownMode = errors.New("unknown mode")

func (m Mode) String() string {
	if m == ModeCustom {
		return "custom"
	}
	return "default"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default":
		return ModeDefault, nil
	case "custom":
		return ModeCustom, nil
	}
	return ModeDefault, fmt.Errorf("%q; %w", s, ErrUnknownMode)
}

// Form is the reversal screen without its widgets. Every event method moves
// the form to its next state; nothing here draws anything.
type Form struct {
	ID            uuid.UUID
	State         State
	Text          string
	Mode          Mode
	IgnoreSymbols string
	Result        string
}

func New() *Form {
	return &Form{ID: uuid.New()}
}

func (f *Form) SetText(text string) {
	f.Text = text
	if text == "" {
		f.enter(StateInitial)
		return
	}
	f.enter(StateTyping)
}

// SetIgnoreSymbols only reopens editing when there is text to reverse.
func (f *Form) SetIgnoreSymbols(symbols string) {
	f.IgnoreSymbols = symbols
	if f.Text != "" {
		f.enter(StateTyping)
	}
}

func (f *Form) SetMode(mode Mode) {
	f.Mode = mode
	if mode == ModeDefault {
		f.IgnoreSymbols = ""
	}
	if f.Text != "" {
		f.enter(StateTyping)
	}
}

// Tap presses the form button: typing shows the result, result clears the
// form, and the disabled button in the initial state does nothing.
func (f *Form) Tap() {
	switch f.State {
	case StateTyping:
		f.enter(StateResult)
	case StateResult:
		f.enter(StateInitial)
	}
}

func (f *Form) enter(state State) {
	f.State = state
	switch state {
	case StateInitial:
		f.Text = ""
		f.Result = ""
	case StateTyping:
		f.Result = ""
	case StateResult:
		ignore := f.IgnoreSymbols
		f.Result = reverse.ReverseWordsSelective(&f.Text, f.Mode == ModeDefault, &ignore)
	}
}

func (f *Form) ButtonTitle() string {
	if f.State == StateResult {
		return "Clear"
	}
	return "Reverse"
}

func (f *Form) ButtonEnabled() bool {
	return f.State != StateInitial
}

func (f *Form) IgnoreFieldVisible() bool {
	return f.Mode == ModeCustom
}
