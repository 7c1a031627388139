package form

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	f := New()
	assert.NotEqual(t, uuid.Nil, f.ID)
	assert.Equal(t, StateInitial, f.State)
	assert.Equal(t, ModeDefault, f.Mode)
	assert.False(t, f.ButtonEnabled())
	assert.Equal(t, "Reverse", f.ButtonTitle())
	assert.False(t, f.IgnoreFieldVisible())
	assert.NotEqual(t, f.ID, New().ID)
}

func TestDefaultFlow(t *testing.T) {
	f := New()

	f.SetText("hi 123 there")
	assert.Equal(t, StateTyping, f.State)
	assert.True(t, f.ButtonEnabled())

	f.Tap()
	assert.Equal(t, StateResult, f.State)
	assert.Equal(t, "ih 123 ereht", f.Result)
	assert.Equal(t, "Clear", f.ButtonTitle())

	f.Tap()
	assert.Equal(t, StateInitial, f.State)
	assert.Empty(t, f.Text)
	assert.Empty(t, f.Result)

	f.Tap()
	assert.Equal(t, StateInitial, f.State)
}

func TestCustomFlow(t *testing.T) {
	f := New()
	f.SetMode(ModeCustom)
	assert.Equal(t, StateInitial, f.State, "mode change without text keeps the form idle")
	assert.True(t, f.IgnoreFieldVisible())

	f.SetText("ab-cd")
	f.SetIgnoreSymbols("-")
	f.Tap()
	require.Equal(t, StateResult, f.State)
	assert.Equal(t, "dc-ba", f.Result)

	f.SetIgnoreSymbols("")
	assert.Equal(t, StateTyping, f.State)
	assert.Empty(t, f.Result)
	f.Tap()
	assert.Equal(t, "dc-ba", f.Result)

	f.SetIgnoreSymbols("c")
	f.Tap()
	assert.Equal(t, "d-bca", f.Result)
}

func TestSwitchToDefaultClearsIgnoreSymbols(t *testing.T) {
	f := New()
	f.SetMode(ModeCustom)
	f.SetIgnoreSymbols("abc")
	assert.Equal(t, StateInitial, f.State)

	f.SetText("a1b")
	f.SetMode(ModeDefault)
	assert.Empty(t, f.IgnoreSymbols)
	assert.Equal(t, StateTyping, f.State)

	f.Tap()
	assert.Equal(t, "b1a", f.Result)
}

func TestClearingTextReturnsToInitial(t *testing.T) {
	f := New()
	f.SetText("abc")
	f.Tap()
	require.Equal(t, "cba", f.Result)

	f.SetText("")
	assert.Equal(t, StateInitial, f.State)
	assert.Empty(t, f.Result)
	assert.False(t, f.ButtonEnabled())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"default", ModeDefault, false},
		{" Custom ", ModeCustom, false},
		{"DEFAULT", ModeDefault, false},
		{"", ModeDefault, true},
		{"other", ModeDefault, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "initial", StateInitial.String())
	assert.Equal(t, "typing", StateTyping.String())
	assert.Equal(t, "result", StateResult.String())
	assert.Equal(t, "State(7)", State(7).String())
	assert.Equal(t, "default", ModeDefault.String())
	assert.Equal(t, "custom", ModeCustom.String())
}
