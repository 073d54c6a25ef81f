package main

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/terminal"
)

// journal records lifecycle calls in order
type journal struct {
	calls []string
}

func (j *journal) add(call string) { j.calls = append(j.calls, call) }

// fakeTerminal quits on the first poll
type fakeTerminal struct {
	j       *journal
	initErr error
}

func (f *fakeTerminal) Init() error {
	f.j.add("term init")
	return f.initErr
}

func (f *fakeTerminal) Fini() { f.j.add("term fini") }

func (f *fakeTerminal) PollKey(timeout time.Duration) (*tcell.EventKey, error) {
	return tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), nil
}

func (f *fakeTerminal) Writer() io.Writer { return io.Discard }

var _ terminal.Terminal = (*fakeTerminal)(nil)

func fakeAudio(j *journal) func() (engine.Sounder, func()) {
	return func() (engine.Sounder, func()) {
		j.add("audio start")
		return nil, func() { j.add("audio stop") }
	}
}

func TestPlayStartsAudioBeforeRawMode(t *testing.T) {
	j := &journal{}

	out, err := play(&fakeTerminal{j: j}, fakeAudio(j))
	require.NoError(t, err)

	assert.True(t, out.Quit)
	assert.Equal(t, []string{"audio start", "term init", "term fini", "audio stop"}, j.calls)
}

func TestPlayRestoresTerminalWhenInitFails(t *testing.T) {
	j := &journal{}
	errNoTTY := errors.New("stdin is not a terminal")

	_, err := play(&fakeTerminal{j: j, initErr: errNoTTY}, fakeAudio(j))
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoTTY)
	assert.Contains(t, err.Error(), "initialize terminal")
	assert.Equal(t, []string{"audio start", "term init", "term fini", "audio stop"}, j.calls)
}
