package progress

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinnerModel_QuitsOnResult(t *testing.T) {
	m := newModel(io.Discard)

	updated, cmd := m.Update(resultMsg{success: true})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	done, ok := updated.(model)
	require.True(t, ok)
	assert.True(t, done.done)
	assert.Empty(t, done.View(), "view clears once the terminal signal arrives")
}

func TestSpinnerModel_ViewShowsWaitingMessage(t *testing.T) {
	m := newModel(io.Discard)
	assert.Contains(t, m.View(), WaitingMessage)
}
