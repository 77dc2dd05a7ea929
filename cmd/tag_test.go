package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mutree.dev/pkg/mutree/internal/domain"
	domainmocks "mutree.dev/pkg/mutree/internal/domain/mocks"
)

func TestTagCmd_PassesWords(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTagCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Tag", mock.Anything, domain.TagArgs{Words: []string{"кот", "красный"}}).Return(nil)

	cmd.SetArgs([]string{"tag", "кот", "красный"})
	require.NoError(t, cmd.Execute())
}

func TestTagCmd_RequiresWords(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTagCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"tag"})
	require.Error(t, cmd.Execute())
}
