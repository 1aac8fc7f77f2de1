package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
)

type recordingDelegator struct {
	tag  domain.Tag
	task string
	out  string
	err  error
}

func (d *recordingDelegator) Delegate(_ context.Context, tag domain.Tag, task string) (string, error) {
	d.tag, d.task = tag, task
	return d.out, d.err
}

func TestDelegationToolShape(t *testing.T) {
	tl := NewDelegationTool("Indexer", &recordingDelegator{})
	assert.Equal(t, "assign_task_to_indexer_agent", tl.Name())
	assert.Equal(t, "Assign a task related to Indexer to the Indexer Agent.", tl.Description())

	var schema struct {
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(tl.Schema().Parameters, &schema))
	assert.Equal(t, []string{"task"}, schema.Required)
}

func TestDelegationToolReturnsTextVerbatim(t *testing.T) {
	d := &recordingDelegator{out: "  3 indexers enabled\n"}
	tl := NewDelegationTool("Indexer", d)

	res, err := tl.Execute(context.Background(), json.RawMessage(`{"task":"list indexers"}`))
	require.NoError(t, err)
	assert.Equal(t, "  3 indexers enabled\n", res.Content)
	assert.Equal(t, domain.Tag("Indexer"), d.tag)
	assert.Equal(t, "list indexers", d.task)
}

func TestDelegationToolPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	tl := NewDelegationTool("System", &recordingDelegator{err: boom})
	_, err := tl.Execute(context.Background(), json.RawMessage(`{"task":"status"}`))
	assert.ErrorIs(t, err, boom)
}

func TestDelegationToolBadJSON(t *testing.T) {
	tl := NewDelegationTool("System", &recordingDelegator{})
	res, err := tl.Execute(context.Background(), json.RawMessage(`{`))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.True(t, res.IsRetryable)
}

func TestDelegationRegistryOnePerTag(t *testing.T) {
	tags := []domain.Tag{"Indexer", "System", "History"}
	reg, err := NewDelegationRegistry("prowlarr_delegation", tags, &recordingDelegator{}, nil)
	require.NoError(t, err)

	var names []string
	for _, tl := range reg.List() {
		names = append(names, tl.Name())
	}
	assert.Equal(t, []string{
		"assign_task_to_indexer_agent",
		"assign_task_to_system_agent",
		"assign_task_to_history_agent",
	}, names)
}

func TestDelegationRegistryRejectsDuplicateTags(t *testing.T) {
	_, err := NewDelegationRegistry("d", []domain.Tag{"Indexer", "indexer"}, &recordingDelegator{}, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
