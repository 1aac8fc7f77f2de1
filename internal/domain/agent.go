package domain

// AgentIdentity describes a named agent instance in the supervisor/specialist tree.
type AgentIdentity struct {
	Name         string `json:"name"          yaml:"name"`
	Tag          Tag    `json:"tag,omitempty" yaml:"tag,omitempty"` // empty for the supervisor
	Description  string `json:"description"   yaml:"description"`
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt"`
	MaxIter      int    `json:"max_iter,omitempty" yaml:"max_iter,omitempty"`
}

// AgentStatus is a read-only snapshot of a specialist.
type AgentStatus struct {
	Name      string `json:"name"`
	Tag       Tag    `json:"tag"`
	ToolCount int    `json:"tool_count"`
	Opaque    int    `json:"opaque_toolsets_skipped"`
}

// TurnState is the state of one agent turn.
type TurnState string

const (
	TurnReceived     TurnState = "received"
	TurnReasoning    TurnState = "reasoning"
	TurnDelegating   TurnState = "delegating"
	TurnSynthesizing TurnState = "synthesizing"
	TurnDone         TurnState = "done"
	TurnErrored      TurnState = "errored"
)

// turnTransitions lists the legal successor states.
var turnTransitions = map[TurnState][]TurnState{
	TurnReceived:     {TurnReasoning},
	TurnReasoning:    {TurnDelegating, TurnSynthesizing, TurnErrored},
	TurnDelegating:   {TurnReasoning, TurnErrored},
	TurnSynthesizing: {TurnDone},
}

// CanTransition reports whether from -> to is a legal turn transition.
func CanTransition(from, to TurnState) bool {
	for _, s := range turnTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s is Done or Errored.
func (s TurnState) Terminal() bool { return s == TurnDone || s == TurnErrored }
