package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/usecase"
	"arr-mcp/internal/usecase/multiagent"
)

// ChannelAGUI names runs started through the AG-UI endpoint.
const ChannelAGUI = "ag-ui"

const (
	maxAGUIBody = 10 << 20
	// terminalGrace bounds how long the stream waits for the run's final
	// bus event after the run itself has returned.
	terminalGrace = 5 * time.Second
)

// AG-UI event types emitted by the endpoint.
const (
	aguiRunStarted         = "RUN_STARTED"
	aguiRunFinished        = "RUN_FINISHED"
	aguiRunError           = "RUN_ERROR"
	aguiStepStarted        = "STEP_STARTED"
	aguiStepFinished       = "STEP_FINISHED"
	aguiTextMessageStart   = "TEXT_MESSAGE_START"
	aguiTextMessageContent = "TEXT_MESSAGE_CONTENT"
	aguiTextMessageEnd     = "TEXT_MESSAGE_END"
	aguiToolCallStart      = "TOOL_CALL_START"
	aguiToolCallArgs       = "TOOL_CALL_ARGS"
	aguiToolCallEnd        = "TOOL_CALL_END"
	aguiToolCallResult     = "TOOL_CALL_RESULT"
)

type aguiInput struct {
	ThreadID string         `json:"threadId"`
	RunID    string         `json:"runId"`
	Messages []aguiMessage  `json:"messages"`
	Context  []aguiContext  `json:"context"`
	Tools    []any          `json:"tools"`
	State    any            `json:"state"`
	Props    map[string]any `json:"forwardedProps"`
}

type aguiMessage struct {
	ID         string          `json:"id"`
	Role       string          `json:"role"`
	Content    json.RawMessage `json:"content"`
	ToolCalls  []aguiToolCall  `json:"toolCalls"`
	ToolCallID string          `json:"toolCallId"`
}

type aguiToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type aguiContext struct {
	Description string `json:"description"`
	Value       string `json:"value"`
}

type aguiEvent struct {
	Type         string `json:"type"`
	Timestamp    int64  `json:"timestamp,omitempty"`
	ThreadID     string `json:"threadId,omitempty"`
	RunID        string `json:"runId,omitempty"`
	StepName     string `json:"stepName,omitempty"`
	MessageID    string `json:"messageId,omitempty"`
	Role         string `json:"role,omitempty"`
	Delta        string `json:"delta,omitempty"`
	ToolCallID   string `json:"toolCallId,omitempty"`
	ToolCallName string `json:"toolCallName,omitempty"`
	Content      string `json:"content,omitempty"`
	Message      string `json:"message,omitempty"`
	Code         string `json:"code,omitempty"`
}

// text returns the plain text of an AG-UI message content, which is either
// a string or a list of typed parts.
func (m aguiMessage) text() string {
	if len(m.Content) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m.Content, &s); err == nil {
		return s
	}
	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(m.Content, &parts); err != nil {
		return ""
	}
	var b strings.Builder
	for _, p := range parts {
		if p.Type == "text" {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

func (m aguiMessage) toDomain() domain.Message {
	msg := domain.Message{Content: m.text(), Timestamp: time.Now()}
	switch m.Role {
	case "assistant":
		msg.Role = domain.RoleAssistant
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, domain.ToolCall{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: json.RawMessage(tc.Function.Arguments),
			})
		}
	case "tool":
		msg.Role = domain.RoleTool
		msg.ToolCalls = []domain.ToolCall{{ID: m.ToolCallID}}
	case "system", "developer":
		msg.Role = domain.RoleSystem
	default:
		msg.Role = domain.RoleUser
	}
	return msg
}

// splitPrompt separates the last user message from the history before it.
func splitPrompt(msgs []aguiMessage) (prompt string, history []domain.Message, ok bool) {
	last := -1
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == "user" {
			last = i
			break
		}
	}
	if last < 0 {
		return "", nil, false
	}
	history = make([]domain.Message, 0, last)
	for _, m := range msgs[:last] {
		history = append(history, m.toDomain())
	}
	return msgs[last].text(), history, true
}

func withContext(prompt string, entries []aguiContext) string {
	if len(entries) == 0 {
		return prompt
	}
	var b strings.Builder
	for _, c := range entries {
		fmt.Fprintf(&b, "%s: %s\n", c.Description, c.Value)
	}
	b.WriteString("\n")
	b.WriteString(prompt)
	return b.String()
}

// sseWriter writes AG-UI events as server-sent events.
type sseWriter struct {
	w       io.Writer
	flusher http.Flusher
}

func (s *sseWriter) send(ev aguiEvent) error {
	ev.Timestamp = time.Now().UnixMilli()
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

type runResult struct {
	out *multiagent.RunOutcome
	err error
}

func (s *Server) handleAGUI(w http.ResponseWriter, r *http.Request) {
	var in aguiInput
	if err := json.NewDecoder(io.LimitReader(r.Body, maxAGUIBody)).Decode(&in); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "invalid run input: " + err.Error()})
		return
	}
	prompt, history, ok := splitPrompt(in.Messages)
	if !ok || strings.TrimSpace(prompt) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "run input has no user message"})
		return
	}
	if s.deps.Conversations == nil || s.deps.Bus == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "agent not configured"})
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming unsupported"})
		return
	}
	if in.ThreadID == "" {
		in.ThreadID = usecase.NewRunID()
	}
	if in.RunID == "" {
		in.RunID = usecase.NewRunID()
	}
	// The client's runId is only echoed back. Run records and the event
	// filter use an id minted here, so a reused runId cannot mix two runs.
	runID := usecase.NewRunID()
	if len(in.Tools) > 0 {
		s.logger.Debug("ignoring client-side tools", "count", len(in.Tools))
	}

	history = usecase.PruneMessages(history, s.deps.Tokens, s.deps.PruneMaxTokens)
	sup := s.deps.Conversations.Supervisor()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events := make(chan domain.Event, 512)
	unsub := s.deps.Bus.SubscribeAll(func(_ context.Context, ev domain.Event) {
		if ev.RunID != runID {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	})
	defer unsub()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	sse := &sseWriter{w: w, flusher: flusher}
	_ = sse.send(aguiEvent{Type: aguiRunStarted, ThreadID: in.ThreadID, RunID: in.RunID})

	results := make(chan runResult, 1)
	go func() {
		out, err := sup.Run(ctx, multiagent.RunRequest{
			Session: usecase.NewSessionFrom(in.ThreadID, history),
			Prompt:  withContext(prompt, in.Context),
			Channel: ChannelAGUI,
			RunID:   runID,
		})
		results <- runResult{out: out, err: err}
	}()

	s.logger.Debug("ag-ui run started", "run_id", runID, "client_run_id", in.RunID, "thread_id", in.ThreadID)
	st := &aguiStream{sse: sse, supervisor: sup.Name(), runID: runID}
	var (
		res      *runResult
		terminal bool
		grace    <-chan time.Time
	)
	for !terminal || res == nil {
		select {
		case ev := <-events:
			st.translate(ev)
			if ev.Type == domain.EventRunCompleted || ev.Type == domain.EventRunFailed {
				terminal = true
			}
		case rr := <-results:
			res = &rr
			grace = time.After(terminalGrace)
		case <-grace:
			terminal = true
		case <-r.Context().Done():
			return
		}
	}

	if res.err != nil {
		st.closeText()
		_ = sse.send(aguiEvent{Type: aguiRunError, Message: res.err.Error(), Code: string(domain.ErrorCodeOf(res.err))})
		return
	}
	if !st.streamed && res.out.Output != "" {
		st.emitText(res.out.Output)
	}
	st.closeText()
	_ = sse.send(aguiEvent{Type: aguiRunFinished, ThreadID: in.ThreadID, RunID: in.RunID})
}

// aguiStream maps bus events of one run onto AG-UI events.
type aguiStream struct {
	sse        *sseWriter
	supervisor string
	runID      string
	messageID  string
	textOpen   bool
	streamed   bool
	msgSeq     int
}

func (a *aguiStream) nextMessageID() string {
	a.msgSeq++
	return fmt.Sprintf("%s-msg-%d", a.runID, a.msgSeq)
}

func (a *aguiStream) openText() {
	if a.textOpen {
		return
	}
	a.messageID = a.nextMessageID()
	a.textOpen = true
	_ = a.sse.send(aguiEvent{Type: aguiTextMessageStart, MessageID: a.messageID, Role: "assistant"})
}

func (a *aguiStream) closeText() {
	if !a.textOpen {
		return
	}
	a.textOpen = false
	_ = a.sse.send(aguiEvent{Type: aguiTextMessageEnd, MessageID: a.messageID})
}

func (a *aguiStream) emitText(text string) {
	a.openText()
	_ = a.sse.send(aguiEvent{Type: aguiTextMessageContent, MessageID: a.messageID, Delta: text})
}

func (a *aguiStream) translate(ev domain.Event) {
	switch ev.Type {
	case domain.EventTurnState:
		var p domain.TurnStatePayload
		if json.Unmarshal(ev.Payload, &p) != nil {
			return
		}
		_ = a.sse.send(aguiEvent{Type: aguiStepFinished, StepName: p.Agent + "." + string(p.From)})
		_ = a.sse.send(aguiEvent{Type: aguiStepStarted, StepName: p.Agent + "." + string(p.To)})

	case domain.EventStreamDelta:
		var p domain.StreamDeltaPayload
		if json.Unmarshal(ev.Payload, &p) != nil || p.Agent != a.supervisor {
			return
		}
		if p.Content != "" {
			a.emitText(p.Content)
			a.streamed = true
		}
		if p.Done {
			a.closeText()
		}

	case domain.EventToolCallStarted:
		var p domain.ToolCallPayload
		if json.Unmarshal(ev.Payload, &p) != nil || p.Agent != a.supervisor {
			return
		}
		a.closeText()
		_ = a.sse.send(aguiEvent{Type: aguiToolCallStart, ToolCallID: p.CallID, ToolCallName: p.Name})
		if p.Arguments != "" {
			_ = a.sse.send(aguiEvent{Type: aguiToolCallArgs, ToolCallID: p.CallID, Delta: p.Arguments})
		}
		_ = a.sse.send(aguiEvent{Type: aguiToolCallEnd, ToolCallID: p.CallID})

	case domain.EventToolCallCompleted:
		var p domain.ToolCallPayload
		if json.Unmarshal(ev.Payload, &p) != nil || p.Agent != a.supervisor {
			return
		}
		_ = a.sse.send(aguiEvent{
			Type:       aguiToolCallResult,
			MessageID:  a.nextMessageID(),
			ToolCallID: p.CallID,
			Content:    p.Result,
			Role:       "tool",
		})
	}
}
