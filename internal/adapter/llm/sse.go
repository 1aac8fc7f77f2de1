package llm

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"arr-mcp/internal/domain"
)

// maxEventLine bounds one line of an event stream. Tool call argument
// fragments can make single lines long.
const maxEventLine = 1 << 20

var doneMarker = []byte("[DONE]")

// streamEvent is one dispatched server-sent event.
type streamEvent struct {
	name string
	data []byte
}

// chunkDecoder turns the data of one event into a delta. A nil delta with a
// nil error means the event carries nothing for the caller.
type chunkDecoder func(data []byte) (*domain.StreamDelta, error)

// scanEvents splits r into events: fields accumulate until a blank line,
// several data lines are joined with newlines and comment lines are dropped.
// emit returning false stops the scan.
func scanEvents(r io.Reader, emit func(streamEvent) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxEventLine)

	var (
		name    string
		data    bytes.Buffer
		hasData bool
	)
	dispatch := func() bool {
		defer func() { name, hasData = "", false; data.Reset() }()
		if !hasData {
			return true
		}
		return emit(streamEvent{name: name, data: bytes.Clone(data.Bytes())})
	}

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			if !dispatch() {
				return nil
			}
			continue
		}
		if line[0] == ':' {
			continue
		}
		field, value, _ := bytes.Cut(line, []byte(":"))
		value = bytes.TrimPrefix(value, []byte(" "))
		switch string(field) {
		case "event":
			name = string(value)
		case "data":
			if hasData {
				data.WriteByte('\n')
			}
			data.Write(value)
			hasData = true
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	// A stream may end without the final blank line.
	dispatch()
	return nil
}

// decodeEventStream decodes body into deltas on a background goroutine. The
// channel closes when the stream ends, a delta reports Done, or ctx is
// cancelled; the body is closed in every case. Events decode fails on are
// skipped. A read error ends the stream with a Done delta.
func decodeEventStream(ctx context.Context, body io.ReadCloser, decode chunkDecoder) <-chan domain.StreamDelta {
	ch := make(chan domain.StreamDelta, 16)
	go func() {
		defer close(ch)
		defer body.Close()
		// Unblocks a read stalled on a silent server.
		stop := context.AfterFunc(ctx, func() { _ = body.Close() })
		defer stop()

		send := func(d domain.StreamDelta) bool {
			select {
			case ch <- d:
				return true
			case <-ctx.Done():
				return false
			}
		}

		err := scanEvents(body, func(ev streamEvent) bool {
			if ctx.Err() != nil {
				return false
			}
			if bytes.Equal(ev.data, doneMarker) {
				send(domain.StreamDelta{Done: true})
				return false
			}
			d, err := decode(ev.data)
			if err != nil || d == nil {
				return true
			}
			return send(*d) && !d.Done
		})
		if err != nil && ctx.Err() == nil {
			send(domain.StreamDelta{Done: true})
		}
	}()
	return ch
}
