package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// SendEvent writes one event in Server-Sent Events framing
// ("event: <name>\ndata: <json>\n\n"), which keeps streamed CLI output easy to
// pipe into tools that already speak SSE.
func SendEvent(w io.Writer, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}
	if event != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}
