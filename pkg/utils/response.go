package utils

import (
	"encoding/json"
	"io"
)

// RespondJSON 将 payload 以缩进 JSON 写入 w。
func RespondJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(payload)
}

// RespondError writes {"error": message} as JSON.
func RespondError(w io.Writer, message string) error {
	return RespondJSON(w, map[string]string{"error": message})
}
