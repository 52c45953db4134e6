package video

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/yara-ai/internal/model/notification"
)

// Tool is one of the editor's canned AI actions.
type Tool string

const (
	ToolTrim      Tool = "trim"
	ToolEffects   Tool = "effects"
	ToolText      Tool = "text"
	ToolMusic     Tool = "music"
	ToolEnhance   Tool = "enhance"
	ToolSubtitles Tool = "subtitles"
)

var toolNotices = map[Tool]string{
	ToolTrim:      "🎬 AI Smart Trim activated! This feature analyzes your video and suggests optimal cutting points.",
	ToolEffects:   "✨ AI Effects library opened! Choose from professional filters, transitions, and visual enhancements.",
	ToolText:      "📝 AI Text Overlay activated! Add dynamic titles, captions, and animated text to your video.",
	ToolMusic:     "🎵 AI Music Library opened! Browse royalty-free tracks that match your video's mood and tempo.",
	ToolEnhance:   "🔍 AI Quality Enhancement started! Improving resolution, stabilization, and color correction.",
	ToolSubtitles: "💬 AI Auto Subtitles activated! Generating accurate captions with speaker recognition.",
}

// Tools lists the tools in toolbar order.
func Tools() []Tool {
	return []Tool{ToolTrim, ToolEffects, ToolText, ToolMusic, ToolEnhance, ToolSubtitles}
}

// ToolNotice returns the info notification shown when tool is clicked.
func ToolNotice(name string) (notification.Notification, error) {
	msg, ok := toolNotices[Tool(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return notification.Notification{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return notification.New(notification.Info, msg), nil
}
