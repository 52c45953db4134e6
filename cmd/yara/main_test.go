package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/yara-ai/internal/analysis/intent"
	"github.com/zhouzirui/yara-ai/internal/app"
	"github.com/zhouzirui/yara-ai/internal/config"
	chatmodel "github.com/zhouzirui/yara-ai/internal/model/chat"
	"github.com/zhouzirui/yara-ai/internal/model/persona"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("YARA_CONFIG", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--no-delay", "--log-level", "disabled"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAskPrintsCategoryReply(t *testing.T) {
	out, err := execute(t, "", "ask", "Can you build an Excel sheet?")
	require.NoError(t, err)
	assert.Contains(t, out, intent.Default().Select("excel"))
}

func TestAskStreamJSON(t *testing.T) {
	out, err := execute(t, "", "ask", "--stream", "--json", "tell me about video")
	require.NoError(t, err)
	assert.Contains(t, out, "event: chunk")
	assert.Contains(t, out, "event: done")
	assert.Contains(t, out, `"category":"video"`)
}

func TestChatSessionFlow(t *testing.T) {
	out, err := execute(t, "hello\n/suggest 1\n/doc pptx\n/history\n/quit\n", "chat", "--seed", "9")
	require.NoError(t, err)

	yara := persona.Seed()[0]
	assert.Contains(t, out, yara.Description)
	assert.Contains(t, out, "Expertise: Document Creation")
	assert.Contains(t, out, yara.OpeningLine)
	assert.Contains(t, out, intent.Default().Select("hello"))
	assert.Contains(t, out, "> "+yara.Suggestions[0])
	assert.Contains(t, out, "document type: powerpoint")
	assert.Contains(t, out, "user: hello")
}

func TestChatUnknownCommandKeepsLooping(t *testing.T) {
	out, err := execute(t, "/dance\n\n/quit\n", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown command /dance")
}

func TestDocumentWritesDownload(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "preview.html")

	out, err := execute(t, "", "document", "--seed", "4", "--type", "excel", "--out", dir, "--html", htmlPath, "Q3 budget")
	require.NoError(t, err)
	assert.Contains(t, out, "Generating your document with AI...")
	assert.Contains(t, out, "(check-circle) [success]")

	matches, err := filepath.Glob(filepath.Join(dir, "Q3_budget_*.xlsx"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	body, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "Q3 budget")

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Q3 budget")
}

func TestDocumentRejectsEmptyPrompt(t *testing.T) {
	out, err := execute(t, "", "document", "   ")
	require.Error(t, err)
	assert.Contains(t, out, "(exclamation-circle) [error] Please describe what document you want to create")
}

func TestVideoOpen(t *testing.T) {
	dir := t.TempDir()
	clip := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(clip, []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom"), 0o644))

	out, err := execute(t, "", "video", "open", clip)
	require.NoError(t, err)
	assert.Contains(t, out, "Video Loaded: clip.mp4")
	assert.Contains(t, out, "[success]")

	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("just some text"), 0o644))
	out, err = execute(t, "", "video", "open", notes)
	require.ErrorIs(t, err, errVideoRejected)
	assert.Contains(t, out, "[error] Please select a video file")
}

func TestVideoTool(t *testing.T) {
	out, err := execute(t, "", "video", "tool", "trim")
	require.NoError(t, err)
	assert.Contains(t, out, "AI Smart Trim activated!")

	_, err = execute(t, "", "video", "tool", "teleport")
	require.Error(t, err)
}

func TestContactRequiresEmail(t *testing.T) {
	out, err := execute(t, "", "contact", "--name", "Ana", "--message", "hi")
	require.Error(t, err)
	assert.Contains(t, out, "[error]")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yara.yaml")
	out, err := execute(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "typing_delay")
}

func TestChatInterruptDuringTypingExitsCleanly(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "disabled"
	cfg.Chat.TypingDelay = time.Hour

	a, err := app.New(context.Background(), cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(200*time.Millisecond, cancel)

	var out bytes.Buffer
	err = runChat(ctx, a, chatmodel.ChannelWidget, strings.NewReader("hello\n"), &out)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Yara: "+intent.Default().Select("hello"))
}
