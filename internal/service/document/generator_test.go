package document

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 4, 15, 6, 7, 0, time.UTC)

func newTestGenerator(pick func(int) int) *Generator {
	g := NewGenerator(WithClock(func() time.Time { return fixedNow }))
	if pick != nil {
		g.intn = pick
	}
	return g
}

func statValue(t *testing.T, p Preview, label string) string {
	t.Helper()
	for _, s := range p.Stats {
		if s.Label == label {
			return s.Value
		}
	}
	t.Fatalf("stat %q missing from %+v", label, p.Stats)
	return ""
}

func TestRenderWordUsesLowerBounds(t *testing.T) {
	g := newTestGenerator(func(int) int { return 0 })

	p, err := g.Render(Word, "  Business plan  ")
	require.NoError(t, err)
	assert.Equal(t, "Generated Word Document", p.Title)
	assert.Equal(t, "Business plan", p.Prompt)
	assert.Equal(t, "3", statValue(t, p, "Pages"))
	assert.Equal(t, "1500", statValue(t, p, "Word Count"))
	assert.Equal(t, "5 minutes", statValue(t, p, "Reading Time"))
	assert.Contains(t, p.HTML, "3/4/2025")
	assert.Contains(t, p.HTML, "<h4>Business plan</h4>")
}

func TestRenderUpperBounds(t *testing.T) {
	g := newTestGenerator(func(n int) int { return n - 1 })

	excel, err := g.Render(Excel, "budget")
	require.NoError(t, err)
	assert.Equal(t, "7", statValue(t, excel, "Worksheets"))
	assert.Equal(t, "69", statValue(t, excel, "Formulas"))
	assert.Equal(t, "10", statValue(t, excel, "Charts"))
	assert.Contains(t, excel.HTML, "$5999")
	assert.Contains(t, excel.HTML, "99%")
	assert.Contains(t, excel.HTML, "100%")

	slides, err := g.Render(PowerPoint, "energy")
	require.NoError(t, err)
	assert.Equal(t, "22", statValue(t, slides, "Total Slides"))
	assert.Equal(t, "44 minutes", statValue(t, slides, "Duration"))
	assert.Contains(t, slides.HTML, "499K")
	assert.Contains(t, slides.HTML, "49M")
	assert.Contains(t, slides.HTML, "Slide 22: Conclusion")
}

func TestRenderEscapesPrompt(t *testing.T) {
	g := newTestGenerator(nil)

	p, err := g.Render(Word, `<script>alert("x")</script>`)
	require.NoError(t, err)
	assert.NotContains(t, p.HTML, "<script>")
	assert.Contains(t, p.HTML, "&lt;script&gt;")
}

func TestRenderUnknownTypeFallsBack(t *testing.T) {
	g := newTestGenerator(nil)

	p, err := g.Render(Type("pdf"), "anything")
	require.NoError(t, err)
	assert.Equal(t, fallbackHTML, p.HTML)
}

func TestRenderRejectsEmptyPrompt(t *testing.T) {
	g := newTestGenerator(nil)

	_, err := g.Render(Word, "   ")
	require.ErrorIs(t, err, ErrEmptyPrompt)
	_, err = g.Download(Word, "")
	require.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestRenderSeededIsDeterministic(t *testing.T) {
	a := NewGenerator(WithRand(rand.New(rand.NewPCG(3, 4))), WithClock(func() time.Time { return fixedNow }))
	b := NewGenerator(WithRand(rand.New(rand.NewPCG(3, 4))), WithClock(func() time.Time { return fixedNow }))

	pa, err := a.Render(PowerPoint, "deck")
	require.NoError(t, err)
	pb, err := b.Render(PowerPoint, "deck")
	require.NoError(t, err)
	assert.Equal(t, pa.HTML, pb.HTML)
}

func TestDownload(t *testing.T) {
	g := newTestGenerator(nil)

	f, err := g.Download(Excel, "Q3 budget: marketing & sales <draft>")
	require.NoError(t, err)
	assert.Equal(t, "Q3_budget__marketing___sales___1741100767000.xlsx", f.Name)
	assert.Equal(t, "text/plain", f.ContentType)

	body := string(f.Content)
	assert.Contains(t, body, "Document Type: EXCEL")
	assert.Contains(t, body, "Title: Q3 budget: marketing & sales <draft>")
	assert.Contains(t, body, "Generated: 3/4/2025, 3:06:07 PM")
	assert.Contains(t, body, "© 2025 Yara AI Platform")
}

func TestFilename(t *testing.T) {
	at := time.UnixMilli(42)

	assert.Equal(t, "report_42.docx", Filename(Word, "report", at))
	assert.Equal(t, "caf__42.txt", Filename(Type("x"), "café", at))

	long := strings.Repeat("a", 40)
	assert.Equal(t, strings.Repeat("a", 30)+"_42.pptx", Filename(PowerPoint, long, at))
}

func TestFilenameCountsUTF16Units(t *testing.T) {
	at := time.UnixMilli(1)

	assert.Equal(t, "___launch_plan_1.docx", Filename(Word, "🚀 launch plan", at))

	// the limit falls inside the surrogate pair, leaving one unit
	cut := strings.Repeat("a", 29) + "🚀tail"
	assert.Equal(t, strings.Repeat("a", 29)+"__1.docx", Filename(Word, cut, at))

	emojis := strings.Repeat("🎬", 20)
	assert.Equal(t, strings.Repeat("_", 30)+"_1.xlsx", Filename(Excel, emojis, at))
}

func TestSeededGeneratorIsSafeForConcurrentRenders(t *testing.T) {
	g := NewGenerator(WithRand(rand.New(rand.NewPCG(3, 5))))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := g.Render(Excel, "quarterly numbers"); err != nil {
					t.Errorf("render: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNotices(t *testing.T) {
	assert.Equal(t, "info", string(EditNotice().Kind))
	assert.Equal(t, "error", string(EmptyPromptNotice().Kind))
	n := DownloadedNotice(File{Name: "a.docx"})
	assert.Equal(t, `Document "a.docx" has been downloaded successfully!`, n.Message)
}
