package document

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	texttemplate "text/template"
	"time"
	"unicode"
	"unicode/utf16"

	"github.com/rs/zerolog"

	applog "github.com/zhouzirui/yara-ai/internal/log"
	"github.com/zhouzirui/yara-ai/internal/model/notification"
)

const (
	dateLayout     = "1/2/2006"
	dateTimeLayout = "1/2/2006, 3:04:05 PM"
	filenameUnits  = 30
)

// ErrEmptyPrompt is returned when no description was given.
var ErrEmptyPrompt = errors.New("document prompt is empty")

var downloadText = texttemplate.Must(texttemplate.New("download").Parse(downloadTemplate))

// Stat is one label/value pair of a preview summary.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Preview is a rendered document preview.
type Preview struct {
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Prompt      string    `json:"prompt"`
	Stats       []Stat    `json:"stats"`
	HTML        string    `json:"html"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// File is a generated download.
type File struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"-"`
}

// Option customises a Generator.
type Option func(*Generator)

// WithRand draws filler numbers from r. Draws are serialised because a
// *rand.Rand is not safe for concurrent use.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			var mu sync.Mutex
			g.intn = func(n int) int {
				mu.Lock()
				defer mu.Unlock()
				return r.IntN(n)
			}
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(g *Generator) {
		g.log = applog.OrNop(logger)
	}
}

// Generator renders canned document previews filled with random figures.
type Generator struct {
	intn func(n int) int
	now  func() time.Time
	log  *zerolog.Logger
}

// NewGenerator creates a generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		intn: rand.IntN,
		now:  time.Now,
		log:  applog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// between returns a random integer in [lo, lo+span).
func (g *Generator) between(lo, span int) int {
	return lo + g.intn(span)
}

// Render builds the preview for prompt. Unknown types get a generic success
// snippet instead of an error.
func (g *Generator) Render(t Type, prompt string) (Preview, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Preview{}, ErrEmptyPrompt
	}

	now := g.now()
	date := now.Format(dateLayout)
	preview := Preview{Type: t, Prompt: prompt, GeneratedAt: now}

	var data any
	switch t {
	case Word:
		d := struct {
			Date, Prompt                     string
			Pages, WordCount, ReadingMinutes int
		}{
			Date:           date,
			Prompt:         prompt,
			Pages:          g.between(3, 5),
			WordCount:      g.between(1500, 2000),
			ReadingMinutes: g.between(5, 8),
		}
		preview.Title = "Generated Word Document"
		preview.Stats = []Stat{
			{"Pages", strconv.Itoa(d.Pages)},
			{"Word Count", strconv.Itoa(d.WordCount)},
			{"Reading Time", fmt.Sprintf("%d minutes", d.ReadingMinutes)},
			{"Complexity", "Professional"},
		}
		data = d
	case Excel:
		d := struct {
			Date, Prompt                 string
			Worksheets, Formulas, Charts int
			Rows                         []excelRow
		}{
			Date:       date,
			Prompt:     prompt,
			Worksheets: g.between(3, 5),
			Formulas:   g.between(20, 50),
			Charts:     g.between(3, 8),
			Rows: []excelRow{
				{Category: "Sample Category A", Amount: g.between(1000, 5000), Status: "Active", StatusClass: "active", Progress: g.intn(100), Shaded: true},
				{Category: "Sample Category B", Amount: g.between(1000, 5000), Status: "Pending", StatusClass: "pending", Progress: g.intn(100)},
				{Category: "Sample Category C", Amount: g.between(1000, 5000), Status: "Complete", StatusClass: "active", Progress: 100, Shaded: true},
			},
		}
		preview.Title = "Generated Excel Spreadsheet"
		preview.Stats = []Stat{
			{"Worksheets", strconv.Itoa(d.Worksheets)},
			{"Formulas", strconv.Itoa(d.Formulas)},
			{"Charts", strconv.Itoa(d.Charts)},
		}
		data = d
	case PowerPoint:
		d := struct {
			Date, Prompt                                    string
			Slides, Growth, Users, Revenue, DurationMinutes int
		}{
			Date:            date,
			Prompt:          prompt,
			Slides:          g.between(8, 15),
			Growth:          g.intn(100),
			Users:           g.intn(500),
			Revenue:         g.intn(50),
			DurationMinutes: g.between(15, 30),
		}
		preview.Title = "Generated PowerPoint Presentation"
		preview.Stats = []Stat{
			{"Total Slides", strconv.Itoa(d.Slides)},
			{"Duration", fmt.Sprintf("%d minutes", d.DurationMinutes)},
			{"Animations", "Professional"},
		}
		data = d
	default:
		preview.Title = "Generated Document"
		preview.HTML = fallbackHTML
		return preview, nil
	}

	var buf bytes.Buffer
	if err := previewTemplates[t].Execute(&buf, data); err != nil {
		return Preview{}, fmt.Errorf("render %s preview: %w", t, err)
	}
	preview.HTML = buf.String()

	g.log.Debug().Str("type", string(t)).Int("html_len", buf.Len()).Msg("document preview rendered")
	return preview, nil
}

type excelRow struct {
	Category    string
	Amount      int
	Status      string
	StatusClass string
	Progress    int
	Shaded      bool
}

// Download builds the plain-text file offered by the download button.
func (g *Generator) Download(t Type, prompt string) (File, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return File{}, ErrEmptyPrompt
	}

	now := g.now()
	var buf bytes.Buffer
	err := downloadText.Execute(&buf, map[string]any{
		"Type":      strings.ToUpper(string(t)),
		"Prompt":    prompt,
		"Generated": now.Format(dateTimeLayout),
		"Year":      now.Year(),
	})
	if err != nil {
		return File{}, fmt.Errorf("render download: %w", err)
	}

	return File{
		Name:        Filename(t, prompt, now),
		ContentType: "text/plain",
		Content:     buf.Bytes(),
	}, nil
}

// Filename derives the download name from the first 30 UTF-16 code units of the
// prompt, every unit outside [A-Za-z0-9] becoming '_', followed by a millisecond
// timestamp and the type extension. A rune outside the BMP counts as two units,
// so an emoji yields "__" and one cut at the limit yields a single '_'.
func Filename(t Type, prompt string, at time.Time) string {
	var b strings.Builder
	units := 0
	for _, r := range prompt {
		if units == filenameUnits {
			break
		}
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			units++
			continue
		}
		n := utf16.RuneLen(r)
		if n < 1 {
			n = 1
		}
		n = min(n, filenameUnits-units)
		b.WriteString(strings.Repeat("_", n))
		units += n
	}
	return fmt.Sprintf("%s_%d.%s", b.String(), at.UnixMilli(), Extension(t))
}

// DownloadedNotice confirms a finished download.
func DownloadedNotice(f File) notification.Notification {
	return notification.New(notification.Success, fmt.Sprintf("Document %q has been downloaded successfully!", f.Name))
}

// EditNotice is shown by the edit button.
func EditNotice() notification.Notification {
	return notification.New(notification.Info, "Opening document editor... This feature will allow you to customize and refine your generated document.")
}

// EmptyPromptNotice asks the user for a description.
func EmptyPromptNotice() notification.Notification {
	return notification.New(notification.Error, "Please describe what document you want to create")
}
