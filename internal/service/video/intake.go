package video

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	applog "github.com/zhouzirui/yara-ai/internal/log"
	"github.com/zhouzirui/yara-ai/internal/model/notification"
)

// DefaultMaxBytes is the upload size limit (100 MB).
const DefaultMaxBytes int64 = 100 * 1024 * 1024

var (
	ErrNotVideo    = errors.New("file is not a video")
	ErrTooLarge    = errors.New("video file too large")
	ErrUnknownTool = errors.New("unknown video tool")
)

// Upload describes a local video picked by the user.
type Upload struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// SizeMB is the size in megabytes (MiB).
func (u Upload) SizeMB() float64 {
	return float64(u.Size) / (1024 * 1024)
}

// Intake validates uploads and renders the preview panel.
type Intake struct {
	maxBytes int64
	log      *zerolog.Logger
}

// NewIntake creates an intake with the given size limit; non-positive limits
// fall back to DefaultMaxBytes.
func NewIntake(maxBytes int64, logger *zerolog.Logger) *Intake {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Intake{maxBytes: maxBytes, log: applog.OrNop(logger)}
}

// Inspect reads size and sniffs the content type of the file at path.
func (in *Intake) Inspect(path string) (Upload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Upload{}, fmt.Errorf("stat video: %w", err)
	}
	if info.IsDir() {
		return Upload{}, fmt.Errorf("%w: %s is a directory", ErrNotVideo, path)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return Upload{}, fmt.Errorf("detect content type: %w", err)
	}

	upload := Upload{
		Name:        filepath.Base(path),
		Path:        path,
		Size:        info.Size(),
		ContentType: mtype.String(),
	}
	in.log.Debug().Str("name", upload.Name).Str("type", upload.ContentType).Int64("size", upload.Size).Msg("video inspected")
	return upload, nil
}

// Validate checks the content type and size limit.
func (in *Intake) Validate(u Upload) error {
	if !strings.HasPrefix(u.ContentType, "video/") {
		return fmt.Errorf("%w: %s", ErrNotVideo, u.ContentType)
	}
	if u.Size > in.maxBytes {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, u.Size)
	}
	return nil
}

// Open inspects and validates path in one step.
func (in *Intake) Open(path string) (Upload, error) {
	u, err := in.Inspect(path)
	if err != nil {
		return Upload{}, err
	}
	if err := in.Validate(u); err != nil {
		return u, err
	}
	return u, nil
}

// Notice maps an Open/Validate result to the user-facing notification.
func (in *Intake) Notice(err error) notification.Notification {
	switch {
	case err == nil:
		return notification.New(notification.Success, "Video uploaded successfully! You can now use AI tools to edit your video.")
	case errors.Is(err, ErrNotVideo):
		return notification.New(notification.Error, "Please select a video file (MP4, AVI, MOV, WMV)")
	case errors.Is(err, ErrTooLarge):
		return notification.New(notification.Error, fmt.Sprintf("File size too large. Please select a video under %dMB.", in.maxBytes/(1024*1024)))
	default:
		return notification.New(notification.Error, err.Error())
	}
}

var previewTemplate = template.Must(template.New("video").Parse(`<div class="video-header">
  <h4><i class="fas fa-video"></i> Video Loaded: {{.Name}}</h4>
  <div class="video-info">
    <span><i class="fas fa-file"></i> Size: {{printf "%.2f" .SizeMB}} MB</span>
    <span><i class="fas fa-clock"></i> Type: {{.ContentType}}</span>
  </div>
</div>
<video controls class="video-player">
  <source src="{{.Src}}" type="{{.ContentType}}">
  Your browser does not support the video tag.
</video>
<div class="video-actions">
  <p><i class="fas fa-check-circle"></i> Video is ready for AI-powered editing. Use the tools above to enhance your video.</p>
  <div class="video-progress">
    <div class="progress-bar"><div class="progress-fill complete"></div></div>
    <span>Upload Complete</span>
  </div>
</div>
`))

// RenderPreview renders the preview panel for u, playing from src.
func RenderPreview(u Upload, src string) (string, error) {
	var buf bytes.Buffer
	err := previewTemplate.Execute(&buf, struct {
		Upload
		Src template.URL
	}{Upload: u, Src: template.URL(src)})
	if err != nil {
		return "", fmt.Errorf("render video preview: %w", err)
	}
	return buf.String(), nil
}
