package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	applog "github.com/zhouzirui/yara-ai/internal/log"
	"github.com/zhouzirui/yara-ai/internal/model/notification"
)

// ErrIncomplete is returned when a submission misses a field.
var ErrIncomplete = errors.New("contact form incomplete")

// Submission is the contact form payload.
type Submission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Service 校验联系表单并返回提示信息。表单内容不会被保存或发送。
type Service struct {
	validate *validator.Validate
	log      *zerolog.Logger
}

// NewService creates the contact form service.
func NewService(logger *zerolog.Logger) *Service {
	return &Service{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      applog.OrNop(logger),
	}
}

// Submit validates s and returns the notification to show.
func (svc *Service) Submit(ctx context.Context, s Submission) (notification.Notification, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = strings.TrimSpace(s.Message)

	if err := svc.validate.StructCtx(ctx, s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			svc.log.Debug().Strs("fields", fields).Msg("contact form rejected")
			return notification.New(notification.Error, "Please fill in all fields before submitting."),
				fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(fields, ", "))
		}
		return notification.Notification{}, fmt.Errorf("validate contact form: %w", err)
	}

	svc.log.Info().Msg("contact form accepted")
	return notification.New(notification.Success, "Thank you for your message! We'll get back to you within 24 hours."), nil
}
