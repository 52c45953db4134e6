package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/zhouzirui/yara-ai/internal/analysis/intent"
	"github.com/zhouzirui/yara-ai/internal/config"
	applog "github.com/zhouzirui/yara-ai/internal/log"
	"github.com/zhouzirui/yara-ai/internal/model/persona"
	"github.com/zhouzirui/yara-ai/internal/service/ai"
	"github.com/zhouzirui/yara-ai/internal/service/chat"
	"github.com/zhouzirui/yara-ai/internal/service/contact"
	"github.com/zhouzirui/yara-ai/internal/service/document"
	"github.com/zhouzirui/yara-ai/internal/service/video"
)

// App wires together the assistant services.
type App struct {
	Config    config.Config
	Log       *zerolog.Logger
	Personas  persona.Store
	Persona   persona.Persona
	Assistant *ai.Service
	Chat      *chat.Service
	Documents *document.Generator
	Video     *video.Intake
	Contact   *contact.Service
}

// New constructs the application from configuration. A non-zero cfg.Seed
// makes every random choice reproducible.
func New(ctx context.Context, cfg config.Config, logger *zerolog.Logger) (*App, error) {
	logger = applog.OrNop(logger)

	personas := persona.NewMemoryStore(persona.Seed())
	p, ok := personas.FindByID(cfg.Chat.Persona)
	if !ok {
		return nil, fmt.Errorf("%w: %q", chat.ErrPersonaNotFound, cfg.Chat.Persona)
	}

	defaultType, err := document.ParseType(cfg.Documents.DefaultType)
	if err != nil {
		return nil, fmt.Errorf("documents.default_type: %w", err)
	}

	var selectorOpts []intent.Option
	docOpts := []document.Option{document.WithLogger(logger)}
	if cfg.Seed != 0 {
		seed := uint64(cfg.Seed)
		selectorOpts = append(selectorOpts, intent.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))))
		docOpts = append(docOpts, document.WithRand(rand.New(rand.NewPCG(seed^0x5bd1e995, seed))))
		logger.Debug().Int64("seed", cfg.Seed).Msg("deterministic randomness enabled")
	}

	model := ai.NewCannedChatModel(intent.Default(selectorOpts...), logger)
	assistant, err := ai.NewService(ctx, model, logger)
	if err != nil {
		return nil, fmt.Errorf("init assistant: %w", err)
	}

	chatSvc := chat.NewService(assistant, personas, chat.Options{
		PersonaID:           p.ID,
		TypingDelay:         cfg.Chat.TypingDelay,
		DefaultDocumentType: defaultType,
	}, logger)

	return &App{
		Config:    cfg,
		Log:       logger,
		Personas:  personas,
		Persona:   p,
		Assistant: assistant,
		Chat:      chatSvc,
		Documents: document.NewGenerator(docOpts...),
		Video:     video.NewIntake(cfg.Video.MaxUploadBytes, logger),
		Contact:   contact.NewService(logger),
	}, nil
}
