package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/sentinel/internal/config"
	"github.com/Rorical/sentinel/internal/core"
	"github.com/Rorical/sentinel/internal/dispatcher"
	"github.com/Rorical/sentinel/internal/eventbus"
	"github.com/Rorical/sentinel/internal/models"
	"github.com/Rorical/sentinel/internal/transport"
	"github.com/Rorical/sentinel/ui/styles"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *zap.Logger
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.Service
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	profile := cfg.Profile()

	// A broken profile still gets a UI; submissions then report the failure
	classifier, err := transport.New(profile, logger)
	if err != nil {
		logger.Warn("Classifier unavailable", zap.String("profile", cfg.ActiveProfile), zap.Error(err))
		classifier = nil
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Warn("Event bus error", zap.String("operation", e.Operation), zap.Error(e.Err))
	})

	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewService(classifier, core.NewValidator(profile.MinChars), eb, logger)

	model := &AppModel{
		appModel:   createInitialAppModel(cfg, classifier != nil),
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		logger:     logger,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.logger.Info("Starting", zap.String("profile", app.config.ActiveProfile))
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	app.logger.Info("Stopped")
}

func createInitialAppModel(cfg *config.Config, ready bool) models.AppModel {
	profile := cfg.Profile()

	ta := textarea.New()
	ta.Placeholder = "Paste your article text here to check for misinformation..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(74)
	ta.SetHeight(10)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle()

	endpoint := profile.Endpoint
	if profile.Provider == config.ProviderOpenAI {
		endpoint = "openai:" + profile.Model
	}

	status := "Ready"
	if !ready {
		status = "Classifier not configured"
	}

	return models.AppModel{
		Submission:   models.State{Phase: models.Idle},
		Input:        ta,
		Spinner:      sp,
		Status:       status,
		MinChars:     profile.MinChars,
		ProfileName:  cfg.ActiveProfile,
		Endpoint:     endpoint,
		ServiceReady: ready,
	}
}
