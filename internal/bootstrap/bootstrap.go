package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	assistantoutadapter "mindmate/internal/modules/assistant/adapter/out"
	assistantout "mindmate/internal/modules/assistant/port/out"
	assistantservice "mindmate/internal/modules/assistant/service"
	assistantusecase "mindmate/internal/modules/assistant/usecase"
	billinginadapter "mindmate/internal/modules/billing/adapter/in"
	billingoutadapter "mindmate/internal/modules/billing/adapter/out"
	billingservice "mindmate/internal/modules/billing/service"
	billingusecase "mindmate/internal/modules/billing/usecase"
	callinadapter "mindmate/internal/modules/call/adapter/in"
	callservice "mindmate/internal/modules/call/service"
	callusecase "mindmate/internal/modules/call/usecase"
	chatinadapter "mindmate/internal/modules/chat/adapter/in"
	chatoutadapter "mindmate/internal/modules/chat/adapter/out"
	chatservice "mindmate/internal/modules/chat/service"
	chatusecase "mindmate/internal/modules/chat/usecase"
	meditationinadapter "mindmate/internal/modules/meditation/adapter/in"
	meditationoutadapter "mindmate/internal/modules/meditation/adapter/out"
	meditationservice "mindmate/internal/modules/meditation/service"
	meditationusecase "mindmate/internal/modules/meditation/usecase"
	quoteinadapter "mindmate/internal/modules/quote/adapter/in"
	quoteservice "mindmate/internal/modules/quote/service"
	quoteusecase "mindmate/internal/modules/quote/usecase"
	statsinadapter "mindmate/internal/modules/stats/adapter/in"
	statsservice "mindmate/internal/modules/stats/service"
	statsusecase "mindmate/internal/modules/stats/usecase"
	storeinadapter "mindmate/internal/modules/store/adapter/in"
	storeoutadapter "mindmate/internal/modules/store/adapter/out"
	storeout "mindmate/internal/modules/store/port/out"
	storeservice "mindmate/internal/modules/store/service"
	userinadapter "mindmate/internal/modules/user/adapter/in"
	userservice "mindmate/internal/modules/user/service"
	userusecase "mindmate/internal/modules/user/usecase"
	"mindmate/internal/platform/clock"
	"mindmate/internal/platform/config"
	"mindmate/internal/platform/id"
	"mindmate/internal/platform/logger"
	"mindmate/internal/platform/tx"
	"mindmate/internal/server"
	uiapp "mindmate/internal/ui/app"
)

type App struct {
	Config config.Config
	Log    *logger.Logger

	UserCLI       userinadapter.CLIHandler
	ChatCLI       chatinadapter.CLIHandler
	CallCLI       callinadapter.CLIHandler
	MeditationCLI meditationinadapter.CLIHandler
	QuoteCLI      quoteinadapter.CLIHandler
	StatsCLI      statsinadapter.CLIHandler
	BillingCLI    billinginadapter.CLIHandler
	StoreCLI      storeinadapter.CLIHandler

	HTTPModules []server.RouteRegistrar

	backend storeout.Backend
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, err
	}

	backend, err := newBackend(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	clk := clock.NewMonotonic(clock.SystemClock{})
	ids := id.Prefixed{Clock: clk}
	docs := storeservice.NewDocumentService(backend, &tx.Serial{}, clk, log)

	completer, transcriber, err := newProvider(ctx, cfg.Assist)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	assistantUC := assistantusecase.NewInteractor(assistantservice.NewAssistantService(completer, transcriber, log))

	userUC := userusecase.NewInteractor(userservice.NewUserService(clk, ids, docs))
	chatUC := chatusecase.NewInteractor(
		chatservice.NewChatService(clk, ids, docs),
		assistantUC,
		chatoutadapter.NewMarkdownTranscriptWriter(cfg.TranscriptDir()),
		log,
	)
	callUC := callusecase.NewInteractor(callservice.NewCallService(clk, ids, docs), assistantUC, log)
	meditationUC := meditationusecase.NewInteractor(
		meditationservice.NewMeditationService(clk, ids, docs),
		meditationoutadapter.NewFileActiveMeditationStore(cfg.ActivePath()),
	)
	quoteUC := quoteusecase.NewInteractor(quoteservice.NewQuoteService(clk, ids, docs))
	statsUC := statsusecase.NewInteractor(statsservice.NewStatsService(clk, ids, docs))
	billingUC := billingusecase.NewInteractor(billingservice.NewPaymentService(ids, billingoutadapter.NewStubGateway(billingoutadapter.StubConfig{
		ShopID:    cfg.Billing.ShopID,
		SecretKey: cfg.Billing.SecretKey,
		ReturnURL: cfg.Billing.ReturnURL,
		TestMode:  cfg.Billing.TestMode,
	}), log))

	return &App{
		Config: cfg,
		Log:    log,

		UserCLI:       userinadapter.NewCLIHandler(userUC),
		ChatCLI:       chatinadapter.NewCLIHandler(chatUC),
		CallCLI:       callinadapter.NewCLIHandler(callUC),
		MeditationCLI: meditationinadapter.NewCLIHandler(meditationUC),
		QuoteCLI:      quoteinadapter.NewCLIHandler(quoteUC),
		StatsCLI:      statsinadapter.NewCLIHandler(statsUC),
		BillingCLI:    billinginadapter.NewCLIHandler(billingUC),
		StoreCLI:      storeinadapter.NewCLIHandler(docs),

		HTTPModules: []server.RouteRegistrar{
			userinadapter.NewHTTPHandler(userUC),
			chatinadapter.NewHTTPHandler(chatUC),
			callinadapter.NewHTTPHandler(callUC),
			meditationinadapter.NewHTTPHandler(meditationUC),
			quoteinadapter.NewHTTPHandler(quoteUC),
			statsinadapter.NewHTTPHandler(statsUC),
			billinginadapter.NewHTTPHandler(billingUC),
		},

		backend: backend,
	}, nil
}

func (a *App) Close() error {
	a.Log.Sync()
	return a.backend.Close()
}

// Server assembles the HTTP surface: module routes under /v1 and the
// upstream relay under /api.
func (a *App) Server() (*server.Server, error) {
	proxy, err := server.NewUpstreamProxy(a.Config.Upstream, "/api", a.Log.With("component", "proxy"))
	if err != nil {
		return nil, err
	}
	router := server.NewRouter(server.RouterConfig{
		Log:         a.Log.With("component", "http"),
		CORSOrigins: a.Config.HTTP.CORSOrigins,
		Proxy:       proxy,
		Modules:     a.HTTPModules,
	})
	return server.New(a.Config.HTTP.Addr, router, a.Log), nil
}

func RunTUI(userID string, app *App) error {
	model := uiapp.NewModel(userID, app.StatsCLI, app.QuoteCLI, app.MeditationCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newBackend(ctx context.Context, cfg config.StoreConfig) (storeout.Backend, error) {
	switch cfg.Backend {
	case "file":
		return storeoutadapter.NewFileBackend(cfg.DocumentPath), nil
	case "sqlite":
		backend, err := storeoutadapter.NewSQLiteBackend(cfg.SQLitePath, cfg.Slot)
		if err != nil {
			return nil, fmt.Errorf("new sqlite backend: %w", err)
		}
		return backend, nil
	case "redis":
		backend, err := storeoutadapter.NewRedisBackend(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.Slot)
		if err != nil {
			return nil, fmt.Errorf("new redis backend: %w", err)
		}
		return backend, nil
	case "memory":
		return storeoutadapter.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Backend)
	}
}

func newProvider(ctx context.Context, cfg config.AssistConfig) (assistantout.Completer, assistantout.Transcriber, error) {
	switch cfg.Provider {
	case "gemini":
		client, err := assistantoutadapter.NewGeminiClient(ctx, assistantoutadapter.GeminiConfig{APIKey: cfg.APIKey, Model: cfg.Model})
		if err != nil {
			return nil, nil, fmt.Errorf("new gemini client: %w", err)
		}
		return client, client, nil
	default:
		client := assistantoutadapter.NewOpenAIClient(assistantoutadapter.OpenAIConfig{
			BaseURL:     cfg.BaseURL,
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			SpeechModel: cfg.Speech,
		})
		return client, client, nil
	}
}
