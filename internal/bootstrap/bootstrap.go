package bootstrap

import (
	"fmt"

	"chefctl/internal/chefapi"
	authinadapter "chefctl/internal/modules/auth/adapter/in"
	authoutadapter "chefctl/internal/modules/auth/adapter/out"
	authservice "chefctl/internal/modules/auth/service"
	authusecase "chefctl/internal/modules/auth/usecase"
	historyinadapter "chefctl/internal/modules/history/adapter/in"
	historyoutadapter "chefctl/internal/modules/history/adapter/out"
	historyservice "chefctl/internal/modules/history/service"
	historyusecase "chefctl/internal/modules/history/usecase"
	orderinginadapter "chefctl/internal/modules/ordering/adapter/in"
	orderingoutadapter "chefctl/internal/modules/ordering/adapter/out"
	orderingservice "chefctl/internal/modules/ordering/service"
	orderingusecase "chefctl/internal/modules/ordering/usecase"
	"chefctl/internal/platform/clock"
	"chefctl/internal/platform/config"
	"chefctl/internal/platform/logging"
	"chefctl/internal/ui/prompt"
)

// App wires the modules once per invocation; commands talk to the inbound
// adapters only.
type App struct {
	AuthCLI    authinadapter.CLIHandler
	OrderCLI   orderinginadapter.CLIHandler
	HistoryCLI historyinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	logger := logging.New(cfg.Debug)
	clk := clock.SystemClock{}

	client, err := chefapi.New(chefapi.Config{
		BaseURL:   cfg.BaseURL,
		AccessKey: cfg.AccessKey,
		Timeout:   cfg.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("new service client: %w", err)
	}

	prompter := prompt.New()
	store := authoutadapter.NewFileCredentialStore(cfg.CredentialsPath)
	remote := authoutadapter.NewChefAPIAuthenticator(client)
	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(remote, store),
		store, remote, prompter, logger,
	)

	journalStore, err := historyoutadapter.NewSQLiteSubmissionStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new submission journal: %w", err)
	}
	historyUC := historyusecase.NewInteractor(historyservice.NewHistoryService(clk, journalStore))

	orderUC := orderingusecase.NewInteractor(
		orderingservice.NewOrderService(clk),
		authUC,
		orderingoutadapter.NewChefAPIGateway(client),
		prompter,
		historyUC,
		logger,
	)

	return &App{
		AuthCLI:    authinadapter.NewCLIHandler(authUC),
		OrderCLI:   orderinginadapter.NewCLIHandler(orderUC),
		HistoryCLI: historyinadapter.NewCLIHandler(historyUC),
	}, nil
}
