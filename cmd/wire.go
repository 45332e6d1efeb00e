package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mallcloud/mallctl/internal/adapters/api"
	filestore "github.com/mallcloud/mallctl/internal/adapters/storage/file"
	"github.com/mallcloud/mallctl/internal/application"
	"github.com/mallcloud/mallctl/internal/config"
	"github.com/mallcloud/mallctl/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg     config.Config
	cart    *application.CartStore
	session *application.SessionStore
	client  *api.Client
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	storage := filestore.NewStore(cfg.Storage.Dir)

	ctx := context.Background()
	session, err := application.NewSessionStore(ctx, storage)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	cart, err := application.NewCartStore(ctx, storage)
	if err != nil {
		return nil, fmt.Errorf("wire cart store: %w", err)
	}

	baseURL := envOrDefault("MALLCTL_API_BASE_URL", cfg.API.BaseURL)

	client, err := api.NewClient(baseURL, &http.Client{Timeout: cfg.Timeout()}, session, loginRedirect())
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	return &app{
		cfg:     cfg,
		cart:    cart,
		session: session,
		client:  client,
	}, nil
}

// loginRedirect is the terminal's login surface: when the pipeline clears an
// expired session it points the user at the login command.
func loginRedirect() ports.Navigator {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	return ports.NavigatorFunc(func(context.Context) {
		_, _ = fmt.Fprintln(os.Stderr, style.Render("Session expired. Run 'mallctl login' to sign in again."))
	})
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
