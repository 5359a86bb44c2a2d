package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/auth/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/metrics"
)

const (
	stateKeyPrefix = "oauth:state:"
	stateTTL       = 10 * time.Minute
)

// GoogleOAuth drives the authorization-code flow against Google. State
// nonces live in the store so any instance can complete a flow it did not
// start.
type GoogleOAuth struct {
	conf  *oauth2.Config
	store *docstore.Store

	// overridden in tests to point at a local userinfo server
	apiOpts []option.ClientOption
}

// NewGoogleOAuth creates the OAuth helper. Returns nil when no client ID is
// configured; callers treat a nil helper as the integration being off.
func NewGoogleOAuth(clientID, clientSecret, redirectURL string, store *docstore.Store) *GoogleOAuth {
	if clientID == "" {
		return nil
	}
	return &GoogleOAuth{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		store: store,
	}
}

// AuthURL mints a single-use state nonce and returns the Google consent URL
// carrying it.
func (g *GoogleOAuth) AuthURL(ctx context.Context) (url, state string, err error) {
	state = uuid.NewString()
	if err := g.store.SetKV(ctx, stateKeyPrefix+state, "pending", stateTTL); err != nil {
		return "", "", fmt.Errorf("failed to persist oauth state: %w", err)
	}
	return g.conf.AuthCodeURL(state), state, nil
}

// Exchange completes the flow: verifies the state nonce, trades the code for
// a token and resolves the user via the userinfo endpoint.
func (g *GoogleOAuth) Exchange(ctx context.Context, code, state string) (*domain.User, error) {
	if err := g.consumeState(ctx, state); err != nil {
		return nil, err
	}

	token, err := g.conf.Exchange(ctx, code)
	metrics.ObserveUpstream("google", "exchange", err)
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	opts := append([]option.ClientOption{
		option.WithTokenSource(g.conf.TokenSource(ctx, token)),
	}, g.apiOpts...)

	svc, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	metrics.ObserveUpstream("google", "userinfo", err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}

	return &domain.User{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}

func (g *GoogleOAuth) consumeState(ctx context.Context, state string) error {
	if state == "" {
		return domain.ErrInvalidState
	}
	if _, err := g.store.GetKV(ctx, stateKeyPrefix+state); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return domain.ErrInvalidState
		}
		return err
	}
	return g.store.DelKV(ctx, stateKeyPrefix+state)
}
