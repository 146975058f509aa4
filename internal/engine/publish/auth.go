// Package publish drives the hosting backend: authenticated session setup,
// chunked resumable video upload, localization updates, caption batches, and
// the supported-language query. It depends on engine for configuration,
// the language catalog, and the localization reconciler.
package publish

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

// Scopes required for upload and localization/caption management.
var scopes = []string{
	youtube.YoutubeUploadScope,
	youtube.YoutubeForceSslScope,
}

// redirectAddr is where the one-shot authorization flow listens.
const redirectAddr = "localhost:8080"

// NewService returns a ready-to-use YouTube service. Credentials come from
// the configured client secrets file; the cached token is refreshed
// transparently, and a browser authorization flow runs when no usable token
// exists. The refreshed token is persisted back to the token file.
func NewService(ctx context.Context) (*youtube.Service, error) {
	secretsFile := engine.Cfg.ClientSecretsFile
	data, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("auth: client secrets not found: %s (download OAuth credentials from Google Cloud Console)", secretsFile)
	}
	conf, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("auth: parse %s: %w", secretsFile, err)
	}
	conf.RedirectURL = "http://" + redirectAddr

	tokenFile := engine.Cfg.TokenFile
	token, err := tokenFromFile(tokenFile)
	if err != nil {
		slog.Info("auth: no cached token, starting authorization flow")
		token, err = authorize(ctx, conf)
		if err != nil {
			return nil, err
		}
	}

	// TokenSource refreshes expired tokens on demand; persist the result so
	// the next run skips the refresh round trip.
	source := conf.TokenSource(ctx, token)
	fresh, err := source.Token()
	if err != nil {
		slog.Info("auth: cached token unusable, re-authorizing", slog.Any("error", err))
		fresh, err = authorize(ctx, conf)
		if err != nil {
			return nil, err
		}
		source = conf.TokenSource(ctx, fresh)
	}
	if fresh.AccessToken != token.AccessToken {
		if err := saveToken(tokenFile, fresh); err != nil {
			slog.Warn("auth: token save failed", slog.Any("error", err))
		}
	}

	svc, err := youtube.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, source)))
	if err != nil {
		return nil, fmt.Errorf("auth: youtube service: %w", err)
	}
	return svc, nil
}

// authorize runs the installed-app flow: print the consent URL, catch the
// redirect on a local listener, exchange the code, persist the token.
func authorize(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	state, err := randomState()
	if err != nil {
		return nil, err
	}

	type result struct {
		code string
		err  error
	}
	results := make(chan result, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- result{err: fmt.Errorf("auth: state mismatch")}
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			results <- result{err: fmt.Errorf("auth: redirect missing code")}
			return
		}
		fmt.Fprintln(w, "Authorized. You can close this window.")
		results <- result{code: code}
	})

	server := &http.Server{Addr: redirectAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			results <- result{err: fmt.Errorf("auth: redirect listener: %w", err)}
		}
	}()
	defer server.Close()

	url := conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Printf("Open this URL in your browser to authorize:\n\n  %s\n\n", url)

	var res result
	select {
	case res = <-results:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.err != nil {
		return nil, res.err
	}

	token, err := conf.Exchange(ctx, res.code)
	if err != nil {
		return nil, fmt.Errorf("auth: code exchange: %w", err)
	}
	if err := saveToken(engine.Cfg.TokenFile, token); err != nil {
		slog.Warn("auth: token save failed", slog.Any("error", err))
	}
	return token, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("auth: parse %s: %w", path, err)
	}
	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: random state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
