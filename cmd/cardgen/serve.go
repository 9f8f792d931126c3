package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/utsurius/actionable-messages/actiontoken"
	"github.com/utsurius/actionable-messages/internal/preview"
	"github.com/utsurius/actionable-messages/settings"
	"github.com/utsurius/actionable-messages/signing"
	"github.com/utsurius/actionable-messages/storage"
	boltstore "github.com/utsurius/actionable-messages/storage/bolt"
	"github.com/utsurius/actionable-messages/storage/memory"
	redisstore "github.com/utsurius/actionable-messages/storage/redis"
)

type serveFlags struct {
	addr         string
	publicURL    string
	verifyTokens bool
	issuer       string
	signingKey   string
	cacheSize    int
}

func newServeCmd(a *app) *cobra.Command {
	f := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sample cards over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, f)
		},
	}
	cmd.Flags().StringVar(&f.addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&f.publicURL, "public-url", "http://localhost:8080", "Public base URL, used in action URLs and as the token audience")
	cmd.Flags().BoolVar(&f.verifyTokens, "verify-tokens", false, "Require Outlook action tokens on the action endpoint")
	cmd.Flags().StringVar(&f.issuer, "issuer", actiontoken.DefaultIssuer, "Action token issuer")
	cmd.Flags().StringVar(&f.signingKey, "signing-key", "", "PEM PKCS#8 Ed25519 or RSA key for signed cards (default: ephemeral Ed25519)")
	cmd.Flags().IntVar(&f.cacheSize, "cache-size", 1024, "Entries kept by the in-memory cache")
	return cmd
}

func (a *app) serve(ctx context.Context, f *serveFlags) error {
	cache, backend, err := openCache(ctx, a.settings, f.cacheSize)
	if err != nil {
		return err
	}
	defer cache.Close()
	a.log.InfoContext(ctx, "cache.open.ok", slog.String("backend", backend))

	signer, err := loadSigner(f.signingKey)
	if err != nil {
		return err
	}

	current := func() settings.Settings { return a.settings }
	var watcher *settings.Watcher
	if a.configPath != "" {
		watcher, err = settings.NewWatcher(a.configPath, a.log, a.envFiles...)
		if err != nil {
			return err
		}
		defer watcher.Close()
		current = watcher.Current
	}

	cfg := preview.Config{
		Settings:      current,
		Cache:         cache,
		Signer:        signer,
		ActionBaseURL: f.publicURL,
		Logger:        a.log,
	}
	if f.verifyTokens {
		tc := actiontoken.DefaultConfig()
		tc.Issuer = f.issuer
		tc.Audience = f.publicURL
		tc.Logger = a.log
		cfg.Verifier, err = actiontoken.NewFromDiscovery(ctx, tc)
		if err != nil {
			return err
		}
	}
	srv, err := preview.New(cfg)
	if err != nil {
		return err
	}
	if watcher != nil {
		watcher.OnChange(func(settings.Settings) { _ = srv.Invalidate(ctx) })
		go func() { _ = watcher.Run(ctx) }()
	}

	hs := &http.Server{
		Addr:         f.addr,
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		a.log.InfoContext(ctx, "http.listen", slog.String("addr", f.addr))
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	a.log.Info("http.shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return hs.Shutdown(shutdownCtx)
}

// openCache picks the backend from the settings: redis, then bolt, then
// memory.
func openCache(ctx context.Context, s settings.Settings, size int) (storage.Storage, string, error) {
	switch {
	case s.RedisAddr != "":
		client := goredis.NewClient(&goredis.Options{Addr: s.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, "", fmt.Errorf("redis %s: %w", s.RedisAddr, err)
		}
		st, err := redisstore.New(redisstore.Config{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, "", err
		}
		return st, "redis", nil
	case s.BoltPath != "":
		st, err := boltstore.New(s.BoltPath)
		if err != nil {
			return nil, "", err
		}
		return st, "bolt", nil
	default:
		st, err := memory.New(size)
		if err != nil {
			return nil, "", err
		}
		return st, "memory", nil
	}
}

// loadSigner reads a PEM encoded PKCS#8 key, or creates an ephemeral one
// when path is empty.
func loadSigner(path string) (*signing.JWS, error) {
	if path == "" {
		return ephemeralSigner()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, fmt.Errorf("signing key %s: no PEM block", path)
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("signing key %s: %w", path, err)
	}
	j := signing.NewJWS()
	kid := keyID(block.Bytes)
	switch k := key.(type) {
	case ed25519.PrivateKey:
		j.AddEd25519Key(kid, k)
	case *rsa.PrivateKey:
		j.AddRSAKey(kid, k)
	default:
		return nil, fmt.Errorf("signing key %s: unsupported key type %T", path, key)
	}
	return j, nil
}

// keyID derives a stable kid from the key material.
func keyID(der []byte) string { return uuid.NewSHA1(uuid.NameSpaceOID, der).String() }
