// Package preview serves the sample cards over HTTP: rendered payloads with
// Accept negotiation, an action endpoint for Outlook HTTP actions, and the
// JWKS of the card signing keys.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/elnormous/contenttype"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/utsurius/actionable-messages/actiontoken"
	"github.com/utsurius/actionable-messages/adaptivecard"
	"github.com/utsurius/actionable-messages/card"
	"github.com/utsurius/actionable-messages/internal/logctx"
	"github.com/utsurius/actionable-messages/internal/samples"
	"github.com/utsurius/actionable-messages/settings"
	"github.com/utsurius/actionable-messages/signing"
	"github.com/utsurius/actionable-messages/storage"
)

var (
	jsonMediaType  = contenttype.NewMediaType("application/json")
	htmlMediaType  = contenttype.NewMediaType("text/html")
	cardMediaTypes = []contenttype.MediaType{jsonMediaType, htmlMediaType}
)

const (
	requestIDHeader = "X-Request-Id"
	maxActionBody   = 1 << 20
)

// Config wires the server to its collaborators.
type Config struct {
	// Settings returns the current card defaults. Required.
	Settings func() settings.Settings
	// Cache stores rendered payloads. Required.
	Cache storage.Storage
	// Signer enables ?signed=true renders and the JWKS endpoint.
	Signer *signing.JWS
	// Verifier, when set, guards the action endpoint.
	Verifier *actiontoken.Verifier
	// ActionBaseURL is the public base URL of this server, used in the
	// action URLs of the samples.
	ActionBaseURL string
	// Logger defaults to discarding output.
	Logger *slog.Logger
}

// Server is an http.Handler.
type Server struct {
	cfg    Config
	log    *slog.Logger
	router chi.Router
}

var _ http.Handler = (*Server)(nil)

func New(cfg Config) (*Server, error) {
	if cfg.Settings == nil {
		return nil, errors.New("preview: settings source is required")
	}
	if cfg.Cache == nil {
		return nil, errors.New("preview: cache is required")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		cfg: cfg,
		log: slog.New(logctx.Handler{Handler: log.Handler()}),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestContext)
	r.Get("/cards", s.handleListCards)
	r.Get("/cards/{name}", s.handleGetCard)
	r.Group(func(r chi.Router) {
		if cfg.Verifier != nil {
			r.Use(actiontoken.Middleware(cfg.Verifier))
		}
		r.Post("/actions/{name}", s.handleAction)
	})
	if cfg.Signer != nil {
		r.Get("/.well-known/jwks.json", s.handleJWKS)
	}
	s.router = r
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// Invalidate drops every cached render. It is called when the settings
// change.
func (s *Server) Invalidate(ctx context.Context) error {
	var errs []error
	for _, name := range samples.Names() {
		if err := s.cfg.Cache.Delete(ctx, storage.WithCard(name)); err != nil {
			errs = append(errs, fmt.Errorf("preview: invalidate %s: %w", name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		s.log.ErrorContext(ctx, "cache.invalidate.fail", slog.String("err", err.Error()))
		return err
	}
	s.log.InfoContext(ctx, "cache.invalidate.ok")
	return nil
}

func (s *Server) requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := logctx.WithRequestData(r.Context(), &logctx.RequestData{
			RequestID:  id,
			Method:     r.Method,
			UserAgent:  r.UserAgent(),
			RemoteAddr: r.RemoteAddr,
			Path:       r.URL.Path,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeJSONError emits {"error":{"code":<status>,"message":"<reason>"}}.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", jsonMediaType.String())
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": status, "message": msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", jsonMediaType.String())
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type cardEntry struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	all := samples.All()
	out := make([]cardEntry, 0, len(all))
	for _, sm := range all {
		out = append(out, cardEntry{
			Name:        sm.Name,
			Kind:        sm.Kind.String(),
			Description: sm.Description,
			URL:         "/cards/" + sm.Name,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")
	sample, ok := samples.Lookup(name)
	if !ok {
		writeJSONError(w, http.StatusNotFound, fmt.Sprintf("unknown card %q", name))
		return
	}

	mt, _, err := contenttype.GetAcceptableMediaType(r, cardMediaTypes)
	if err != nil {
		s.log.WarnContext(r.Context(), "accept.unsupported", slog.String("accept", r.Header.Get("Accept")))
		writeJSONError(w, http.StatusNotAcceptable, "card is available as application/json or text/html")
		return
	}
	format := "json"
	if mt.Subtype == htmlMediaType.Subtype {
		format = "html"
		if r.URL.Query().Get("signed") == "true" {
			format = "signed-html"
		}
	}

	cfg := s.cfg.Settings()
	lang := cfg.LanguageCode
	if q := r.URL.Query().Get("lang"); q != "" {
		if _, err := language.Parse(q); err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid lang %q", q))
			return
		}
		lang = q
	}
	if format == "signed-html" && s.cfg.Signer == nil {
		writeJSONError(w, http.StatusNotImplemented, "signing is not configured")
		return
	}

	ctx := logctx.WithCardData(r.Context(), &logctx.CardData{
		Name:         name,
		Kind:         sample.Kind.String(),
		Format:       format,
		LanguageCode: lang,
	})
	s.log.InfoContext(ctx, "http.render.start")

	render := func() ([]byte, error) {
		opts := append(cfg.CardOptions(), card.WithLanguageCode(lang))
		if s.cfg.Signer != nil {
			opts = append(opts, card.WithSigner(s.cfg.Signer))
		}
		c, err := samples.Build(name, samples.Params{CardOptions: opts, ActionBaseURL: s.cfg.ActionBaseURL})
		if err != nil {
			return nil, err
		}
		out, err := renderCard(ctx, c, format)
		return []byte(out), err
	}
	body, hit, err := storage.Fetch(ctx, s.cfg.Cache, format, cfg.CacheTTL, render, storage.WithCardLocale(name, lang))
	switch {
	case errors.Is(err, card.ErrUnsupportedOperation):
		s.log.InfoContext(ctx, "http.render.unsupported", slog.String("err", err.Error()))
		writeJSONError(w, http.StatusNotAcceptable, err.Error())
		return
	case err != nil:
		s.log.ErrorContext(ctx, "http.render.fail", slog.String("err", err.Error()))
		writeJSONError(w, http.StatusInternalServerError, "render failed")
		return
	}
	if hit {
		s.log.DebugContext(ctx, "cache.hit")
	} else {
		s.log.DebugContext(ctx, "cache.miss")
	}

	ct := jsonMediaType.String()
	if format != "json" {
		ct = htmlMediaType.String() + "; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Language", lang)
	w.Header().Add("Vary", "Accept")
	_, _ = w.Write(body)
	s.log.InfoContext(ctx, "http.render.ok", slog.Bool("cached", hit), slog.Duration("dur", time.Since(start)))
}

func renderCard(ctx context.Context, c samples.Card, format string) (string, error) {
	switch format {
	case "html":
		return c.HTMLPayload()
	case "signed-html":
		return c.SignedHTMLPayload(ctx)
	default:
		return c.JSONPayload()
	}
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	log := s.log.With(slog.String("action", name))
	if tok, ok := actiontoken.FromContext(ctx); ok {
		log = log.With(slog.String("performer", tok.ActionPerformer()))
	}
	log.InfoContext(ctx, "http.action.start")

	ctype, err := contenttype.GetMediaType(r)
	if err != nil || ctype.Subtype != jsonMediaType.Subtype {
		log.WarnContext(ctx, "content_type.unsupported", slog.String("content_type", r.Header.Get("Content-Type")))
		writeJSONError(w, http.StatusUnsupportedMediaType, "body must be application/json")
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxActionBody))
	if err != nil {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "body too large")
		return
	}

	if name == "expense-approval" {
		s.handleExpenseDecision(ctx, log, w, body)
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		log.WarnContext(ctx, "json.decode.fail", slog.String("err", err.Error()))
		writeJSONError(w, http.StatusBadRequest, "body must be a JSON object")
		return
	}
	actiontoken.SetActionStatus(w, "Thanks, your response was recorded.")
	w.WriteHeader(http.StatusOK)
	log.InfoContext(ctx, "http.action.ok", slog.Int("fields", len(payload)))
}

// handleExpenseDecision answers with a refresh card replacing the original
// approval card.
func (s *Server) handleExpenseDecision(ctx context.Context, log *slog.Logger, w http.ResponseWriter, body []byte) {
	var d samples.ExpenseDecision
	if err := json.Unmarshal(body, &d); err != nil {
		log.WarnContext(ctx, "json.decode.fail", slog.String("err", err.Error()))
		writeJSONError(w, http.StatusBadRequest, "invalid expense decision")
		return
	}
	if d.ReportID == "" || (d.Decision != "approved" && d.Decision != "rejected") {
		writeJSONError(w, http.StatusBadRequest, "reportId and a decision of approved or rejected are required")
		return
	}

	refresh, err := adaptivecard.NewAdaptiveCard(&adaptivecard.Options{Version: "1.0"}, s.cfg.Settings().CardOptions()...)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "render failed")
		return
	}
	text := fmt.Sprintf("Expense report %s was %s.", d.ReportID, d.Decision)
	if d.Comment != "" {
		text += " Comment: " + d.Comment
	}
	if err := refresh.AddElements(adaptivecard.NewTextBlock(text, &adaptivecard.TextBlockOptions{Wrap: card.Bool(true)})); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "render failed")
		return
	}
	js, err := refresh.JSONPayload()
	if err != nil {
		log.ErrorContext(ctx, "http.action.render.fail", slog.String("err", err.Error()))
		writeJSONError(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set(actiontoken.UpdateInBodyHeader, "true")
	w.Header().Set("Content-Type", jsonMediaType.String())
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, js)
	log.InfoContext(ctx, "http.action.ok", slog.String("decision", d.Decision))
}

func (s *Server) handleJWKS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, http.StatusOK, s.cfg.Signer.JWKS())
}
