package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/campaignify"
	"github.com/dmitrymomot/campaignify/pkg/cache"
	"github.com/dmitrymomot/campaignify/pkg/sanitizer"
)

// CacheHeader reports HIT or MISS when a cache is configured.
const CacheHeader = "X-Cache"

type rewriteRequest struct {
	Text     string `json:"text"`
	Campaign string `json:"campaign"`
	Keyword  string `json:"keyword"`
	HrefOnly bool   `json:"href_only"`
	// Sanitize passes the text through an HTML sanitizer before rewriting.
	Sanitize bool `json:"sanitize"`
}

func (s *Server) handleCampaignify(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := campaignify.Params{
		Campaign: req.Campaign,
		Keyword:  req.Keyword,
		HrefOnly: req.HrefOnly,
	}
	if err := params.Validate(); err != nil {
		writeError(w, r, NewHTTPError(http.StatusBadRequest, validationMessage(err), err))
		return
	}

	text := req.Text
	if req.Sanitize {
		text = sanitizer.SanitizeHTML(text)
	}

	res, hit, err := s.rewrite(r.Context(), text, params)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "rewrite failed", slog.Any("error", err))
		writeError(w, r, err)
		return
	}
	if s.cache != nil {
		w.Header().Set(CacheHeader, cacheStatus(hit))
	}

	s.logger.DebugContext(r.Context(), "text campaignified",
		slog.String("campaign", params.Campaign),
		slog.Int("matched", res.Matched),
		slog.Int("rewritten", res.Rewritten),
		slog.Bool("cache_hit", hit),
	)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (rewriteRequest, error) {
	var req rewriteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.bodyLimit)).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large", errors.Join(ErrBodyTooLarge, err))
		}
		return req, NewHTTPError(http.StatusBadRequest, "invalid JSON body", errors.Join(ErrInvalidJSON, err))
	}
	return req, nil
}

func (s *Server) rewrite(ctx context.Context, text string, p campaignify.Params) (campaignify.Result, bool, error) {
	if s.cache == nil {
		return s.engine.Rewrite(text, p), false, nil
	}

	key := cache.Key(text, p.Campaign, p.Keyword, strconv.FormatBool(p.HrefOnly))
	return s.cache.Load(ctx, key, func(context.Context) (campaignify.Result, error) {
		return s.engine.Rewrite(text, p), nil
	})
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, campaignify.ErrEmptyCampaign):
		return "campaign is required"
	case errors.Is(err, campaignify.ErrInvalidKeyword):
		return "keyword must contain at most one %d placeholder"
	default:
		return "invalid request"
	}
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
