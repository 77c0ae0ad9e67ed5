package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/idnumber"
	"github.com/dmitrymomot/idnumber/pkg/locales"
)

// API serves the fixture endpoints from one shared Generator.
type API struct {
	gen      *idnumber.Generator
	log      *slog.Logger
	maxCount int
}

// NewAPI returns the handler set backed by gen. A nil logger discards logs.
// Panics on a nil generator.
func NewAPI(gen *idnumber.Generator, log *slog.Logger, cfg Config) *API {
	if gen == nil {
		panic("httpapi: nil generator")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	maxCount := cfg.MaxCount
	if maxCount <= 0 {
		maxCount = 1000
	}
	return &API{gen: gen, log: log, maxCount: maxCount}
}

type schemeInfo struct {
	Slug          string `json:"slug"`
	Country       string `json:"country"`
	Name          string `json:"name"`
	Invalid       bool   `json:"invalid,omitempty"`
	Formatted     bool   `json:"formatted,omitempty"`
	International bool   `json:"international,omitempty"`
}

type schemesResponse struct {
	Schemes []schemeInfo `json:"schemes"`
}

type identifiersResponse struct {
	Scheme string   `json:"scheme"`
	Values []string `json:"values"`
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (a *API) handleSchemes(w http.ResponseWriter, r *http.Request) {
	all := idnumber.Schemes()
	out := make([]schemeInfo, 0, len(all))
	for _, sc := range all {
		out = append(out, schemeInfo{
			Slug:          sc.Slug,
			Country:       sc.Country,
			Name:          sc.Name,
			Invalid:       sc.Invalid,
			Formatted:     sc.Formatted,
			International: sc.International,
		})
	}
	writeData(w, http.StatusOK, schemesResponse{Schemes: out})
}

func (a *API) handleIdentifiers(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "scheme")
	q := r.URL.Query()

	count, err := countParam(q, a.maxCount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_param", err.Error())
		return
	}

	var opts idnumber.GenerateOptions
	switch q.Get("flavor") {
	case "", "valid":
	case "invalid":
		opts.Invalid = true
	default:
		writeError(w, http.StatusBadRequest, "invalid_param", "flavor must be valid or invalid")
		return
	}

	if opts.Formatted, err = boolParam(q, "formatted"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_param", err.Error())
		return
	}
	if opts.International, err = boolParam(q, "international"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_param", err.Error())
		return
	}

	gen, err := a.requestGenerator(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_param", err.Error())
		return
	}

	values := make([]string, 0, count)
	for range count {
		v, err := gen.Generate(slug, opts)
		if err != nil {
			a.writeGenerateError(w, r, slug, err)
			return
		}
		values = append(values, v)
	}

	writeData(w, http.StatusOK, identifiersResponse{Scheme: slug, Values: values})
}

// requestGenerator returns the shared generator, or a per-request one when
// the seed or locale parameters ask for reproducible or localized output.
func (a *API) requestGenerator(q url.Values) (*idnumber.Generator, error) {
	seedRaw, locale := q.Get("seed"), q.Get("locale")
	if seedRaw == "" && locale == "" {
		return a.gen, nil
	}

	opts := make([]idnumber.Option, 0, 2)
	if seedRaw != "" {
		seed, err := strconv.ParseInt(seedRaw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: seed must be an integer", ErrInvalidParam)
		}
		opts = append(opts, idnumber.WithSeed(seed))
	}
	if locale != "" {
		table, err := locales.Load(locale)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed locale %q", ErrInvalidParam, locale)
		}
		opts = append(opts, idnumber.WithTable(table))
	}
	return idnumber.New(opts...), nil
}

func (a *API) writeGenerateError(w http.ResponseWriter, r *http.Request, slug string, err error) {
	switch {
	case errors.Is(err, idnumber.ErrUnknownScheme):
		writeError(w, http.StatusNotFound, "scheme_not_found", fmt.Sprintf("unknown scheme %q", slug))
	case errors.Is(err, idnumber.ErrUnsupportedOption):
		writeError(w, http.StatusBadRequest, "unsupported_option", err.Error())
	default:
		a.log.ErrorContext(r.Context(), "generation failed",
			slog.String("scheme", slug),
			slog.Any("error", err),
			slog.String("request_id", RequestIDFromContext(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func countParam(q url.Values, maxCount int) (int, error) {
	raw := q.Get("count")
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxCount {
		return 0, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidParam, maxCount)
	}
	return n, nil
}

func boolParam(q url.Values, key string) (bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrInvalidParam, key)
	}
	return v, nil
}
