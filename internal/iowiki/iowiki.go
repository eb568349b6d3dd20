// Package iowiki implements wiki.Client over the MediaWiki APIs of English
// Wikipedia and Wikidata.
package iowiki

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/wiki"
	"github.com/gnames/watchseed/pkg/wikidata"
)

type iowiki struct {
	cfg    config.APIConfig
	client *http.Client
	enc    gnfmt.GNjson
}

// New creates a client. Every request has the configured User-Agent and
// timeout, there are no retries.
func New(cfg config.APIConfig) wiki.Client {
	res := iowiki{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
	}
	return &res
}

// apiError is the error envelope MediaWiki returns with status 200.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type queryResponse struct {
	Error *apiError `json:"error"`
	Query struct {
		Pages []page `json:"pages"`
	} `json:"query"`
}

type page struct {
	Title     string `json:"title"`
	Missing   bool   `json:"missing"`
	PageProps struct {
		WikibaseItem string `json:"wikibase_item"`
	} `json:"pageprops"`
}

type extractResponse struct {
	Error *apiError `json:"error"`
	Query struct {
		Pages []struct {
			Title   string `json:"title"`
			Missing bool   `json:"missing"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

type searchResponse struct {
	Error *apiError `json:"error"`
	wikidata.SearchResponse
}

type entitiesResponse struct {
	Error *apiError `json:"error"`
	wikidata.EntitiesResponse
}

func (w *iowiki) QIDByTitle(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"titles":        {title},
		"prop":          {"pageprops"},
		"ppprop":        {"wikibase_item"},
	}
	var resp queryResponse
	if err := w.get(ctx, w.cfg.WikipediaURL, params, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", APIResponseError(w.cfg.WikipediaURL, resp.Error.Code, resp.Error.Info)
	}

	pages := resp.Query.Pages
	if len(pages) == 0 || pages[0].Missing {
		return "", nil
	}
	return pages[0].PageProps.WikibaseItem, nil
}

func (w *iowiki) SearchFirst(ctx context.Context, text string) (string, error) {
	params := url.Values{
		"action":   {"wbsearchentities"},
		"format":   {"json"},
		"search":   {text},
		"language": {"en"},
		"limit":    {strconv.Itoa(w.cfg.SearchLimit)},
	}
	var resp searchResponse
	if err := w.get(ctx, w.cfg.WikidataURL, params, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", APIResponseError(w.cfg.WikidataURL, resp.Error.Code, resp.Error.Info)
	}

	if len(resp.Search) == 0 {
		return "", nil
	}
	return resp.Search[0].ID, nil
}

func (w *iowiki) Entity(ctx context.Context, qid string) (*wikidata.Entity, error) {
	params := url.Values{
		"action":    {"wbgetentities"},
		"format":    {"json"},
		"ids":       {qid},
		"props":     {"claims|labels|descriptions"},
		"languages": {"en"},
	}
	var resp entitiesResponse
	if err := w.get(ctx, w.cfg.WikidataURL, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		// unknown or rejected ids come back as an error instead of a
		// missing entity
		slog.Warn("Entity not returned",
			"qid", qid, "code", resp.Error.Code, "info", resp.Error.Info)
		return nil, nil
	}

	res := resp.Entities[qid]
	if res.IsMissing() {
		return nil, nil
	}
	return res, nil
}

func (w *iowiki) Extract(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":          {"query"},
		"format":          {"json"},
		"formatversion":   {"2"},
		"titles":          {title},
		"prop":            {"extracts"},
		"exintro":         {"1"},
		"explaintext":     {"1"},
		"exsentences":     {strconv.Itoa(wiki.ExtractSentences)},
		"exsectionformat": {"plain"},
	}
	var resp extractResponse
	if err := w.get(ctx, w.cfg.WikipediaURL, params, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", APIResponseError(w.cfg.WikipediaURL, resp.Error.Code, resp.Error.Info)
	}

	pages := resp.Query.Pages
	if len(pages) == 0 || pages[0].Missing {
		return "", nil
	}
	return strings.TrimSpace(pages[0].Extract), nil
}

// get sends a GET request and decodes the JSON body into out.
func (w *iowiki) get(
	ctx context.Context,
	endpoint string,
	params url.Values,
	out any,
) error {
	u := endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return APIRequestError(endpoint, err)
	}
	req.Header.Set("User-Agent", w.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("API request", "url", u)
	resp, err := w.client.Do(req)
	if err != nil {
		return APIRequestError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return APIStatusError(endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return APIRequestError(endpoint, err)
	}

	if err = w.enc.Decode(body, out); err != nil {
		return APIDecodeError(endpoint, err)
	}
	return nil
}
