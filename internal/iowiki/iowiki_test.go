package iowiki_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/internal/iowiki"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/errcode"
	"github.com/gnames/watchseed/pkg/wikidata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rolexEntity = `{
  "entities": {
    "Q62288": {
      "id": "Q62288",
      "labels": {"en": {"language": "en", "value": "Rolex"}},
      "descriptions": {"en": {"language": "en", "value": "Swiss watch manufacturer"}},
      "claims": {
        "P571": [{"mainsnak": {"snaktype": "value", "property": "P571",
          "datavalue": {"value": {"time": "+1905-01-01T00:00:00Z"}, "type": "time"}}}]
      }
    }
  }
}`

// recorder keeps requests received by the fake API.
type recorder struct {
	mu   sync.Mutex
	reqs []*http.Request
}

func (r *recorder) add(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
}

func (r *recorder) first() *http.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reqs[0]
}

func newServer(t *testing.T) (*httptest.Server, *recorder) {
	reqs := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			reqs.add(r)
			q := r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			switch q.Get("action") {
			case "query":
				if q.Get("prop") == "extracts" {
					switch q.Get("titles") {
					case "Omega_Speedmaster":
						w.Write([]byte(`{"query":{"pages":[{"title":"Omega Speedmaster",
"extract":"  The Speedmaster is a chronograph. It went to the Moon.\n"}]}}`))
					case "Empty":
						w.Write([]byte(`{"query":{"pages":[{"title":"Empty","extract":""}]}}`))
					default:
						w.Write([]byte(`{"query":{"pages":[{"title":"X","missing":true}]}}`))
					}
					return
				}
				switch q.Get("titles") {
				case "Rolex":
					w.Write([]byte(`{"query":{"pages":[{"title":"Rolex",
"pageprops":{"wikibase_item":"Q62288"}}]}}`))
				case "No_Item":
					w.Write([]byte(`{"query":{"pages":[{"title":"No Item"}]}}`))
				default:
					w.Write([]byte(`{"query":{"pages":[{"title":"X","missing":true}]}}`))
				}
			case "wbsearchentities":
				if q.Get("search") == "Omega Speedmaster" {
					w.Write([]byte(`{"search":[{"id":"Q1"},{"id":"Q2"}]}`))
					return
				}
				w.Write([]byte(`{"search":[]}`))
			case "wbgetentities":
				switch q.Get("ids") {
				case "Q62288":
					w.Write([]byte(rolexEntity))
				case "Q404":
					w.Write([]byte(`{"entities":{"Q404":{"id":"Q404","missing":""}}}`))
				case "Q500":
					w.WriteHeader(http.StatusInternalServerError)
				case "Q501":
					w.Write([]byte(`<html>not json</html>`))
				default:
					w.Write([]byte(`{"error":{"code":"no-such-entity",
"info":"Could not find an entity"}}`))
				}
			default:
				w.Write([]byte(`{"error":{"code":"badvalue","info":"bad action"}}`))
			}
		}))
	t.Cleanup(srv.Close)
	return srv, reqs
}

func apiConfig(srvURL string) config.APIConfig {
	cfg := config.New().API
	cfg.WikipediaURL = srvURL + "/wikipedia/api.php"
	cfg.WikidataURL = srvURL + "/wikidata/api.php"
	cfg.TimeoutSec = 2
	return cfg
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be *gn.Error")
	return gnErr.Code
}

func TestQIDByTitle(t *testing.T) {
	srv, reqs := newServer(t)
	cl := iowiki.New(apiConfig(srv.URL))
	ctx := context.Background()

	tests := []struct {
		msg   string
		title string
		qid   string
	}{
		{"linked page", "Rolex", "Q62288"},
		{"page without item", "No_Item", ""},
		{"missing page", "Missing", ""},
	}
	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			qid, err := cl.QIDByTitle(ctx, v.title)
			require.NoError(t, err)
			assert.Equal(t, v.qid, qid)
		})
	}

	req := reqs.first()
	assert.Equal(t, "/wikipedia/api.php", req.URL.Path)
	assert.Equal(t, "ProjectWatch/1.0", req.Header.Get("User-Agent"))
	q := req.URL.Query()
	assert.Equal(t, "2", q.Get("formatversion"))
	assert.Equal(t, "pageprops", q.Get("prop"))
	assert.Equal(t, "wikibase_item", q.Get("ppprop"))
}

func TestSearchFirst(t *testing.T) {
	srv, reqs := newServer(t)
	cl := iowiki.New(apiConfig(srv.URL))
	ctx := context.Background()

	qid, err := cl.SearchFirst(ctx, "Omega Speedmaster")
	require.NoError(t, err)
	assert.Equal(t, "Q1", qid)

	qid, err = cl.SearchFirst(ctx, "Nothing Here")
	require.NoError(t, err)
	assert.Equal(t, "", qid)

	req := reqs.first()
	q := req.URL.Query()
	assert.Equal(t, "/wikidata/api.php", req.URL.Path)
	assert.Equal(t, "en", q.Get("language"))
	assert.Equal(t, "5", q.Get("limit"))
}

func TestEntity(t *testing.T) {
	srv, reqs := newServer(t)
	cl := iowiki.New(apiConfig(srv.URL))
	ctx := context.Background()

	e, err := cl.Entity(ctx, "Q62288")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "Rolex", wikidata.Label(e))
	year := wikidata.ParseYear(e.Claims[wikidata.PropInception])
	require.NotNil(t, year)
	assert.Equal(t, 1905, *year)

	q := reqs.first().URL.Query()
	assert.Equal(t, "claims|labels|descriptions", q.Get("props"))
	assert.Equal(t, "en", q.Get("languages"))

	e, err = cl.Entity(ctx, "Q404")
	require.NoError(t, err)
	assert.Nil(t, e)

	e, err = cl.Entity(ctx, "Q999")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestEntityErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"code":"param-invalid",
"info":"Invalid id: Qbad"}}`))
		}))
	defer srv.Close()

	e, err := iowiki.New(apiConfig(srv.URL)).Entity(context.Background(), "Qbad")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestExtract(t *testing.T) {
	srv, reqs := newServer(t)
	cl := iowiki.New(apiConfig(srv.URL))
	ctx := context.Background()

	tests := []struct {
		msg   string
		title string
		text  string
	}{
		{"intro", "Omega_Speedmaster",
			"The Speedmaster is a chronograph. It went to the Moon."},
		{"empty intro", "Empty", ""},
		{"missing page", "Missing", ""},
	}
	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			text, err := cl.Extract(ctx, v.title)
			require.NoError(t, err)
			assert.Equal(t, v.text, text)
		})
	}

	req := reqs.first()
	assert.Equal(t, "/wikipedia/api.php", req.URL.Path)
	q := req.URL.Query()
	assert.Equal(t, "extracts", q.Get("prop"))
	assert.Equal(t, "10", q.Get("exsentences"))
	assert.Equal(t, "1", q.Get("exintro"))
	assert.Equal(t, "1", q.Get("explaintext"))
	assert.Equal(t, "2", q.Get("formatversion"))
}

func TestErrors(t *testing.T) {
	srv, _ := newServer(t)
	cl := iowiki.New(apiConfig(srv.URL))
	ctx := context.Background()

	_, err := cl.Entity(ctx, "Q500")
	assert.Equal(t, errcode.APIStatusError, errCode(t, err))

	_, err = cl.Entity(ctx, "Q501")
	assert.Equal(t, errcode.APIDecodeError, errCode(t, err))

	t.Run("api error envelope", func(t *testing.T) {
		bad := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"error":{"code":"badvalue","info":"bad action"}}`))
			}))
		defer bad.Close()
		_, err := iowiki.New(apiConfig(bad.URL)).QIDByTitle(ctx, "Rolex")
		assert.Equal(t, errcode.APIResponseError, errCode(t, err))
	})

	t.Run("unreachable server", func(t *testing.T) {
		cfg := apiConfig("http://127.0.0.1:1")
		cl := iowiki.New(cfg)
		_, err := cl.QIDByTitle(ctx, "Rolex")
		assert.Equal(t, errcode.APIRequestError, errCode(t, err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := cl.SearchFirst(ctx, "Omega Speedmaster")
		assert.Equal(t, errcode.APIRequestError, errCode(t, err))
	})

	t.Run("timeout", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(1500 * time.Millisecond)
				w.Write([]byte(`{}`))
			}))
		defer slow.Close()
		cfg := apiConfig(slow.URL)
		cfg.TimeoutSec = 1
		_, err := iowiki.New(cfg).Entity(ctx, "Q1")
		assert.Equal(t, errcode.APIRequestError, errCode(t, err))
	})
}
