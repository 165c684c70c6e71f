package webscan_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
	"github.com/privacy-lab/tikun13/pkg/webscan"
)

func TestFetcher_Scan(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		_, _ = w.Write([]byte(`<html><body>
			<p>ברוכים הבאים לאתר</p>
			<a href="/privacy">מדיניות פרטיות</a>
			<a href="/terms">Terms</a>
			<a href="/contact">Contact</a>
		</body></html>`))
	})
	mux.HandleFunc("/privacy", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			We collect the following data for the purpose of serving you.
			Your rights include access and deletion. Retention: one year.
			Third party processors are listed below. Contact us by mail.
		</body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fetcher := webscan.NewFetcher(webscan.WithTimeout(5 * time.Second))
	result := fetcher.Scan(context.Background(), srv.URL)

	gt.Bool(t, result.Failed).False()
	gt.Value(t, result.URL).Equal(srv.URL)
	gt.Array(t, result.Checks).Length(7)

	byName := make(map[string]types.CheckStatus)
	for _, check := range result.Checks {
		byName[check.Name] = check.Status
	}

	// The policy page was followed and covers all six expected topics
	gt.Value(t, byName["privacy_policy"]).Equal(types.CheckStatusCompliant)
	gt.Value(t, byName["transparency"]).Equal(types.CheckStatusCompliant)
	gt.Value(t, byName["cookie_consent"]).Equal(types.CheckStatusCompliant)
	// httptest serves plain HTTP
	gt.Value(t, byName["ssl"]).Equal(types.CheckStatusNonCompliant)
}

func TestFetcher_ScanUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	fetcher := webscan.NewFetcher(webscan.WithTimeout(time.Second))
	result := fetcher.Scan(context.Background(), srv.URL)

	gt.Bool(t, result.Failed).True()
	gt.String(t, result.Error).NotEqual("")
	gt.Array(t, result.Checks).Length(7)
	for _, check := range result.Checks {
		gt.Value(t, check.Status).Equal(types.CheckStatusError)
	}
}

func TestFetcher_ScanErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	fetcher := webscan.NewFetcher()
	result := fetcher.Scan(context.Background(), srv.URL)
	gt.Bool(t, result.Failed).True()
}

func TestFetcher_PolicyFallbackPath(t *testing.T) {
	// The linked policy page is broken, but the site serves the real
	// document at a well-known path; the concurrent candidate fetch
	// should still verify coverage.
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/old-privacy">Privacy</a></body></html>`))
	})
	mux.HandleFunc("/old-privacy", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/privacy-policy", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			We collect the following data for the purpose of serving you.
			Your rights include access and deletion. Retention: one year.
			Third party processors are listed below. Contact us by mail.
		</body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fetcher := webscan.NewFetcher()
	result := fetcher.Scan(context.Background(), srv.URL)

	gt.Bool(t, result.Failed).False()
	for _, check := range result.Checks {
		if check.Name == "privacy_policy" {
			gt.Value(t, check.Status).Equal(types.CheckStatusCompliant)
		}
	}
}

func TestFetcher_PolicyFetchFailureIsNotFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/privacy">Privacy</a></body></html>`))
	})
	mux.HandleFunc("/privacy", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fetcher := webscan.NewFetcher()
	result := fetcher.Scan(context.Background(), srv.URL)

	gt.Bool(t, result.Failed).False()
	for _, check := range result.Checks {
		if check.Name == "privacy_policy" {
			// Link exists but coverage could not be verified
			gt.Value(t, check.Status).Equal(types.CheckStatusPartial)
		}
	}
}
