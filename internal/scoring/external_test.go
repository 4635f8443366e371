package scoring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestEngineUsesExternalScorer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"score":88,"keyword_score":70,"format_score":91,"suggestions":["tighten bullets"]}`))
	}))
	defer srv.Close()

	engine := NewEngine(Config{URL: srv.URL, Key: "secret"})
	result := engine.Score(context.Background(), sampleRecord())

	if gotAuth != "Bearer secret" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if result.Score != 88 || result.KeywordScore != 70 || result.FormatScore != 91 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0] != "tighten bullets" {
		t.Fatalf("suggestions = %v", result.Suggestions)
	}
	if result.Breakdown != nil {
		t.Fatal("external path must omit breakdown")
	}
}

func TestEngineFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	engine := NewEngine(Config{URL: srv.URL})
	record := sampleRecord()
	got := engine.Score(context.Background(), record)
	want := Score(record)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected local fallback result, got %+v", got)
	}
}

func TestEngineFallsBackOnSchemaMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"score": 90}`))
	}))
	defer srv.Close()

	engine := NewEngine(Config{URL: srv.URL})
	record := sampleRecord()
	got := engine.Score(context.Background(), record)
	if !reflect.DeepEqual(got, Score(record)) {
		t.Fatalf("expected local fallback on partial response, got %+v", got)
	}
}

func TestEngineFallsBackOnUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	engine := NewEngine(Config{URL: url})
	record := sampleRecord()
	if got := engine.Score(context.Background(), record); !reflect.DeepEqual(got, Score(record)) {
		t.Fatalf("expected local fallback when host is down, got %+v", got)
	}
}

func TestEngineClampsRemoteValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"score":180,"keyword_score":-4,"format_score":100,"suggestions":[]}`))
	}))
	defer srv.Close()

	engine := NewEngine(Config{URL: srv.URL})
	result := engine.Score(context.Background(), sampleRecord())
	if result.Score != 100 || result.KeywordScore != 0 || result.FormatScore != 100 {
		t.Fatalf("expected clamped values, got %+v", result)
	}
}

func TestNilEngineScoresLocally(t *testing.T) {
	var engine *Engine
	record := sampleRecord()
	if got := engine.Score(context.Background(), record); !reflect.DeepEqual(got, Score(record)) {
		t.Fatalf("expected local result from nil engine, got %+v", got)
	}
}
