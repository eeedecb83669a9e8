package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func setupTracing(t *testing.T) (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })
	return tp, exporter
}

// findSpan returns the first span with the given name
func findSpan(spans tracetest.SpanStubs, name string) *tracetest.SpanStub {
	for i := range spans {
		if spans[i].Name == name {
			return &spans[i]
		}
	}
	return nil
}

func attrValue(span *tracetest.SpanStub, key string) (attribute.Value, bool) {
	for _, attr := range span.Attributes {
		if string(attr.Key) == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

// TestAnalyzeTracing tests that the analyze handler creates an engine span
// parented to the request span
func TestAnalyzeTracing(t *testing.T) {
	tp, exporter := setupTracing(t)
	handler := setupTestHandler(t)

	body, _ := json.Marshal(map[string]string{"text": waterlooText})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(string(body)))

	ctx, span := tp.Tracer("test").Start(context.Background(), "test-request")
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.handleAnalyze(w, req)
	span.End()

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	spans := exporter.GetSpans()
	scoreSpan := findSpan(spans, "engine.score")
	if scoreSpan == nil {
		t.Fatalf("engine.score span not found in %v", getSpanNames(spans))
	}

	if scoreSpan.Parent.SpanID() != span.SpanContext().SpanID() {
		t.Error("engine.score span is not a child of the request span")
	}
	if v, ok := attrValue(scoreSpan, "plagiarism.level"); !ok || v.AsString() != "High" {
		t.Errorf("Expected plagiarism.level=High, got %v", v.Emit())
	}
	if v, ok := attrValue(scoreSpan, "plagiarism.score"); !ok || v.AsFloat64() != 66 {
		t.Errorf("Expected plagiarism.score=66, got %v", v.Emit())
	}

	requestSpan := findSpan(spans, "test-request")
	if requestSpan == nil {
		t.Fatal("test-request span not found")
	}
	if _, ok := attrValue(requestSpan, "text.length"); !ok {
		t.Error("text.length attribute not found on request span")
	}
}

// TestRephraseTracing tests that the rephrase handler records its options
func TestRephraseTracing(t *testing.T) {
	_, exporter := setupTracing(t)
	handler := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/rephrase",
		strings.NewReader(`{"text":"The significant research shows excellent results.","style":"simple"}`))
	w := httptest.NewRecorder()
	handler.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	rephraseSpan := findSpan(exporter.GetSpans(), "engine.rephrase")
	if rephraseSpan == nil {
		t.Fatalf("engine.rephrase span not found in %v", getSpanNames(exporter.GetSpans()))
	}
	if _, ok := attrValue(rephraseSpan, "rephrase.words_changed"); !ok {
		t.Error("rephrase.words_changed attribute not found on engine.rephrase span")
	}
}

// TestEngineFailureMarksSpan tests that a recovered engine panic is recorded
// as a span error
func TestEngineFailureMarksSpan(t *testing.T) {
	_, exporter := setupTracing(t)
	handler := newHandler(panickingScorer{}, nil, testOptions())

	body, _ := json.Marshal(map[string]string{"text": waterlooText})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	handler.mux.ServeHTTP(w, req)

	scoreSpan := findSpan(exporter.GetSpans(), "engine.score")
	if scoreSpan == nil {
		t.Fatal("engine.score span not found")
	}
	if scoreSpan.Status.Code != codes.Error {
		t.Errorf("Expected error status, got %v", scoreSpan.Status.Code)
	}
	if len(scoreSpan.Events) == 0 {
		t.Error("Expected the panic to be recorded as a span event")
	}
}

// getSpanNames returns a list of span names for debugging
func getSpanNames(spans tracetest.SpanStubs) []string {
	names := make([]string, len(spans))
	for i, span := range spans {
		names[i] = span.Name
	}
	return names
}
