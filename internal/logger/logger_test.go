package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, level Level, fn func(l *Logger)) []LogEntry {
	t.Helper()

	path := filepath.Join(t.TempDir(), "log.jsonl")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create log file: %v", err)
	}

	fn(New(level, f))
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var e LogEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("log line is not valid JSON: %q: %v", line, err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestLoggerStructuredOutput(t *testing.T) {
	entries := captureOutput(t, LevelInfo, func(l *Logger) {
		l.Warn("page fetch failed", Fields{"page": 3, "date": "4/1/2026"})
	})

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Level != "WARN" || e.Message != "page fetch failed" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Fields["date"] != "4/1/2026" {
		t.Errorf("expected structured field to survive, got %v", e.Fields)
	}
	if e.Timestamp == "" {
		t.Error("entry missing timestamp")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	entries := captureOutput(t, LevelWarn, func(l *Logger) {
		l.Debug("dropped", nil)
		l.Info("dropped too", nil)
		l.Error("kept", nil, os.ErrNotExist)
	})

	if len(entries) != 1 {
		t.Fatalf("expected only the error entry, got %d entries", len(entries))
	}
	if entries[0].Error == "" {
		t.Error("expected error string in entry")
	}
}

func TestMetricsCountersAndTimings(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("scrape.pages_fetched")
	m.IncrCounter("scrape.pages_fetched")
	m.IncrCounter("scrape.page_failures")
	m.RecordTiming("request", 10*time.Millisecond)
	m.RecordTiming("request", 30*time.Millisecond)

	snap := m.GetSnapshot()

	counters := snap["counters"].(map[string]int64)
	if counters["scrape.pages_fetched"] != 2 {
		t.Errorf("expected pages_fetched=2, got %d", counters["scrape.pages_fetched"])
	}
	if counters["scrape.page_failures"] != 1 {
		t.Errorf("expected page_failures=1, got %d", counters["scrape.page_failures"])
	}

	timings := snap["timings"].(map[string]map[string]interface{})
	stats, ok := timings["request"]
	if !ok {
		t.Fatal("expected request timing stats")
	}
	if stats["count"] != 2 {
		t.Errorf("expected timing count 2, got %v", stats["count"])
	}
	if stats["average"] != "20ms" {
		t.Errorf("expected average 20ms, got %v", stats["average"])
	}
}
