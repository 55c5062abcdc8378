package log_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"

	applog "estoque/internal/log"
)

func capture(t *testing.T, fn func()) []map[string]any {
	t.Helper()
	var buf bytes.Buffer
	oldW, oldFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("line is not JSON: %q", line)
		}
		out = append(out, m)
	}
	return out
}

func TestStartupLevels(t *testing.T) {
	entries := capture(t, func() {
		applog.Startup("db.open", nil, map[string]any{"driver": "sqlite"})
		applog.Startup("db.open", errors.New("boom"), nil)
	})
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0]["level"] != "info" || entries[0]["action"] != "db.open" {
		t.Fatalf("unexpected first entry: %v", entries[0])
	}
	if entries[1]["level"] != "error" || entries[1]["err"] != "boom" {
		t.Fatalf("unexpected second entry: %v", entries[1])
	}
}

func TestUnencodableFieldsKeepEvent(t *testing.T) {
	entries := capture(t, func() {
		applog.Info(nil, "odd", map[string]any{"ch": make(chan int)})
	})
	if len(entries) != 1 || entries[0]["action"] != "odd" {
		t.Fatalf("event lost: %v", entries)
	}
	fields, _ := entries[0]["fields"].(map[string]any)
	if _, ok := fields["marshal_err"]; !ok {
		t.Fatalf("expected marshal_err field, got %v", entries[0])
	}
}
