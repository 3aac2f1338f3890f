package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("horoscope %s returned unexpected error: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestRootCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/daily" || r.URL.Query().Get("sign") != "aries" {
			t.Errorf("unexpected horoscope request %s", r.URL)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"date":"Oct 17, 2026","horoscope_data":"Today is a good day."},"status":200,"success":true}`))
	}))
	defer api.Close()

	ollama := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"Hoje é um bom dia.","done":true}`))
	}))
	defer ollama.Close()

	db := filepath.Join(dir, "data", "memory.db")

	got := execute(t, "aries",
		"--base-url", api.URL,
		"--services", "ollama",
		"--ollama-url", ollama.URL,
		"--db", db)
	want := "Horóscopo de hoje para Aries (em Português):\nHoje é um bom dia.\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	stats := execute(t, "cache", "stats", "--db", db)
	statLines := strings.Split(strings.TrimSpace(stats), "\n")
	if len(statLines) != 3 || strings.Join(strings.Fields(statLines[0]), " ") != "entries 1" ||
		strings.Join(strings.Fields(statLines[2]), " ") != "ollama 1" {
		t.Errorf("cache stats = %q, want one ollama entry", stats)
	}

	list := execute(t, "cache", "list", "--db", db)
	if !strings.Contains(list, "Today is a good day.") {
		t.Errorf("cache list = %q, want the cached source text", list)
	}

	cleared := execute(t, "cache", "clear", "--db", db)
	if cleared != "removed 1 cached translations\n" {
		t.Errorf("cache clear = %q", cleared)
	}

	signs := execute(t, "signs")
	lines := strings.Split(strings.TrimSpace(signs), "\n")
	if len(lines) != 12 || lines[0] != "aries" || lines[11] != "pisces" {
		t.Errorf("signs = %q, want the twelve signs from aries to pisces", signs)
	}
}
