package cli

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestStageFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "zxcvbn.js")
	if err := os.WriteFile(src, []byte("var zxcvbn;"), 0o600); err != nil {
		t.Fatalf("Should not fail writing source: %s", err)
	}

	dest := filepath.Join(dir, "web", "zxcvbn.js")
	if err := stageFile(context.Background(), src, dest, false); err != nil {
		t.Fatalf("Should not fail staging: %s", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Should not fail reading staged file: %s", err)
	}
	if string(data) != "var zxcvbn;" {
		t.Errorf("Staged file has the wrong content: %s", data)
	}

	if err = stageFile(context.Background(), src, dest, false); err == nil {
		t.Errorf("Should fail when the file exists and overwrite is not set")
	}
	if err = stageFile(context.Background(), src, dest, true); err != nil {
		t.Errorf("Should not fail overwriting: %s", err)
	}
}

func TestStageFile_Missing(t *testing.T) {
	dir := t.TempDir()
	err := stageFile(context.Background(), filepath.Join(dir, "missing.js"), filepath.Join(dir, "out.js"), true)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Should fail with ErrSourceNotFound, got %v", err)
	}
}

func TestStageFile_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/zxcvbn.js" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("var zxcvbn;"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "zxcvbn.js")
	if err := stageFile(context.Background(), srv.URL+"/zxcvbn.js", dest, true); err != nil {
		t.Fatalf("Should not fail staging from URL: %s", err)
	}
	if data, _ := os.ReadFile(dest); string(data) != "var zxcvbn;" {
		t.Errorf("Staged file has the wrong content: %s", data)
	}

	err := stageFile(context.Background(), srv.URL+"/nope.js", dest, true)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Should fail with ErrSourceNotFound, got %v", err)
	}
}
