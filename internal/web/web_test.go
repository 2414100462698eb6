package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/gin-gonic/gin"
)

var apiOnly = Options{Endpoint: "/v1/strength/password"}

func TestInspect(t *testing.T) {
	cases := []struct {
		page    string
		live    bool
		missing int
	}{
		{`<div id="password-input"></div><div id="strength-indicator"></div><span id="strength-text"></span><span id="crack-time-text"></span>`, true, 0},
		{`<div id="password-input"></div><span id="strength-text"></span>`, false, 2},
		{`<p>nothing here</p>`, false, 4},
	}

	for _, tc := range cases {
		slots, err := Inspect(strings.NewReader(tc.page))
		if err != nil {
			t.Fatalf("Should not fail: %s", err)
		}
		if slots.Live() != tc.live || len(slots.Missing) != tc.missing {
			t.Errorf("Inspect(%q): live %v missing %v, want: live %v missing %d", tc.page, slots.Live(), slots.Missing, tc.live, tc.missing)
		}
	}
}

func TestNewPage_Builtin(t *testing.T) {
	page, err := NewPage("", apiOnly)
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	if !page.Slots().Live() {
		t.Errorf("Built-in page should have every required slot, missing %v", page.Slots().Missing)
	}
	for id, ok := range page.Slots().Optional {
		if !ok {
			t.Errorf("Built-in page should have optional slot %s", id)
		}
	}

	body := string(page.body)
	if !strings.Contains(body, `"live":true`) {
		t.Errorf("Page should enable the live analysis")
	}
	if !strings.Contains(body, `id="entropy-popover"`) {
		t.Errorf("Page should render the help popovers")
	}
	if strings.Index(body, "analysis.js") > strings.Index(body, "</body>") {
		t.Errorf("Script should be injected before the closing body tag")
	}
	if !strings.Contains(body, `"reset":{"progress":0,"class":"bg-red-600"`) {
		t.Errorf("Page config should carry the reset display")
	}
	if strings.Contains(body, BundlePath) {
		t.Errorf("Page without a bundle should not load %s", BundlePath)
	}

	for _, id := range []string{"strength", "crack-time", "entropy", "char-types", "privacy"} {
		if !strings.Contains(body, `data-popover="`+id+`-popover"`) {
			t.Errorf("Page should have a button opening %s-popover", id)
		}
	}
}

func TestNewPage_Bundle(t *testing.T) {
	table := strength.ModelSeverities
	page, err := NewPage("", Options{
		Endpoint:      "/v1/strength/password",
		Bundle:        BundlePath,
		MaxLocalRunes: strength.MaxEstimateRunes,
		Severities:    table[:],
	})
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	body := string(page.body)
	bundle := strings.Index(body, `<script src="`+BundlePath+`"></script>`)
	if bundle < 0 {
		t.Fatalf("Page should load the staged bundle:\n%s", body)
	}
	if bundle > strings.Index(body, "analysis.js") {
		t.Errorf("Bundle should load before the analysis script")
	}
	if !strings.Contains(body, `"max_local_runes":100`) || !strings.Contains(body, `"label":"Very Weak"`) {
		t.Errorf("Page config should carry the local scoring settings")
	}
}

func TestNewPage_MissingSlots(t *testing.T) {
	file := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(file, []byte(`<html><body><input id="password-input"></body></html>`), 0o600); err != nil {
		t.Fatalf("Should not fail writing page: %s", err)
	}

	page, err := NewPage(file, apiOnly)
	if err != nil {
		t.Fatalf("Should not fail with missing slots: %s", err)
	}

	if page.Slots().Live() {
		t.Errorf("Page without indicator slots should not be live")
	}
	if !strings.Contains(string(page.body), `"live":false`) {
		t.Errorf("Page should disable the live analysis")
	}
}

func TestRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "zxcvbn.js"), []byte("// zxcvbn"), 0o600); err != nil {
		t.Fatalf("Should not fail writing asset: %s", err)
	}

	page, err := NewPage("", apiOnly)
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	router := gin.New()
	if err = Register(router, page, root); err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	for _, path := range []string{"/", "/assets/analysis.js", "/static/zxcvbn.js"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s should be 200, got %d", path, w.Code)
		}
	}
}
