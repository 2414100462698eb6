// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/alvinbaena/pwd-meter/internal/widget"
	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

//go:embed assets
var assets embed.FS

var (
	// RequiredSlots must all be present for the live analysis to be wired.
	RequiredSlots = []string{"password-input", "strength-indicator", "strength-text", "crack-time-text"}
	// OptionalSlots are filled when present, each one independently.
	OptionalSlots = []string{"char-count", "entropy", "char-types", "check-form", "toggle-visibility", "privacy-info", "results-panels"}
)

// Slots reports which display elements a page has.
type Slots struct {
	Missing  []string
	Optional map[string]bool
}

// Live reports if every required slot is present.
func (s Slots) Live() bool {
	return len(s.Missing) == 0
}

// Inspect parses an HTML document and checks it for the display slots.
func Inspect(r io.Reader) (Slots, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Slots{}, err
	}

	ids := make(map[string]bool)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == "id" {
					ids[attr.Val] = true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	slots := Slots{Optional: make(map[string]bool, len(OptionalSlots))}
	for _, id := range RequiredSlots {
		if !ids[id] {
			slots.Missing = append(slots.Missing, id)
		}
	}
	for _, id := range OptionalSlots {
		slots.Optional[id] = ids[id]
	}

	return slots, nil
}

// BundlePath is where Register serves the zxcvbn.js bundle staged into the web root.
const BundlePath = "/static/zxcvbn.js"

// Options of the analysis page. With a Bundle the browser scores passwords of up to
// MaxLocalRunes runes itself with window.zxcvbn, presenting them with Severities. Everything
// else, or every password when the bundle did not load, goes to Endpoint.
type Options struct {
	Endpoint      string
	Bundle        string
	MaxLocalRunes int
	Severities    []strength.Severity
}

type pageConfig struct {
	Live          bool                `json:"live"`
	Endpoint      string              `json:"endpoint"`
	Bundle        string              `json:"bundle,omitempty"`
	MaxLocalRunes int                 `json:"max_local_runes,omitempty"`
	Severities    []strength.Severity `json:"severities,omitempty"`
	Reset         strength.Display    `json:"reset"`
}

// Page is the rendered analysis page.
type Page struct {
	body  []byte
	slots Slots
}

// NewPage renders the page template in file, or the built-in page when file is empty. A page
// without the required slots is still served, but the live analysis is disabled.
func NewPage(file string, opts Options) (*Page, error) {
	var src []byte
	var err error
	if file != "" {
		src, err = os.ReadFile(file)
	} else {
		src, err = assets.ReadFile("assets/index.html")
	}
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("page").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("invalid page template: %w", err)
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, struct{ Popovers []widget.Popover }{widget.Help()}); err != nil {
		return nil, fmt.Errorf("error rendering page: %w", err)
	}

	slots, err := Inspect(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, err
	}

	if !slots.Live() {
		log.Warn().Msgf("password analysis disabled, page is missing elements: %s", strings.Join(slots.Missing, ", "))
	}

	var missing []string
	for id, ok := range slots.Optional {
		if !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		log.Debug().Msgf("page has no optional elements: %s", strings.Join(missing, ", "))
	}

	cfg, err := json.Marshal(pageConfig{
		Live:          slots.Live(),
		Endpoint:      opts.Endpoint,
		Bundle:        opts.Bundle,
		MaxLocalRunes: opts.MaxLocalRunes,
		Severities:    opts.Severities,
		Reset:         strength.Reset(),
	})
	if err != nil {
		return nil, err
	}

	var script strings.Builder
	if opts.Bundle != "" {
		fmt.Fprintf(&script, "<script src=%q></script>\n", opts.Bundle)
	}
	fmt.Fprintf(&script, "<script>window.pwdMeter = %s;</script>\n<script src=\"/assets/analysis.js\"></script>\n", cfg)
	return &Page{body: inject(buf.Bytes(), script.String()), slots: slots}, nil
}

func (p *Page) Slots() Slots {
	return p.slots
}

// inject places script right before the closing body tag.
func inject(page []byte, script string) []byte {
	i := bytes.LastIndex(bytes.ToLower(page), []byte("</body>"))
	if i < 0 {
		return append(page, script...)
	}

	out := make([]byte, 0, len(page)+len(script))
	out = append(out, page[:i]...)
	out = append(out, script...)
	return append(out, page[i:]...)
}

func (p *Page) serve(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", p.body)
}

// Register serves the page on / and its assets. webRoot, when set, is served on /static, which
// puts the staged zxcvbn.js bundle on BundlePath.
func Register(router *gin.Engine, page *Page, webRoot string) error {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		return err
	}

	router.GET("/", page.serve)
	router.StaticFS("/assets", http.FS(sub))

	if webRoot != "" {
		if info, err := os.Stat(webRoot); err != nil || !info.IsDir() {
			log.Warn().Msgf("web root %s is not a directory, static files will not be served", webRoot)
		} else {
			router.Static("/static", webRoot)
		}
	}

	return nil
}
