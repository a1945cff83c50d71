package messaging

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-recall/internal/display"
	"github.com/pixil98/go-recall/internal/teleport"
	"gopkg.in/yaml.v3"
)

// DefaultMessages are the catalog entries used when no catalog file overrides them.
var DefaultMessages = map[teleport.MessageID]string{
	teleport.MsgCooldown:             "You must wait {{ .Seconds }} {{ if eq .Seconds 1 }}second{{ else }}seconds{{ end }} before recalling again.",
	teleport.MsgAlreadyPending:       "You are already preparing to recall.",
	teleport.MsgNoDestination:        "There is nowhere to recall to from {{ world .World }}.",
	teleport.MsgTooClose:             "You are within {{ .Distance | int }} blocks of spawn already.",
	teleport.MsgNoItem:               "You need a recall item to do that.",
	teleport.MsgWarmupStarted:        "Recalling to {{ world .Destination }} in {{ .Seconds }} seconds. Don't move.",
	teleport.MsgCancelledNoItem:      "Your recall fizzles; the {{ default \"recall item\" .Item }} is gone.",
	teleport.MsgTeleportSuccess:      "You arrive at the spawn of {{ world .World }}.",
	teleport.MsgCancelledMovement:    "Your recall was cancelled because you moved.",
	teleport.MsgCancelledDamage:      "Your recall was cancelled because you took damage.",
	teleport.MsgCancelledInteraction: "Your recall was cancelled because you interacted with something.",
	teleport.MsgItemGiven:            "You received {{ .Amount }} {{ .Item }}.",
}

var templateFuncs = func() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["world"] = display.WorldTitle
	return funcs
}()

// Catalog holds the parsed message templates.
type Catalog struct {
	templates map[teleport.MessageID]*template.Template
}

// NewCatalog parses the default messages with overrides applied on top.
func NewCatalog(overrides map[teleport.MessageID]string) (*Catalog, error) {
	msgs := maps.Clone(DefaultMessages)
	maps.Copy(msgs, overrides)

	c := &Catalog{templates: make(map[teleport.MessageID]*template.Template, len(msgs))}
	for id, text := range msgs {
		tmpl, err := template.New(string(id)).Funcs(templateFuncs).Option("missingkey=zero").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parsing message %q: %w", id, err)
		}
		c.templates[id] = tmpl
	}
	return c, nil
}

// LoadCatalog reads message overrides from a YAML file of id: template pairs.
// An empty path, or a file that does not exist, yields the defaults.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCatalog(nil)
		}
		return nil, fmt.Errorf("reading messages %s: %w", path, err)
	}

	var overrides map[teleport.MessageID]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing messages %s: %w", path, err)
	}

	for id := range overrides {
		if _, ok := DefaultMessages[id]; !ok {
			return nil, fmt.Errorf("parsing messages %s: unknown message %q", path, id)
		}
	}

	return NewCatalog(overrides)
}

// Render expands the message id with macros.
func (c *Catalog) Render(id teleport.MessageID, macros teleport.Macros) (string, error) {
	tmpl, ok := c.templates[id]
	if !ok {
		return "", fmt.Errorf("unknown message %q", id)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(macros)); err != nil {
		return "", fmt.Errorf("executing message %q: %w", id, err)
	}
	return buf.String(), nil
}
