package messaging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-recall/internal/teleport"
	"github.com/pixil98/go-testutil"
)

func TestCatalog_Render(t *testing.T) {
	tests := map[string]struct {
		id     teleport.MessageID
		macros teleport.Macros
		exp    string
		expErr string
	}{
		"cooldown plural": {
			id:     teleport.MsgCooldown,
			macros: teleport.Macros{"Seconds": 59},
			exp:    "You must wait 59 seconds before recalling again.",
		},
		"cooldown singular": {
			id:     teleport.MsgCooldown,
			macros: teleport.Macros{"Seconds": 1},
			exp:    "You must wait 1 second before recalling again.",
		},
		"warmup started": {
			id:     teleport.MsgWarmupStarted,
			macros: teleport.Macros{"Seconds": 5, "Destination": "world_the_end"},
			exp:    "Recalling to World The End in 5 seconds. Don't move.",
		},
		"too close": {
			id:     teleport.MsgTooClose,
			macros: teleport.Macros{"Distance": 10.0},
			exp:    "You are within 10 blocks of spawn already.",
		},
		"item name defaults": {
			id:     teleport.MsgCancelledNoItem,
			macros: teleport.Macros{"Item": ""},
			exp:    "Your recall fizzles; the recall item is gone.",
		},
		"no macros": {
			id:  teleport.MsgAlreadyPending,
			exp: "You are already preparing to recall.",
		},
		"unknown message": {
			id:     teleport.MessageID("nope"),
			expErr: "unknown message",
		},
	}

	c, err := NewCatalog(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := c.Render(tt.id, tt.macros)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "rendered", got, tt.exp)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	tests := map[string]struct {
		yaml       string
		missing    bool
		expErr     string
		expPending string
	}{
		"override": {
			yaml:       "already-pending: \"Patience, {{ upper \\\"traveller\\\" }}.\"\n",
			expPending: "Patience, TRAVELLER.",
		},
		"missing file uses defaults": {
			missing:    true,
			expPending: "You are already preparing to recall.",
		},
		"unknown id": {
			yaml:   "sparkle: hi\n",
			expErr: "unknown message",
		},
		"bad template": {
			yaml:   "already-pending: \"{{ .Broken \"\n",
			expErr: "parsing message",
		},
		"bad yaml": {
			yaml:   "already-pending: [\n",
			expErr: "parsing messages",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "messages.yaml")
			if !tt.missing {
				if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
					t.Fatalf("writing catalog: %v", err)
				}
			}

			c, err := LoadCatalog(path)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := c.Render(teleport.MsgAlreadyPending, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "rendered", got, tt.expPending)

			// Entries without an override keep their default.
			got, _ = c.Render(teleport.MsgNoItem, nil)
			testutil.AssertEqual(t, "default kept", got, DefaultMessages[teleport.MsgNoItem])
		})
	}
}
