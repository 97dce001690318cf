package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridtris/internal/config"
	"github.com/vovakirdan/gridtris/internal/core"
)

// keyName is a canonical key name: single letters lowercased, the space
// bar spelled "space", everything else as Bubble Tea reports it.
type keyName string

func (k keyName) String() string { return string(k) }

func canonicalKey(s string) keyName {
	if s == " " {
		return "space"
	}
	return keyName(core.NormalizeKey(s))
}

type actionBinding struct {
	action  core.Action
	binding key.Binding
}

// GameKeyMap routes keys to game actions and host commands.
type GameKeyMap struct {
	actions []actionBinding
	Save    key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

// NewGameKeyMap builds the key map from the configured bindings.
func NewGameKeyMap(cfg config.Config) (GameKeyMap, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return GameKeyMap{}, err
	}

	km := GameKeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "snapshot"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}

	for _, a := range core.Actions {
		keys := bindings[a]
		if len(keys) == 0 {
			continue
		}
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = canonicalKey(k).String()
		}
		km.actions = append(km.actions, actionBinding{
			action: a,
			binding: key.NewBinding(
				key.WithKeys(names...),
				key.WithHelp(strings.Join(names, "/"), a.Description()),
			),
		})
	}
	return km, nil
}

// Action returns the game action bound to msg, or ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	name := canonicalKey(msg.String())
	for _, ab := range k.actions {
		if key.Matches(name, ab.binding) {
			return ab.action
		}
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(k.actions)+2)
	for _, ab := range k.actions {
		out = append(out, ab.binding)
	}
	return append(out, k.Reload, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	game := make([]key.Binding, 0, len(k.actions))
	for _, ab := range k.actions {
		game = append(game, ab.binding)
	}
	return [][]key.Binding{game, {k.Save, k.Reload, k.Quit}}
}
