// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// KEY BINDINGS
// =============================================================================

// KeyMap holds the host-level bindings. Everything not matched here is
// forwarded to the kit as a ui.KeyEvent or typed runes.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default host bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("C-q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit immediately"),
		),
	}
}

// =============================================================================
// KEY TRANSLATION
// =============================================================================

var keyTable = map[tea.KeyType]ui.Key{
	tea.KeyEscape:    ui.KeyEscape,
	tea.KeyEnter:     ui.KeyEnter,
	tea.KeyTab:       ui.KeyTab,
	tea.KeyBackspace: ui.KeyBackspace,
	tea.KeyDelete:    ui.KeyDelete,
	tea.KeyUp:        ui.KeyUp,
	tea.KeyDown:      ui.KeyDown,
	tea.KeyLeft:      ui.KeyLeft,
	tea.KeyRight:     ui.KeyRight,
	tea.KeyHome:      ui.KeyHome,
	tea.KeyEnd:       ui.KeyEnd,
	tea.KeyPgUp:      ui.KeyPageUp,
	tea.KeyPgDown:    ui.KeyPageDown,
}

// translateKey converts a Bubble Tea key press into the kit's input
// vocabulary: a KeyEvent for navigation keys, runes for typed text.
func translateKey(msg tea.KeyMsg) (ev ui.KeyEvent, runes []rune, ok bool) {
	mods := ui.Modifiers{Alt: msg.Alt}
	if msg.Type == tea.KeyRunes {
		if msg.Alt {
			return ui.KeyEvent{}, nil, false
		}
		return ui.KeyEvent{}, msg.Runes, true
	}
	if msg.Type == tea.KeySpace {
		return ui.KeyEvent{}, []rune{' '}, true
	}
	if k, found := keyTable[msg.Type]; found {
		return ui.KeyEvent{Key: k, Mods: mods}, nil, true
	}
	if msg.Type == tea.KeyShiftTab {
		return ui.KeyEvent{Key: ui.KeyTab, Mods: ui.Modifiers{Shift: true}}, nil, true
	}
	return ui.KeyEvent{}, nil, false
}
