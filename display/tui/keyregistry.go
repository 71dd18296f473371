package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"gitlab.com/tinyland/lab/termkit/display/widgets"
)

// KeyCategory groups keybindings by function.
type KeyCategory string

const (
	CategoryNavigation KeyCategory = "navigation"
	CategoryWidth      KeyCategory = "width"
	CategoryScroll     KeyCategory = "scroll"
	CategorySystem     KeyCategory = "system"
)

// KeyEntry is a single registered keybinding with metadata.
type KeyEntry struct {
	// Binding is the charmbracelet key binding.
	Binding key.Binding
	// Category groups this binding by function.
	Category KeyCategory
}

// KeyRegistry lists every preview keybinding, in help order.
type KeyRegistry struct {
	Entries []KeyEntry
}

// DefaultRegistry returns the registry of the bindings the preview uses.
func DefaultRegistry() *KeyRegistry {
	return &KeyRegistry{
		Entries: []KeyEntry{
			{Binding: keys.NextBlock, Category: CategoryNavigation},
			{Binding: keys.PrevBlock, Category: CategoryNavigation},
			{Binding: keys.Narrow, Category: CategoryWidth},
			{Binding: keys.Widen, Category: CategoryWidth},
			{Binding: keys.ResetWidth, Category: CategoryWidth},
			{Binding: keys.ScrollUp, Category: CategoryScroll},
			{Binding: keys.ScrollDown, Category: CategoryScroll},
			{Binding: keys.PageUp, Category: CategoryScroll},
			{Binding: keys.PageDown, Category: CategoryScroll},
			{Binding: keys.GoTop, Category: CategoryScroll},
			{Binding: keys.GoBottom, Category: CategoryScroll},
			{Binding: keys.Help, Category: CategorySystem},
			{Binding: keys.Quit, Category: CategorySystem},
		},
	}
}

// ByCategory returns all entries matching the given category.
func (r *KeyRegistry) ByCategory(cat KeyCategory) []KeyEntry {
	var result []KeyEntry
	for _, e := range r.Entries {
		if e.Category == cat {
			result = append(result, e)
		}
	}
	return result
}

// Duplicates lists keys bound more than once. It is empty when the
// bindings are unambiguous.
func (r *KeyRegistry) Duplicates() []string {
	seen := make(map[string]string)
	var conflicts []string

	for _, e := range r.Entries {
		for _, k := range e.Binding.Keys() {
			if existing, ok := seen[k]; ok {
				conflicts = append(conflicts, fmt.Sprintf(
					"duplicate key %q: %s vs %s", k, existing, e.Binding.Help().Desc,
				))
			} else {
				seen[k] = e.Binding.Help().Desc
			}
		}
	}

	return conflicts
}

// Table lays the bindings out as a table of keys, action and category.
func (r *KeyRegistry) Table() *widgets.Table {
	t := widgets.DefaultTable(
		widgets.Column{Header: "Keys", HeaderColor: colorSecondary},
		widgets.Column{Header: "Action", HeaderColor: colorSecondary},
		widgets.Column{Header: "Category", HeaderColor: colorSecondary},
	)
	t.Border = widgets.BorderRounded
	t.BorderColor = colorMuted
	t.Title = "Preview keys"
	t.TitleColor = colorPrimary
	for _, e := range r.Entries {
		t.AddRow(strings.Join(e.Binding.Keys(), ", "), e.Binding.Help().Desc, string(e.Category))
	}
	return t
}

// FormatJSON returns a JSON-compatible slice of binding descriptions.
func (r *KeyRegistry) FormatJSON() []map[string]string {
	var result []map[string]string
	for _, e := range r.Entries {
		result = append(result, map[string]string{
			"keys":     strings.Join(e.Binding.Keys(), ", "),
			"desc":     e.Binding.Help().Desc,
			"category": string(e.Category),
		})
	}
	return result
}
