package mutations

import "sort"

const (
	NameAddTier    = "add_tier"
	NameRemoveTier = "remove_tier"
	NameUpdateTier = "update_tier"
	NameSetMode    = "set_mode"
	NameSetInput   = "set_input"
	NameReset      = "reset"
)

var registry = map[string]MutationHandler{
	NameAddTier:    &AddTierHandler{},
	NameRemoveTier: &RemoveTierHandler{},
	NameUpdateTier: &UpdateTierHandler{},
	NameSetMode:    &SetModeHandler{},
	NameSetInput:   &SetInputHandler{},
	NameReset:      &ResetHandler{},
}

func Get(name string) (MutationHandler, bool) {
	h, ok := registry[name]
	return h, ok
}

// Names lists the registered mutations in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
