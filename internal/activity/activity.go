package activity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Gym is always part of the catalog and is the only type that carries a split.
const Gym = "gym"

const (
	fallbackIcon  = "\U0001F4AA"
	fallbackColor = "#8888a0"
)

type Meta struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Kind can be one of:
//   - builtin
//   - custom
type Kind string

const (
	KindBuiltin Kind = "builtin"
	KindCustom  Kind = "custom"
)

func (k Kind) String() string {
	return string(k)
}

// Activity is a resolved activity type: either a builtin one with its static
// meta, or a custom / unknown one rendered with the fallback meta.
type Activity struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Meta
}

var builtins = map[string]Meta{
	Gym:         {Icon: "\U0001F3CB\uFE0F", Label: "Gym", Color: "#4361ee"},
	"cycling":   {Icon: "\U0001F6B4", Label: "Cycling", Color: "#06d6a0"},
	"badminton": {Icon: "\U0001F3F8", Label: "Badminton", Color: "#ffd166"},
	"running":   {Icon: "\U0001F3C3", Label: "Running", Color: "#ef476f"},
	"swimming":  {Icon: "\U0001F3CA", Label: "Swimming", Color: "#4cc9f0"},
	"yoga":      {Icon: "\U0001F9D8", Label: "Yoga", Color: "#7209b7"},
	"hiking":    {Icon: "\U0001F97E", Label: "Hiking", Color: "#ff6b35"},
}

// Lookup resolves an identifier. It never fails: identifiers missing from the
// builtin table (custom ones, or orphans left after a catalog edit) get a
// capitalised label and the neutral color.
func Lookup(id string) Activity {
	if meta, ok := builtins[id]; ok {
		return Activity{ID: id, Kind: KindBuiltin, Meta: meta}
	}
	return Activity{
		ID:   id,
		Kind: KindCustom,
		Meta: Meta{
			Icon:  fallbackIcon,
			Label: capitalize(id),
			Color: fallbackColor,
		},
	}
}

// Normalize turns user input into an identifier: trimmed and lowercased.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
