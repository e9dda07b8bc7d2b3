/*
Package style holds the formatting classes attached to runs of text.

Markdown knows only a handful of inline formats: strong, emphasis, code,
plus the heading level of the enclosing block. A Style is the set of
classes in effect for a run of text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/mdpdf/core"
)

// Kind is the kind of a formatting class.
type Kind uint8

// Kinds of formatting classes
const (
	StrongKind Kind = iota + 1
	EmphasisKind
	CodeKind
	HeadingKind
)

// Class is a formatting class. Classes are comparable values; Level is used
// for headings only.
type Class struct {
	Kind  Kind
	Level int
}

// Classes for inline formatting.
var (
	Strong   = Class{Kind: StrongKind}
	Emphasis = Class{Kind: EmphasisKind}
	Code     = Class{Kind: CodeKind}
)

// MaxHeadingLevel is the deepest heading level with a size of its own.
const MaxHeadingLevel = 4

// Heading returns the class for a heading of a given level.
func Heading(level int) Class {
	return Class{Kind: HeadingKind, Level: level}
}

func (c Class) String() string {
	switch c.Kind {
	case StrongKind:
		return "strong"
	case EmphasisKind:
		return "emphasis"
	case CodeKind:
		return "code"
	case HeadingKind:
		return "h" + strconv.Itoa(c.Level)
	}
	return "<unknown class>"
}

// --- Style -----------------------------------------------------------------

// Style is an unordered set of formatting classes. The zero value is an
// empty style. Styles are immutable once created.
type Style struct {
	set *hashset.Set
}

// New creates a style from a list of classes. Duplicates are ignored.
func New(classes ...Class) Style {
	set := hashset.New()
	for _, c := range classes {
		set.Add(c)
	}
	return Style{set: set}
}

// Contains checks if a style includes a class.
func (s Style) Contains(c Class) bool {
	if s.set == nil {
		return false
	}
	return s.set.Contains(c)
}

// With returns a new style, extended by classes.
func (s Style) With(classes ...Class) Style {
	return New(append(s.Classes(), classes...)...)
}

// Size returns the number of classes in a style.
func (s Style) Size() int {
	if s.set == nil {
		return 0
	}
	return s.set.Size()
}

// Classes returns the classes of a style, in a deterministic order.
func (s Style) Classes() []Class {
	if s.set == nil {
		return nil
	}
	values := s.set.Values()
	classes := make([]Class, 0, len(values))
	for _, v := range values {
		classes = append(classes, v.(Class))
	}
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Kind != classes[j].Kind {
			return classes[i].Kind < classes[j].Kind
		}
		return classes[i].Level < classes[j].Level
	})
	return classes
}

func (s Style) String() string {
	classes := s.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Parse creates a style from a comma separated list of class names, e.g.
// "strong,em,h2". Recognized names are strong/bold/b, emphasis/em/italic/i,
// code/mono and h1…h4 resp. heading1…heading4.
func Parse(spec string) (Style, error) {
	var classes []Class
	for _, name := range strings.Split(spec, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "":
			continue
		case "strong", "bold", "b":
			classes = append(classes, Strong)
		case "emphasis", "em", "italic", "i":
			classes = append(classes, Emphasis)
		case "code", "mono":
			classes = append(classes, Code)
		default:
			level, ok := headingLevel(name)
			if !ok {
				return Style{}, core.Error(core.EINVALID, "unknown style class %q", name)
			}
			classes = append(classes, Heading(level))
		}
	}
	return New(classes...), nil
}

func headingLevel(name string) (int, bool) {
	var digits string
	switch {
	case strings.HasPrefix(name, "heading"):
		digits = name[len("heading"):]
	case strings.HasPrefix(name, "h"):
		digits = name[1:]
	default:
		return 0, false
	}
	level, err := strconv.Atoi(digits)
	if err != nil || level < 1 || level > MaxHeadingLevel {
		return 0, false
	}
	return level, true
}

// MustParse is like Parse, but panics on unknown class names.
// It is intended for tests and static initialization.
func MustParse(spec string) Style {
	s, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("style.MustParse(%q): %v", spec, err))
	}
	return s
}
