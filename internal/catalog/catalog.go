// Package catalog holds the question groups read from one source file.
//
// A Catalog is immutable after construction; every accessor returns copies, so it can
// be shared by concurrent readers.
package catalog

import (
	"fmt"
	"strings"

	"quizdeck/internal/question"
)

// Catalog maps group names to ordered questions, preserving source order.
type Catalog struct {
	names  []string
	groups map[string][]question.Question
}

// New builds a catalog from groups. Group names must be non-blank and unique.
func New(groups []question.Group) (*Catalog, error) {
	c := &Catalog{
		names:  make([]string, 0, len(groups)),
		groups: make(map[string][]question.Question, len(groups)),
	}
	for i, group := range groups {
		name := strings.TrimSpace(group.Name)
		if name == "" {
			return nil, fmt.Errorf("group %d: name is required", i)
		}
		if _, ok := c.groups[name]; ok {
			return nil, fmt.Errorf("duplicate group %q", name)
		}
		c.names = append(c.names, name)
		c.groups[name] = question.CloneAll(group.Questions)
	}
	return c, nil
}

// Names lists group names in source order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len reports the number of groups.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Group returns a copy of the named group.
func (c *Catalog) Group(name string) (question.Group, bool) {
	questions, ok := c.groups[name]
	if !ok {
		return question.Group{}, false
	}
	return question.Group{Name: name, Questions: question.CloneAll(questions)}, true
}

// Groups returns copies of every group in source order.
func (c *Catalog) Groups() []question.Group {
	out := make([]question.Group, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, question.Group{Name: name, Questions: question.CloneAll(c.groups[name])})
	}
	return out
}

// Select resolves a group by name. An empty name picks the only group, or fails when
// the catalog holds several.
func (c *Catalog) Select(name string) (question.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		switch len(c.names) {
		case 0:
			return question.Group{}, fmt.Errorf("catalog has no groups")
		case 1:
			group, _ := c.Group(c.names[0])
			return group, nil
		default:
			return question.Group{}, fmt.Errorf("group required; choose one of: %s", strings.Join(c.names, ", "))
		}
	}
	group, ok := c.Group(name)
	if !ok {
		return question.Group{}, fmt.Errorf("unknown group %q; choose one of: %s", name, strings.Join(c.names, ", "))
	}
	return group, nil
}

// Deck converts the catalog into a versioned deck.
func (c *Catalog) Deck() question.Deck {
	return question.Deck{Version: question.DeckVersion, Groups: c.Groups()}
}
