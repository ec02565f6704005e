package agent

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	DefaultFirst  = "offense"
	DefaultSecond = "sentinel"
)

type Factory func(index int, options ...Option) Agent

var factories = map[string]Factory{
	"reflex":   func(i int, o ...Option) Agent { return NewReflex(i, o...) },
	"defense":  func(i int, o ...Option) Agent { return NewDefensive(i, o...) },
	"offense":  func(i int, o ...Option) Agent { return NewOffense(i, o...) },
	"sentinel": func(i int, o ...Option) Agent { return NewSentinel(i, o...) },
}

// Names lists the agent names New accepts.
func Names() []string {
	return slices.Sorted(maps.Keys(factories))
}

func New(name string, index int, options ...Option) (Agent, error) {
	factory, ok := factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return factory(index, options...), nil
}

// CreateTeam builds the two agents of one side. Empty names select the defaults.
func CreateTeam(first, second int, isRed bool, firstName, secondName string, options ...Option) ([]Agent, error) {
	for _, index := range []int{first, second} {
		if (index%2 == 0) != isRed {
			return nil, fmt.Errorf("agent %d does not play for the %s team", index, side(isRed))
		}
	}
	if firstName == "" {
		firstName = DefaultFirst
	}
	if secondName == "" {
		secondName = DefaultSecond
	}

	a, err := New(firstName, first, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create first agent: %w", err)
	}
	b, err := New(secondName, second, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create second agent: %w", err)
	}
	return []Agent{a, b}, nil
}

func side(red bool) string {
	if red {
		return "red"
	}
	return "blue"
}
