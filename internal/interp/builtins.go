package interp

import (
	"errors"
	"strings"
)

// Builtins returns the registry of functions shipped with the tool.
// Callers may add their own entries before processing starts.
func Builtins() Registry {
	return Registry{
		"join":    joinArgs,
		"first":   firstArg,
		"creator": creatorEntry,
	}
}

// joinArgs joins the non-empty arguments with a single space.
func joinArgs(args ...string) (Value, error) {
	var parts []string

	for _, a := range args {
		if a = strings.TrimSpace(a); a != "" {
			parts = append(parts, a)
		}
	}

	return Text(strings.Join(parts, " ")), nil
}

// firstArg returns the first non-empty argument.
func firstArg(args ...string) (Value, error) {
	for _, a := range args {
		if strings.TrimSpace(a) != "" {
			return Text(a), nil
		}
	}

	return Text(""), nil
}

// creatorEntry builds a creators/creator/creatorName subtree from a
// single name column.
func creatorEntry(args ...string) (Value, error) {
	if len(args) != 1 {
		return nil, errors.New("creator takes exactly one argument")
	}

	return Children{
		{Path: "creators/creator/creatorName", Value: Text(args[0])},
	}, nil
}
