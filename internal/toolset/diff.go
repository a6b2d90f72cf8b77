package toolset

import "sort"

// Diff is the difference between a toolset declaration and a server's
// advertised tools.
type Diff struct {
	// Missing lists declared tools the server does not advertise.
	Missing []string
	// Extra lists advertised tools the declaration does not know.
	Extra []string
}

// Clean reports whether the server advertises every declared tool and
// nothing else.
func (d Diff) Clean() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// Diff compares the declared tools with an advertised tool-name list. Both
// result slices come back sorted.
func (s *Toolset) Diff(available []string) Diff {
	declared := make(map[string]bool, len(s.Tools))
	for _, tool := range s.Tools {
		declared[tool.Name] = true
	}
	advertised := make(map[string]bool, len(available))
	for _, name := range available {
		advertised[name] = true
	}

	var diff Diff
	for name := range declared {
		if !advertised[name] {
			diff.Missing = append(diff.Missing, name)
		}
	}
	for name := range advertised {
		if !declared[name] {
			diff.Extra = append(diff.Extra, name)
		}
	}
	sort.Strings(diff.Missing)
	sort.Strings(diff.Extra)
	return diff
}
