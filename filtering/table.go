package filtering

import "strings"

const wildcard = "*"

// entry is the enablement state for one namespace: either every level
// is enabled (all) or only the levels present in the set.
type entry struct {
	all    bool
	levels map[string]struct{}
}

func emptyEntry() entry    { return entry{levels: map[string]struct{}{}} }
func wildcardEntry() entry { return entry{all: true, levels: map[string]struct{}{}} }

// Table maps every declared namespace to its enablement state. Built
// once from a raw pattern spec, read-only afterwards, so concurrent
// queries need no locking.
type Table struct {
	entries map[string]entry
}

// Build parses a comma separated pattern spec into a Table. Patterns
// are `*`, `ns`, `ns:lvl`, `*:lvl`, `ns:*` or `-ns`; inclusions are
// applied first and exclusions afterwards, so an exclusion wins no
// matter where it sits in the spec. Unknown namespaces or levels and
// malformed segments are inert, never an error.
func Build(namespaces []string, levels []string, rawSpec string) Table {
	entries := make(map[string]entry, len(namespaces))
	for _, ns := range namespaces {
		entries[ns] = emptyEntry()
	}
	t := Table{entries: entries}
	if rawSpec == wildcard {
		for ns := range entries {
			entries[ns] = wildcardEntry()
		}
		return t
	}

	declared := make(map[string]struct{}, len(levels))
	for _, lvl := range levels {
		declared[lvl] = struct{}{}
	}
	var inclusions, exclusions []string
	for _, p := range strings.Split(rawSpec, ",") {
		if p = strings.TrimSpace(p); p == "" {
			continue
		} else if strings.HasPrefix(p, "-") {
			exclusions = append(exclusions, p[1:])
		} else {
			inclusions = append(inclusions, p)
		}
	}

	for _, p := range inclusions {
		nsTok, lvlTok, qualified := cut(p)
		for _, ns := range targets(namespaces, entries, nsTok) {
			e := entries[ns]
			if !qualified {
				e = wildcardEntry()
			} else if lvlTok == wildcard {
				e.all = true
			} else if _, ok := declared[lvlTok]; ok {
				e.levels[lvlTok] = struct{}{}
			}
			entries[ns] = e
		}
	}
	for _, p := range exclusions {
		// a level qualifier on an exclusion is ignored, the whole
		// namespace goes dark
		ns, _, _ := cut(p)
		if _, ok := entries[ns]; ok {
			entries[ns] = emptyEntry()
		}
	}
	return t
}

func cut(pattern string) (ns, lvl string, qualified bool) {
	if i := strings.Index(pattern, ":"); i < 0 {
		return pattern, "", false
	} else {
		return pattern[:i], pattern[i+1:], true
	}
}

func targets(namespaces []string, entries map[string]entry, tok string) []string {
	if tok == wildcard {
		return namespaces
	} else if _, ok := entries[tok]; ok {
		return []string{tok}
	} else {
		return nil
	}
}
