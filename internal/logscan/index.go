package logscan

import "strings"

// IDSummary describes one transaction ID seen in the log, for navigation.
type IDSummary struct {
	ID            string
	HasSQL        bool
	ParamSetCount int
}

// IndexIDs builds the summary list of all IDs that have a statement record,
// in first-seen order, with a count of parameter records per ID.
//
// Parameter records whose ID never appears with a sql= line are ignored: the
// index only lists IDs a user can actually look up a statement for.
func IndexIDs(lines []string) []IDSummary {
	var summaries []IDSummary
	byID := make(map[string]int)

	for _, line := range lines {
		for _, id := range taggedIDs(line, sqlTag) {
			if _, seen := byID[id]; seen {
				continue
			}
			byID[id] = len(summaries)
			summaries = append(summaries, IDSummary{ID: id, HasSQL: true})
		}
	}

	for _, line := range lines {
		for _, id := range taggedIDs(line, paramsTag) {
			if at, seen := byID[id]; seen {
				summaries[at].ParamSetCount++
			}
		}
	}

	return summaries
}

// taggedIDs returns the hex-like IDs on a line that are followed by
// whitespace and tag ("sql=" or "params=").
func taggedIDs(line, tag string) []string {
	var ids []string
	from := 0
	for {
		i := strings.Index(line[from:], idTag)
		if i < 0 {
			return ids
		}
		pos := from + i + len(idTag)
		from = pos

		end := pos
		for end < len(line) && isHexLike(line[end]) {
			end++
		}
		if end == pos {
			continue
		}
		rest := strings.TrimLeft(line[end:], " \t")
		if len(rest) == len(line[end:]) || !strings.HasPrefix(rest, tag) {
			continue
		}
		ids = append(ids, line[pos:end])
	}
}

func isHexLike(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f')
}
