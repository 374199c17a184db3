package logscan

import "strings"

// UnknownCaller is reported when no DAO marker is found near a statement.
const UnknownCaller = "Unknown"

// callerWindow is how many lines after a statement are searched for the
// DAO-call-end marker.
const callerWindow = 50

// daoEndMarker precedes the dotted class path of the DAO that issued the
// statement ("Daoの終了" = "DAO finished" in the logging framework's output).
const daoEndMarker = "Daoの終了"

// classPathPrefix anchors the dotted class path that follows the marker.
const classPathPrefix = "jp.co."

// ResolveCaller searches forward from a statement line for the DAO-call-end
// marker and extracts the short class name. This is a proximity heuristic:
// logs interleaving concurrent requests can attribute the wrong caller, which
// is an accepted limitation.
func ResolveCaller(lines []string, stmtIndex int) string {
	end := stmtIndex + callerWindow
	if end > len(lines) {
		end = len(lines)
	}
	for i := stmtIndex + 1; i < end; i++ {
		if name, ok := callerFromLine(lines[i]); ok {
			return name
		}
	}
	return UnknownCaller
}

// callerFromLine extracts the DAO class name from a marker line such as
// "...Daoの終了jp.co.example.app.dao.UserDao,elapsed=12ms".
func callerFromLine(line string) (string, bool) {
	i := strings.Index(line, daoEndMarker)
	if i < 0 {
		return "", false
	}
	rest := line[i+len(daoEndMarker):]
	if !strings.HasPrefix(rest, classPathPrefix) {
		return "", false
	}

	// The class path token runs to the first whitespace or comma.
	end := strings.IndexAny(rest, " \t,")
	token := rest
	if end >= 0 {
		token = rest[:end]
	}

	segment := token
	if dot := strings.LastIndexByte(token, '.'); dot >= 0 {
		segment = token[dot+1:]
	}

	name := daoName(segment)
	if name == "" {
		return "", false
	}
	return name, true
}

// daoName returns the trailing letters-run ending in "Dao" within segment, so
// "UserDao" and "UserDao;" yield "UserDao" while "UserDaoImpl" yields nothing
// (the suffix convention requires Dao at a word boundary).
func daoName(segment string) string {
	for idx := strings.LastIndex(segment, "Dao"); idx >= 0; idx = strings.LastIndex(segment[:idx], "Dao") {
		after := segment[idx+3:]
		if after != "" && isLetter(after[0]) {
			continue
		}
		start := idx
		for start > 0 && isLetter(segment[start-1]) {
			start--
		}
		return segment[start : idx+3]
	}
	return ""
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
