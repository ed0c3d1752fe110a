package tmux

import "strings"

func shellSafe(r rune) bool {
	return r == '/' || r == '.' || r == '_' || r == '-' || r == '+' || r == ':' ||
		r == ',' || r == '=' || r == '@' || r == '%' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ShellQuote quotes s for a POSIX shell. Safe words are left alone.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, func(r rune) bool { return !shellSafe(r) }) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// ShellJoin quotes and joins args into one shell command line.
func ShellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = ShellQuote(a)
	}
	return strings.Join(quoted, " ")
}

// Quote quotes s as a single tmux command argument.
func Quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\"'\\#;$~{}") {
		return s
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`).Replace(s) + `"`
}
