package inputsettings

import "strings"

// MergeOptions drops every option in the comma separated list that starts with
// prefix and appends replacement, if any. Empty tokens are never kept.
func MergeOptions(existing, prefix, replacement string) string {
	var out []string
	for _, opt := range strings.Split(existing, ",") {
		if strings.HasPrefix(opt, prefix) {
			continue
		}
		if opt == "" {
			continue
		}
		out = append(out, opt)
	}

	if replacement != "" {
		out = append(out, replacement)
	}

	return strings.Join(out, ",")
}
