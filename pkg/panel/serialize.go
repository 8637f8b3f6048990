package panel

import "strings"

const pairSeparator = ", "

// SerializeValues flattens field values into the "key=value, " form the start
// command expects, trailing separator trimmed. Names fixes the pair order;
// names absent from values are skipped.
func SerializeValues(names []string, values map[string]string) string {
	if len(names) == 0 || len(values) == 0 {
		return ""
	}

	var b strings.Builder
	for _, name := range names {
		value, ok := values[name]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(pairSeparator)
		}
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(value)
	}
	return b.String()
}
