// export_test.go exports private functions for white-box testing.
package logger

// ErrorEntry mirrors errorEntry for assertions.
type ErrorEntry struct {
	Message  string
	Metadata map[string]string
}

// CollectErrorEntries exposes collectErrorEntries.
func CollectErrorEntries(err error) []ErrorEntry {
	entries := collectErrorEntries(err)
	out := make([]ErrorEntry, len(entries))
	for i, e := range entries {
		out[i] = ErrorEntry{Message: e.message, Metadata: e.metadata}
	}
	return out
}

// FormatErrorEntries exposes formatErrorEntries.
func FormatErrorEntries(entries []ErrorEntry) string {
	in := make([]errorEntry, len(entries))
	for i, e := range entries {
		in[i] = errorEntry{message: e.Message, metadata: e.Metadata}
	}
	return formatErrorEntries(in)
}
