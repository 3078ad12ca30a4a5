package cliutil

import "os"

// IsTty reports whether f is attached to a terminal, so the CLI can
// decide between "read stdin" and "show usage".
func IsTty(f *os.File) bool {
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}
