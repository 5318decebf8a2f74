package shared

import "io"

// checks if slice of strings Contains given string
func Contains(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}

// CloseQuietly closes `closable` ignoring any error it may raise
func CloseQuietly(closable io.Closer) {
	_ = closable.Close()
}
