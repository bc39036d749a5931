package puzzle

import "fmt"

// TokenError reports a piece of input that could not be understood.
type TokenError struct {
	Token  string
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("could not parse %q because %s", e.Token, e.Reason)
}

// Tokenf builds a TokenError with a formatted reason.
func Tokenf(token, format string, args ...any) *TokenError {
	return &TokenError{Token: token, Reason: fmt.Sprintf(format, args...)}
}
