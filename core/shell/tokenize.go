package shell

import (
	"fmt"
	"strings"
)

// Tokenize splits line into arguments on runs of whitespace. There is no
// quoting, escaping, or expansion: every whitespace delimited word becomes
// exactly one argument. A blank line produces no arguments.
func Tokenize(line string) ([]string, error) {
	tokens := strings.Fields(line)
	for _, tok := range tokens {
		if strings.IndexByte(tok, 0) >= 0 {
			return nil, fmt.Errorf("%w: argument %q contains a NUL byte", ErrInvalidArgument, tok)
		}
	}

	return tokens, nil
}
