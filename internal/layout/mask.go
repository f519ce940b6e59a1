package layout

type lexState int

const (
	stateCode lexState = iota
	stateLineComment
	stateBlockComment
	stateSingleQuote
	stateDoubleQuote
	stateTemplate
)

// maskNonCode returns src with the contents of comments and string literals
// replaced by spaces. Newlines and byte offsets are preserved, so indexes into
// the result are valid indexes into src.
//
// Single- and double-quoted strings end at a newline. This keeps an apostrophe
// in JSX text from masking more than the rest of its own line.
func maskNonCode(src string) string {
	out := []byte(src)
	state := stateCode
	for i := 0; i < len(out); i++ {
		c := src[i]
		var next byte
		if i+1 < len(src) {
			next = src[i+1]
		}
		switch state {
		case stateCode:
			switch {
			case c == '/' && next == '/':
				state = stateLineComment
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '/' && next == '*':
				state = stateBlockComment
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '\'':
				state = stateSingleQuote
			case c == '"':
				state = stateDoubleQuote
			case c == '`':
				state = stateTemplate
			}
		case stateLineComment:
			if c == '\n' {
				state = stateCode
				continue
			}
			out[i] = ' '
		case stateBlockComment:
			if c == '*' && next == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				state = stateCode
				continue
			}
			if c != '\n' {
				out[i] = ' '
			}
		case stateSingleQuote, stateDoubleQuote, stateTemplate:
			closing := byte('\'')
			if state == stateDoubleQuote {
				closing = '"'
			} else if state == stateTemplate {
				closing = '`'
			}
			switch {
			case c == '\\' && i+1 < len(src):
				out[i] = ' '
				if next != '\n' {
					out[i+1] = ' '
				}
				i++
			case c == closing:
				state = stateCode
			case c == '\n':
				if state != stateTemplate {
					state = stateCode
				}
			default:
				out[i] = ' '
			}
		}
	}
	return string(out)
}

// matchParen returns the index of the paren closing the one at open, or -1 if
// the parens in masked never balance.
func matchParen(masked string, open int) int {
	depth := 0
	for i := open; i < len(masked); i++ {
		switch masked[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
