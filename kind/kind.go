// Package kind defines the closed set of terminal and nonterminal labels
// shared by the tokenizer, the CST, and the typed expression view.
package kind

// Kind is a closed enumeration of token (leaf) and node (internal) labels.
//
// IMPORTANT: new kinds are always appended at the end, never inserted in the
// middle — inserting would renumber every later constant and break any
// serialized or cached value keyed on the numeric kind.
type Kind uint32

const (
	// Special
	EOF Kind = iota
	TOKEN_ERROR_UNKNOWN
	TOKEN_ERROR_NUMBER_NO_DIGIT
	TOKEN_ERROR_FLOAT_NO_EXPONENT

	// Trivia
	TOKEN_WHITESPACE
	TOKEN_COMMENT_LINE
	TOKEN_COMMENT_BLOCK

	// Punctuation (single and multi-char)
	TOKEN_LEFT_PARENTHESIS
	TOKEN_RIGHT_PARENTHESIS
	TOKEN_LEFT_BRACKET
	TOKEN_RIGHT_BRACKET
	TOKEN_LEFT_BRACE
	TOKEN_RIGHT_BRACE
	TOKEN_DOT
	TOKEN_COMMA
	TOKEN_SEMICOLON
	TOKEN_COLON
	TOKEN_AT
	TOKEN_PLUS
	TOKEN_MINUS
	TOKEN_ASTERISK
	TOKEN_SLASH
	TOKEN_SLASH_SLASH // //
	TOKEN_CARET
	TOKEN_BANG          // !
	TOKEN_BANG_EQUAL    // !=
	TOKEN_QUESTION      // ?
	TOKEN_EQUAL         // =
	TOKEN_LESS          // <
	TOKEN_LESS_EQUAL    // <=
	TOKEN_GREATER       // >
	TOKEN_GREATER_EQUAL // >=
	TOKEN_AMPERSAND     // &
	TOKEN_AMPERSAND_AMPERSAND
	TOKEN_PIPE // |
	TOKEN_PIPE_PIPE
	TOKEN_EQUAL_GREATER // =>
	TOKEN_MINUS_GREATER // ->
	TOKEN_LESS_PIPE     // <|
	TOKEN_PIPE_GREATER  // |>
	TOKEN_PLUS_PLUS     // ++

	// Keywords
	TOKEN_KEYWORD_IF
	TOKEN_KEYWORD_THEN
	TOKEN_KEYWORD_ELSE

	// Literals
	TOKEN_INTEGER
	TOKEN_FLOAT
	TOKEN_IDENTIFIER

	// Stringlike openers/closers/content
	TOKEN_STRING_START
	TOKEN_STRING_END
	TOKEN_RUNE_START
	TOKEN_RUNE_END
	TOKEN_IDENTIFIER_QUOTE_START
	TOKEN_IDENTIFIER_QUOTE_END
	TOKEN_PATH_START // zero-width
	TOKEN_PATH_END   // zero-width
	TOKEN_ISLAND_HEADER_START
	TOKEN_ISLAND_HEADER_END
	TOKEN_CONTENT
	TOKEN_INTERPOLATION_START // \(
	TOKEN_INTERPOLATION_END   // )

	// Node kinds (internal)
	NODE_ERROR
	NODE_PARENTHESIS
	NODE_LIST
	NODE_ATTRIBUTES
	NODE_PREFIX_OPERATION
	NODE_INFIX_OPERATION
	NODE_SUFFIX_OPERATION
	NODE_ISLAND
	NODE_PATH
	NODE_BIND
	NODE_IDENTIFIER
	NODE_IDENTIFIER_QUOTED
	NODE_STRING
	NODE_RUNE
	NODE_INTEGER
	NODE_FLOAT
	NODE_IF
	NODE_INTERPOLATION
	NODE_ROOT

	numKinds
)

var names = [...]string{
	EOF:                          "EOF",
	TOKEN_ERROR_UNKNOWN:          "TOKEN_ERROR_UNKNOWN",
	TOKEN_ERROR_NUMBER_NO_DIGIT:  "TOKEN_ERROR_NUMBER_NO_DIGIT",
	TOKEN_ERROR_FLOAT_NO_EXPONENT: "TOKEN_ERROR_FLOAT_NO_EXPONENT",
	TOKEN_WHITESPACE:             "TOKEN_WHITESPACE",
	TOKEN_COMMENT_LINE:           "TOKEN_COMMENT_LINE",
	TOKEN_COMMENT_BLOCK:          "TOKEN_COMMENT_BLOCK",
	TOKEN_LEFT_PARENTHESIS:       "TOKEN_LEFT_PARENTHESIS",
	TOKEN_RIGHT_PARENTHESIS:      "TOKEN_RIGHT_PARENTHESIS",
	TOKEN_LEFT_BRACKET:           "TOKEN_LEFT_BRACKET",
	TOKEN_RIGHT_BRACKET:          "TOKEN_RIGHT_BRACKET",
	TOKEN_LEFT_BRACE:             "TOKEN_LEFT_BRACE",
	TOKEN_RIGHT_BRACE:            "TOKEN_RIGHT_BRACE",
	TOKEN_DOT:                    "TOKEN_DOT",
	TOKEN_COMMA:                  "TOKEN_COMMA",
	TOKEN_SEMICOLON:              "TOKEN_SEMICOLON",
	TOKEN_COLON:                  "TOKEN_COLON",
	TOKEN_AT:                     "TOKEN_AT",
	TOKEN_PLUS:                   "TOKEN_PLUS",
	TOKEN_MINUS:                  "TOKEN_MINUS",
	TOKEN_ASTERISK:               "TOKEN_ASTERISK",
	TOKEN_SLASH:                  "TOKEN_SLASH",
	TOKEN_SLASH_SLASH:            "TOKEN_SLASH_SLASH",
	TOKEN_CARET:                  "TOKEN_CARET",
	TOKEN_BANG:                   "TOKEN_BANG",
	TOKEN_BANG_EQUAL:             "TOKEN_BANG_EQUAL",
	TOKEN_QUESTION:               "TOKEN_QUESTION",
	TOKEN_EQUAL:                  "TOKEN_EQUAL",
	TOKEN_LESS:                   "TOKEN_LESS",
	TOKEN_LESS_EQUAL:             "TOKEN_LESS_EQUAL",
	TOKEN_GREATER:                "TOKEN_GREATER",
	TOKEN_GREATER_EQUAL:          "TOKEN_GREATER_EQUAL",
	TOKEN_AMPERSAND:              "TOKEN_AMPERSAND",
	TOKEN_AMPERSAND_AMPERSAND:    "TOKEN_AMPERSAND_AMPERSAND",
	TOKEN_PIPE:                   "TOKEN_PIPE",
	TOKEN_PIPE_PIPE:              "TOKEN_PIPE_PIPE",
	TOKEN_EQUAL_GREATER:          "TOKEN_EQUAL_GREATER",
	TOKEN_MINUS_GREATER:          "TOKEN_MINUS_GREATER",
	TOKEN_LESS_PIPE:              "TOKEN_LESS_PIPE",
	TOKEN_PIPE_GREATER:           "TOKEN_PIPE_GREATER",
	TOKEN_PLUS_PLUS:              "TOKEN_PLUS_PLUS",
	TOKEN_KEYWORD_IF:             "TOKEN_KEYWORD_IF",
	TOKEN_KEYWORD_THEN:           "TOKEN_KEYWORD_THEN",
	TOKEN_KEYWORD_ELSE:           "TOKEN_KEYWORD_ELSE",
	TOKEN_INTEGER:                "TOKEN_INTEGER",
	TOKEN_FLOAT:                  "TOKEN_FLOAT",
	TOKEN_IDENTIFIER:             "TOKEN_IDENTIFIER",
	TOKEN_STRING_START:           "TOKEN_STRING_START",
	TOKEN_STRING_END:             "TOKEN_STRING_END",
	TOKEN_RUNE_START:             "TOKEN_RUNE_START",
	TOKEN_RUNE_END:               "TOKEN_RUNE_END",
	TOKEN_IDENTIFIER_QUOTE_START: "TOKEN_IDENTIFIER_QUOTE_START",
	TOKEN_IDENTIFIER_QUOTE_END:   "TOKEN_IDENTIFIER_QUOTE_END",
	TOKEN_PATH_START:             "TOKEN_PATH_START",
	TOKEN_PATH_END:               "TOKEN_PATH_END",
	TOKEN_ISLAND_HEADER_START:    "TOKEN_ISLAND_HEADER_START",
	TOKEN_ISLAND_HEADER_END:      "TOKEN_ISLAND_HEADER_END",
	TOKEN_CONTENT:                "TOKEN_CONTENT",
	TOKEN_INTERPOLATION_START:    "TOKEN_INTERPOLATION_START",
	TOKEN_INTERPOLATION_END:      "TOKEN_INTERPOLATION_END",
	NODE_ERROR:                  "NODE_ERROR",
	NODE_PARENTHESIS:            "NODE_PARENTHESIS",
	NODE_LIST:                   "NODE_LIST",
	NODE_ATTRIBUTES:             "NODE_ATTRIBUTES",
	NODE_PREFIX_OPERATION:       "NODE_PREFIX_OPERATION",
	NODE_INFIX_OPERATION:        "NODE_INFIX_OPERATION",
	NODE_SUFFIX_OPERATION:       "NODE_SUFFIX_OPERATION",
	NODE_ISLAND:                 "NODE_ISLAND",
	NODE_PATH:                   "NODE_PATH",
	NODE_BIND:                   "NODE_BIND",
	NODE_IDENTIFIER:             "NODE_IDENTIFIER",
	NODE_IDENTIFIER_QUOTED:      "NODE_IDENTIFIER_QUOTED",
	NODE_STRING:                 "NODE_STRING",
	NODE_RUNE:                   "NODE_RUNE",
	NODE_INTEGER:                "NODE_INTEGER",
	NODE_FLOAT:                  "NODE_FLOAT",
	NODE_IF:                     "NODE_IF",
	NODE_INTERPOLATION:          "NODE_INTERPOLATION",
	NODE_ROOT:                   "NODE_ROOT",
}

func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return "UNKNOWN_KIND"
}

// IsTrivia reports whether k is whitespace or a comment: the Noder skips
// these between significant tokens but attaches them to surrounding nodes.
func (k Kind) IsTrivia() bool {
	switch k {
	case TOKEN_WHITESPACE, TOKEN_COMMENT_LINE, TOKEN_COMMENT_BLOCK:
		return true
	default:
		return false
	}
}

// IsError reports whether k is a lexical-error token kind.
func (k Kind) IsError() bool {
	switch k {
	case TOKEN_ERROR_UNKNOWN, TOKEN_ERROR_NUMBER_NO_DIGIT, TOKEN_ERROR_FLOAT_NO_EXPONENT:
		return true
	default:
		return false
	}
}

// EXPRESSIONS is the set of tokens that may start an expression.
var EXPRESSIONS = map[Kind]bool{
	TOKEN_LEFT_PARENTHESIS:       true,
	TOKEN_LEFT_BRACKET:           true,
	TOKEN_LEFT_BRACE:             true,
	TOKEN_INTEGER:                true,
	TOKEN_FLOAT:                  true,
	TOKEN_KEYWORD_IF:             true,
	TOKEN_PATH_START:             true,
	TOKEN_AT:                     true,
	TOKEN_IDENTIFIER:             true,
	TOKEN_IDENTIFIER_QUOTE_START: true,
	TOKEN_STRING_START:           true,
	TOKEN_RUNE_START:             true,
	TOKEN_ISLAND_HEADER_START:    true,
}

// IsArgument reports whether k may begin an implicit-application argument:
// every expression-starter token except the `if` keyword, plus any lexical
// error token (an error token always stands in for some expression).
func (k Kind) IsArgument() bool {
	if k == TOKEN_KEYWORD_IF {
		return false
	}
	return EXPRESSIONS[k] || k.IsError()
}

// AsNodeAndClosing returns, for a stringlike opener kind, the node kind that
// wraps it and the token kind of its matching closer.
func (k Kind) AsNodeAndClosing() (node Kind, closing Kind, ok bool) {
	switch k {
	case TOKEN_PATH_START:
		return NODE_PATH, TOKEN_PATH_END, true
	case TOKEN_IDENTIFIER_QUOTE_START:
		return NODE_IDENTIFIER_QUOTED, TOKEN_IDENTIFIER_QUOTE_END, true
	case TOKEN_STRING_START:
		return NODE_STRING, TOKEN_STRING_END, true
	case TOKEN_RUNE_START:
		return NODE_RUNE, TOKEN_RUNE_END, true
	case TOKEN_ISLAND_HEADER_START:
		return NODE_ISLAND, TOKEN_ISLAND_HEADER_END, true
	default:
		return 0, 0, false
	}
}
