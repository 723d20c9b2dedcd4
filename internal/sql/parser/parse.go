package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const (
	maxUsernameLen = 32
	maxEmailLen    = 255
)

var (
	// ErrSyntax means the statement didn't have the shape its keyword
	// requires: a missing token, or an id that isn't an integer.
	ErrSyntax = errors.New("syntax error")
	// ErrNegativeID means INSERT's id token parsed but was negative.
	ErrNegativeID = errors.New("negative id")
	// ErrStringTooLong means username exceeded 32 bytes or email exceeded
	// 255 bytes.
	ErrStringTooLong = errors.New("string too long")
	// ErrUnrecognized means the first token wasn't INSERT or SELECT.
	ErrUnrecognized = errors.New("unrecognized keyword")
)

// Field matches any run of non-whitespace: id, username, and email are all
// lexed identically, so a digit-leading email (1@x.com) or numeric username
// (007) is never mis-split from the token that follows it.
var statementLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Field", Pattern: `\S+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var insertParser = participle.MustBuild[InsertArgs](
	participle.Lexer(statementLexer),
	participle.Elide("Whitespace"),
)

// Parse turns one line of REPL input into a Command. The keyword match is
// case-sensitive: anything not spelled exactly "SELECT" or "INSERT" as
// its first token is ErrUnrecognized.
func Parse(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrSyntax
	}

	switch fields[0] {
	case "SELECT":
		return &Command{Kind: CommandSelect}, nil
	case "INSERT":
		args, err := parseInsertArgs(strings.TrimPrefix(line, fields[0]))
		if err != nil {
			return nil, err
		}
		return &Command{Kind: CommandInsert, Insert: args}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognized, line)
	}
}

func parseInsertArgs(rest string) (*InsertArgs, error) {
	args, err := insertParser.ParseString("", rest)
	if err != nil {
		return nil, ErrSyntax
	}

	if args.ID < 0 {
		return nil, ErrNegativeID
	}
	if len(args.Username) > maxUsernameLen || len(args.Email) > maxEmailLen {
		return nil, ErrStringTooLong
	}

	return args, nil
}
