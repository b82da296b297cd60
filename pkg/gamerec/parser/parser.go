package parser

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"mercator-hq/tally/pkg/gamerec/ast"
	recErrors "mercator-hq/tally/pkg/gamerec/errors"
)

// DefaultMaxInputSize is the default input size limit (10MB).
const DefaultMaxInputSize int64 = 10 * 1024 * 1024

// Parser parses game records into ASTs.
// It holds only configuration, so one Parser may be shared between goroutines.
type Parser struct {
	maxInputSize int64 // Maximum input size in bytes
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxInputSize: DefaultMaxInputSize,
	}
}

// WithMaxInputSize sets the maximum input size limit.
// Values <= 0 restore the default.
func (p *Parser) WithMaxInputSize(size int64) *Parser {
	if size <= 0 {
		size = DefaultMaxInputSize
	}
	p.maxInputSize = size
	return p
}

// MaxInputSize returns the configured input size limit.
func (p *Parser) MaxInputSize() int64 {
	return p.maxInputSize
}

// Parse reads the file at path and parses every record in it.
// It returns an error if the file cannot be read or is not well formed.
func (p *Parser) Parse(path string) ([]ast.Game, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, &recErrors.Error{
			Type:     recErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("Failed to access file: %v", err),
			Location: ast.Location{File: path},
			Err:      err,
		}
	}

	if err := p.CheckSize(fileInfo.Size(), path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &recErrors.Error{
			Type:     recErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("Failed to read file: %v", err),
			Location: ast.Location{File: path},
			Err:      err,
		}
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses records from a byte slice.
// sourcePath names the input in error locations.
func (p *Parser) ParseBytes(data []byte, sourcePath string) ([]ast.Game, error) {
	if err := p.CheckSize(int64(len(data)), sourcePath); err != nil {
		return nil, err
	}
	return p.ParseString(string(data), sourcePath)
}

// ParseString parses records from text. At least one record is required,
// the whole input must be consumed, and a single trailing line break is
// allowed. On failure no games are returned.
func (p *Parser) ParseString(text, sourcePath string) ([]ast.Game, error) {
	if err := p.CheckSize(int64(len(text)), sourcePath); err != nil {
		return nil, err
	}

	if strings.TrimRight(text, "\r\n") == "" {
		return nil, &recErrors.Error{
			Type:       recErrors.ErrorTypeSyntax,
			Message:    "Input contains no game records",
			Location:   ast.Location{File: sourcePath, Line: 1, Column: 1},
			Suggestion: `Start each line with "Game <id>: "`,
		}
	}

	list, err := gamesGrammar.ParseString(sourcePath, text)
	if err != nil {
		return nil, syntaxError(err, text, sourcePath)
	}

	games, err := newBuilder(sourcePath).buildGames(list.Games)
	if err != nil {
		return nil, withContext(err, text)
	}
	return games, nil
}

// ParseGame parses exactly one record. Line breaks are not allowed.
func (p *Parser) ParseGame(line, sourcePath string) (ast.Game, error) {
	if err := p.CheckSize(int64(len(line)), sourcePath); err != nil {
		return ast.Game{}, err
	}
	entry, err := gameGrammar.ParseString(sourcePath, line)
	if err != nil {
		return ast.Game{}, syntaxError(err, line, sourcePath)
	}

	b := newBuilder(sourcePath)
	game := b.buildGame(entry)
	if err := b.errors.ToError(); err != nil {
		return ast.Game{}, withContext(err, line)
	}
	return game, nil
}

// ParseRound parses exactly one round, e.g. "3 blue, 4 red".
// The empty string is a round with all counts zero.
func (p *Parser) ParseRound(text, sourcePath string) (ast.Round, error) {
	if err := p.CheckSize(int64(len(text)), sourcePath); err != nil {
		return ast.Round{}, err
	}
	entry, err := roundGrammar.ParseString(sourcePath, text)
	if err != nil {
		return ast.Round{}, syntaxError(err, text, sourcePath)
	}

	b := newBuilder(sourcePath)
	round := b.buildRound(entry)
	if err := b.errors.ToError(); err != nil {
		return ast.Round{}, withContext(err, text)
	}
	return round, nil
}

// CheckSize returns an ErrorTypeIO error when size exceeds the input limit.
func (p *Parser) CheckSize(size int64, sourcePath string) error {
	if size > p.maxInputSize {
		return p.sizeError(size, sourcePath)
	}
	return nil
}

func (p *Parser) sizeError(size int64, sourcePath string) error {
	return &recErrors.Error{
		Type:     recErrors.ErrorTypeIO,
		Message:  fmt.Sprintf("Input size %d exceeds maximum %d bytes", size, p.maxInputSize),
		Location: ast.Location{File: sourcePath},
	}
}

// syntaxError converts a participle or lexer failure into a rich error.
func syntaxError(err error, source, sourcePath string) error {
	out := &recErrors.Error{
		Type:    recErrors.ErrorTypeSyntax,
		Message: err.Error(),
		Err:     err,
	}

	var perr participle.Error
	if stderrors.As(err, &perr) {
		pos := perr.Position()
		out.Message = capitalize(perr.Message())
		out.Location = ast.Location{File: sourcePath, Line: pos.Line, Column: pos.Column}
	}

	var unexpected *participle.UnexpectedTokenError
	if stderrors.As(err, &unexpected) {
		out.Suggestion = suggestFor(unexpected.Unexpected)
	}

	return recErrors.AddContextToError(out, source)
}

// suggestFor produces a hint for the token that stopped the parse.
func suggestFor(tok lexer.Token) string {
	switch {
	case tok.EOF():
		return `Records end after a category; check for a missing "<count> <color>"`
	case tok.Value == "\n" || tok.Value == "\r\n":
		return "Blank lines are not allowed between records"
	case tok.Value == " ":
		return `Separators are exactly ": ", "; " and ", " with single spaces`
	case tok.Value == ",":
		return `Separate categories with ", " and rounds with "; "`
	}
	if _, err := ast.ParseColor(strings.ToLower(tok.Value)); err == nil {
		return `Write each category as "<count> <color>"`
	}
	return `Records look like "Game 1: 3 blue, 4 red; 2 green"`
}

// withContext attaches source context to every error in an error list.
func withContext(err error, source string) error {
	if errList, ok := err.(*recErrors.ErrorList); ok {
		for i, e := range errList.Errors {
			errList.Errors[i] = recErrors.AddContextToError(e, source)
		}
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
