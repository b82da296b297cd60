package parser

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"mercator-hq/tally/pkg/gamerec/ast"
	recErrors "mercator-hq/tally/pkg/gamerec/errors"
)

const sampleGames = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

// ignoreLocation compares games structurally, ignoring diagnostics.
var ignoreLocation = cmpopts.IgnoreFields(ast.Game{}, "Location")

func TestParser_ParseGame(t *testing.T) {
	p := NewParser()
	game, err := p.ParseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green", "memory://test")
	if err != nil {
		t.Fatalf("ParseGame() failed: %v", err)
	}

	want := ast.Game{
		ID: 1,
		Rounds: []ast.Round{
			{Red: 4, Green: 0, Blue: 3},
			{Red: 1, Green: 2, Blue: 6},
			{Red: 0, Green: 2, Blue: 0},
		},
	}
	if diff := cmp.Diff(want, game, ignoreLocation); diff != "" {
		t.Errorf("ParseGame() mismatch (-want +got):\n%s", diff)
	}

	wantLoc := ast.Location{File: "memory://test", Line: 1, Column: 1}
	if game.Location != wantLoc {
		t.Errorf("Location = %v, want %v", game.Location, wantLoc)
	}
}

func TestParser_ParseRound(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Round
	}{
		{"1 red, 2 green, 6 blue", ast.Round{Red: 1, Green: 2, Blue: 6}},
		{"3 blue, 4 red", ast.Round{Red: 4, Blue: 3}},
		{"2 green", ast.Round{Green: 2}},
		{"0 red", ast.Round{}},
		{"007 blue", ast.Round{Blue: 7}},
		{"", ast.Round{}},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.ParseRound(tt.input, "memory://round")
			if err != nil {
				t.Fatalf("ParseRound(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRound(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParser_ParseRound_PermutationInvariant(t *testing.T) {
	terms := []string{"5 red", "7 green", "9 blue"}
	want := ast.Round{Red: 5, Green: 7, Blue: 9}

	perms := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	p := NewParser()
	for _, perm := range perms {
		parts := make([]string, len(perm))
		for i, idx := range perm {
			parts[i] = terms[idx]
		}
		text := strings.Join(parts, ", ")

		got, err := p.ParseRound(text, "memory://perm")
		if err != nil {
			t.Fatalf("ParseRound(%q) failed: %v", text, err)
		}
		if got != want {
			t.Errorf("ParseRound(%q) = %+v, want %+v", text, got, want)
		}
	}

	a, errA := p.ParseRound("3 blue, 4 red", "memory://a")
	b, errB := p.ParseRound("4 red, 3 blue", "memory://b")
	if errA != nil || errB != nil {
		t.Fatalf("ParseRound() failed: %v, %v", errA, errB)
	}
	if a != b || a != (ast.Round{Red: 4, Blue: 3}) {
		t.Errorf("pair rounds differ: %+v vs %+v", a, b)
	}
}

func TestParser_ParseString_Sample(t *testing.T) {
	p := NewParser()
	games, err := p.ParseString(sampleGames, "memory://sample")
	if err != nil {
		t.Fatalf("ParseString() failed: %v", err)
	}

	if len(games) != 5 {
		t.Fatalf("len(games) = %d, want 5", len(games))
	}
	for i, g := range games {
		if g.ID != i+1 {
			t.Errorf("games[%d].ID = %d, want %d", i, g.ID, i+1)
		}
		if g.Location.Line != i+1 {
			t.Errorf("games[%d].Location.Line = %d, want %d", i, g.Location.Line, i+1)
		}
	}

	wantGame3 := []ast.Round{
		{Red: 20, Green: 8, Blue: 6},
		{Red: 4, Green: 13, Blue: 5},
		{Red: 1, Green: 5, Blue: 0},
	}
	if diff := cmp.Diff(wantGame3, games[2].Rounds); diff != "" {
		t.Errorf("game 3 rounds mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_ParseString_Idempotent(t *testing.T) {
	p := NewParser()
	first, err := p.ParseString(sampleGames, "memory://sample")
	if err != nil {
		t.Fatalf("first ParseString() failed: %v", err)
	}
	second, err := p.ParseString(sampleGames, "memory://sample")
	if err != nil {
		t.Fatalf("second ParseString() failed: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parses differ (-first +second):\n%s", diff)
	}
}

func TestParser_CanonicalRoundTrip(t *testing.T) {
	p := NewParser()
	games, err := p.ParseString(sampleGames+"\nGame 6: 1 red; ; 2 blue", "memory://sample")
	if err != nil {
		t.Fatalf("ParseString() failed: %v", err)
	}

	for _, g := range games {
		again, err := p.ParseGame(g.String(), "memory://canonical")
		if err != nil {
			t.Fatalf("ParseGame(%q) failed: %v", g.String(), err)
		}
		if diff := cmp.Diff(g, again, ignoreLocation); diff != "" {
			t.Errorf("round trip of game %d mismatch (-want +got):\n%s", g.ID, diff)
		}
	}
}

func TestParser_ZeroRoundGameRendering(t *testing.T) {
	g := ast.Game{ID: 1}
	if got := g.String(); got != "Game 1: " {
		t.Fatalf("String() = %q, want %q", got, "Game 1: ")
	}

	again, err := NewParser().ParseGame(g.String(), "memory://canonical")
	if err != nil {
		t.Fatalf("ParseGame(%q) failed: %v", g.String(), err)
	}
	want := ast.Game{ID: 1, Rounds: []ast.Round{{}}}
	if diff := cmp.Diff(want, again, ignoreLocation); diff != "" {
		t.Errorf("zero-round game mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_ParseString_Accepted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.Game
	}{
		{
			name:  "trailing newline",
			input: "Game 7: 1 red\n",
			want:  []ast.Game{{ID: 7, Rounds: []ast.Round{{Red: 1}}}},
		},
		{
			name:  "crlf line endings",
			input: "Game 1: 1 red\r\nGame 2: 2 blue\r\n",
			want: []ast.Game{
				{ID: 1, Rounds: []ast.Round{{Red: 1}}},
				{ID: 2, Rounds: []ast.Round{{Blue: 2}}},
			},
		},
		{
			name:  "empty round",
			input: "Game 3: ",
			want:  []ast.Game{{ID: 3, Rounds: []ast.Round{{}}}},
		},
		{
			name:  "empty middle round",
			input: "Game 4: 1 red; ; 2 green",
			want:  []ast.Game{{ID: 4, Rounds: []ast.Round{{Red: 1}, {}, {Green: 2}}}},
		},
		{
			name:  "duplicate ids are kept",
			input: "Game 1: 1 red\nGame 1: 2 red",
			want: []ast.Game{
				{ID: 1, Rounds: []ast.Round{{Red: 1}}},
				{ID: 1, Rounds: []ast.Round{{Red: 2}}},
			},
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseString(tt.input, "memory://test")
			if err != nil {
				t.Fatalf("ParseString(%q) failed: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got, ignoreLocation); diff != "" {
				t.Errorf("ParseString(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParser_ParseString_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errType recErrors.ErrorType
	}{
		{"empty input", "", recErrors.ErrorTypeSyntax},
		{"only newline", "\n", recErrors.ErrorTypeSyntax},
		{"missing Game prefix", "1: 3 blue, 4 red", recErrors.ErrorTypeSyntax},
		{"misspelled keyword", "Gam 1: 3 blue", recErrors.ErrorTypeSyntax},
		{"lowercase keyword", "game 1: 3 blue", recErrors.ErrorTypeSyntax},
		{"missing id", "Game : 3 blue", recErrors.ErrorTypeSyntax},
		{"missing colon space", "Game 1:3 blue", recErrors.ErrorTypeSyntax},
		{"double space", "Game  1: 3 blue", recErrors.ErrorTypeSyntax},
		{"comma without space", "Game 1: 3 blue,4 red", recErrors.ErrorTypeSyntax},
		{"semicolon without space", "Game 1: 3 blue;4 red", recErrors.ErrorTypeSyntax},
		{"trailing separator", "Game 1: 3 blue, ", recErrors.ErrorTypeSyntax},
		{"trailing text", "Game 1: 3 blue extra", recErrors.ErrorTypeSyntax},
		{"missing count", "Game 1: blue", recErrors.ErrorTypeSyntax},
		{"negative count", "Game 1: -3 blue", recErrors.ErrorTypeSyntax},
		{"tab separator", "Game 1:\t3 blue", recErrors.ErrorTypeSyntax},
		{"blank line between games", "Game 1: 1 red\n\nGame 2: 1 red", recErrors.ErrorTypeSyntax},
		{"two trailing newlines", "Game 1: 1 red\n\n", recErrors.ErrorTypeSyntax},
		{"indented record", "Game 1: 1 red\n  Game 2: 1 red", recErrors.ErrorTypeSyntax},
		{"malformed second record", "Game 1: 1 red\nGame x: 1 red", recErrors.ErrorTypeSyntax},
		{"unknown label", "Game 1: 3 purple", recErrors.ErrorTypeLabel},
		{"capitalized label", "Game 1: 3 Red", recErrors.ErrorTypeLabel},
		{"duplicate label", "Game 1: 3 red, 2 red", recErrors.ErrorTypeDuplicate},
		{"overflowing count", "Game 1: 99999999999999999999999 red", recErrors.ErrorTypeNumeric},
		{"overflowing id", "Game 99999999999999999999999: 1 red", recErrors.ErrorTypeNumeric},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games, err := p.ParseString(tt.input, "memory://test")
			if err == nil {
				t.Fatalf("ParseString(%q) = %+v, want error", tt.input, games)
			}
			if games != nil {
				t.Errorf("ParseString(%q) returned partial result %+v", tt.input, games)
			}

			var perr *recErrors.Error
			if !stderrors.As(err, &perr) {
				t.Fatalf("expected *errors.Error in chain, got %T: %v", err, err)
			}
			if perr.Type != tt.errType {
				t.Errorf("error type = %s, want %s (%v)", perr.Type, tt.errType, err)
			}
		})
	}
}

func TestParser_ErrorLocation(t *testing.T) {
	p := NewParser()
	_, err := p.ParseString("Game 1: 2 red\nGame 2: 3 rde, 1 blue", "games.txt")
	if err == nil {
		t.Fatal("expected error")
	}

	var perr *recErrors.Error
	if !stderrors.As(err, &perr) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}

	want := ast.Location{File: "games.txt", Line: 2, Column: 11}
	if perr.Location != want {
		t.Errorf("Location = %v, want %v", perr.Location, want)
	}
	if perr.Suggestion != "Did you mean 'red'?" {
		t.Errorf("Suggestion = %q", perr.Suggestion)
	}
	if !strings.Contains(perr.Context, "-> 2 | Game 2: 3 rde, 1 blue") {
		t.Errorf("Context = %q", perr.Context)
	}
}

func TestParser_AccumulatesBuildErrors(t *testing.T) {
	p := NewParser()
	_, err := p.ParseString("Game 1: 3 rde\nGame 2: 1 blue, 2 blue\nGame 3: 4 gren", "memory://test")

	errList, ok := err.(*recErrors.ErrorList)
	if !ok {
		t.Fatalf("expected *errors.ErrorList, got %T: %v", err, err)
	}
	if errList.Count() != 3 {
		t.Errorf("Count() = %d, want 3:\n%v", errList.Count(), errList)
	}
	var types []recErrors.ErrorType
	for _, e := range errList.Errors {
		types = append(types, e.Type)
	}
	want := []recErrors.ErrorType{recErrors.ErrorTypeLabel, recErrors.ErrorTypeDuplicate, recErrors.ErrorTypeLabel}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("error types mismatch (-want +got):\n%s", diff)
	}
	if got := errList.Errors[1].Suggestion; got != "List each color at most once per round" {
		t.Errorf("duplicate suggestion = %q", got)
	}
}

func TestParser_ParseGame_RejectsMultipleRecords(t *testing.T) {
	p := NewParser()
	if _, err := p.ParseGame("Game 1: 1 red\nGame 2: 1 red", "memory://test"); err == nil {
		t.Error("ParseGame() accepted two records")
	}
	if _, err := p.ParseGame("Game 1: 1 red\n", "memory://test"); err == nil {
		t.Error("ParseGame() accepted a trailing line break")
	}
}

func TestParser_Parse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.txt")
	if err := os.WriteFile(path, []byte(sampleGames+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	games, err := NewParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(games) != 5 {
		t.Errorf("len(games) = %d, want 5", len(games))
	}
	if games[0].Location.File != path {
		t.Errorf("Location.File = %q, want %q", games[0].Location.File, path)
	}
}

func TestParser_Parse_MissingFile(t *testing.T) {
	_, err := NewParser().Parse(filepath.Join(t.TempDir(), "missing.txt"))

	var perr *recErrors.Error
	if !stderrors.As(err, &perr) || perr.Type != recErrors.ErrorTypeIO {
		t.Fatalf("expected io error, got %v", err)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is(err, os.ErrNotExist) = false")
	}
}

func TestParser_MaxInputSize(t *testing.T) {
	p := NewParser().WithMaxInputSize(10)
	_, err := p.ParseString("Game 1: 1 red, 2 green", "memory://test")

	var perr *recErrors.Error
	if !stderrors.As(err, &perr) || perr.Type != recErrors.ErrorTypeIO {
		t.Fatalf("expected io error for oversize input, got %v", err)
	}

	if _, err := p.ParseGame("Game 1: 1 red, 2 green", "memory://test"); recErrors.TypeOf(err) != recErrors.ErrorTypeIO {
		t.Errorf("ParseGame() over limit: got %v, want io error", err)
	}
	if _, err := p.ParseRound("1 red, 2 green", "memory://test"); recErrors.TypeOf(err) != recErrors.ErrorTypeIO {
		t.Errorf("ParseRound() over limit: got %v, want io error", err)
	}
	if _, err := p.ParseRound("1 red", "memory://test"); err != nil {
		t.Errorf("ParseRound() within limit: %v", err)
	}
	if err := p.CheckSize(10, "memory://test"); err != nil {
		t.Errorf("CheckSize(10) = %v, want nil at the limit", err)
	}

	if NewParser().WithMaxInputSize(0).MaxInputSize() != DefaultMaxInputSize {
		t.Error("WithMaxInputSize(0) should restore the default")
	}
}

func BenchmarkParser_ParseString(b *testing.B) {
	p := NewParser()
	text := strings.Repeat(sampleGames+"\n", 20)
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseString(text, "memory://bench"); err != nil {
			b.Fatal(err)
		}
	}
}
