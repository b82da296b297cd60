package ast

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{"green", ColorGreen, false},
		{"blue", ColorBlue, false},
		{"Red", "", true},
		{"yellow", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRound_CountAndWith(t *testing.T) {
	r := Round{}.With(ColorRed, 4).With(ColorBlue, 3)

	if r != (Round{Red: 4, Green: 0, Blue: 3}) {
		t.Fatalf("With() = %+v", r)
	}
	for _, c := range Colors {
		want := map[Color]int{ColorRed: 4, ColorGreen: 0, ColorBlue: 3}[c]
		if got := r.Count(c); got != want {
			t.Errorf("Count(%s) = %d, want %d", c, got, want)
		}
	}
	if got := r.With(Color("pink"), 9); got != r {
		t.Errorf("With(unknown) changed round: %+v", got)
	}
}

func TestGame_MaxRound(t *testing.T) {
	g := Game{
		ID: 3,
		Rounds: []Round{
			{Red: 20, Green: 8, Blue: 6},
			{Red: 4, Green: 13, Blue: 5},
			{Red: 1, Green: 5},
		},
	}

	want := Round{Red: 20, Green: 13, Blue: 6}
	if got := g.MaxRound(); got != want {
		t.Errorf("MaxRound() = %+v, want %+v", got, want)
	}
	if got := (Game{ID: 1}).MaxRound(); got != (Round{}) {
		t.Errorf("MaxRound() of empty game = %+v, want zero", got)
	}
}

func TestLocation_String(t *testing.T) {
	loc := Location{File: "games.txt", Line: 2, Column: 9}
	if loc.String() != "games.txt:2:9" {
		t.Errorf("String() = %q", loc.String())
	}
	if (Location{}).String() != "<unknown>" {
		t.Errorf("String() of empty location = %q", (Location{}).String())
	}
	if (Location{File: "x"}).IsValid() {
		t.Error("location without line should be invalid")
	}
}

func TestRound_String(t *testing.T) {
	tests := []struct {
		round Round
		want  string
	}{
		{Round{}, ""},
		{Round{Blue: 3, Red: 4}, "4 red, 3 blue"},
		{Round{Red: 1, Green: 2, Blue: 6}, "1 red, 2 green, 6 blue"},
		{Round{Green: 2}, "2 green"},
	}

	for _, tt := range tests {
		if got := tt.round.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.round, got, tt.want)
		}
	}
}

func TestGame_String(t *testing.T) {
	g := Game{ID: 7, Rounds: []Round{{Red: 4, Blue: 3}, {}, {Green: 2}}}
	want := "Game 7: 4 red, 3 blue; ; 2 green"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
