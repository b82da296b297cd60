// Package ast provides the in-memory representation of parsed game records.
//
// A record such as
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// becomes a Game with ID 1 and three Rounds. Every Round has exactly three
// counts (red, green, blue); a color that does not appear in the source round
// is zero. The order in which colors are written within a round has no effect
// on the resulting value.
//
// # Core Types
//
// Game: one record, an identifier plus its rounds in source order
//
// Round: the counts drawn in one sampling event
//
// Color: one of the three category labels
//
// Location: source location (file, line, column) for diagnostics
//
// Values are built once by the parser and are not mutated afterwards.
package ast
