// Package gamerec parses game records and aggregates them.
//
// A game record is one line of the form
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// # Architecture
//
// The package is organized into subpackages:
//
// - ast: Game, Round and Color definitions
// - parser: grammar and AST construction
// - validator: limit checks and aggregation
// - errors: rich error types with location and suggestions
//
// # Basic Usage
//
//	sum, err := gamerec.ParseAndSumFile("games.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sum)
package gamerec
