// Package validator checks parsed games against the fixed bag limits and
// reduces them to a single number.
//
// A game is possible when every one of its rounds draws at most 12 red,
// 13 green and 14 blue. A game with no rounds is possible. Sum adds up the
// IDs of the possible games.
//
// # Basic Usage
//
//	games, err := parser.NewParser().Parse("games.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v := validator.NewValidator()
//	fmt.Println(v.Sum(games))
//
// Inspect why a game is impossible:
//
//	for _, violation := range v.Check(game) {
//	    fmt.Println(violation)
//	}
//
// Report combines both, keeping the input order of games.
//
// The limits are fixed and not configurable.
package validator
