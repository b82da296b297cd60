// Tally parses line-oriented game records and reduces them to a sum.
//
// A record looks like
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// and a game is possible when no round shows more than 12 red, 13 green or
// 14 blue. Tally sums the IDs of the possible games.
//
// Usage:
//
//	# Sum the IDs of possible games
//	tally sum games.txt
//
//	# Per-game report as JSON
//	tally sum games.txt --report --format json
//
//	# Print the parsed records in canonical form
//	tally parse games.txt
//
//	# Re-tally whenever the input changes
//	tally watch games.txt
//
//	# Calibration values, with spelled-out digits
//	tally calibrate calibration.txt --spelled
package main

func main() {
	Execute()
}
