// Package calibration recovers calibration values from lines of text.
//
// Each line's value is the two-digit number formed by its first and last
// digit. In SpelledDigits mode the words "one" to "nine" count as digits too,
// and overlapping words are each recognized.
//
//	v, _ := calibration.LineValue("a1b2c3d4e5f", calibration.DigitsOnly)     // 15
//	v, _ = calibration.LineValue("xtwone3four", calibration.SpelledDigits)   // 24
package calibration
