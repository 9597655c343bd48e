package dropoff

import (
	"math"
	"regexp"
)

// CalcEdgeDist rounds the euclidean distance between every pair of coordinates to
// two decimals.
func CalcEdgeDist(coordinates [][]float64) [][]float64 {
	n := len(coordinates)
	result := make([][]float64, n)
	for node := 0; node < n; node++ {
		result[node] = make([]float64, n)
		for node2 := 0; node2 < node; node2++ {
			xDist := coordinates[node][0] - coordinates[node2][0]
			yDist := coordinates[node][1] - coordinates[node2][1]
			distance := math.Round(math.Sqrt(math.Pow(xDist, 2)+math.Pow(yDist, 2))*100) / 100
			result[node][node2] = distance
			result[node2][node] = distance
		}
	}
	return result
}

const jsonCell = `(-?[0-9]+(?:\.[0-9]+)?(?:e[-+]?[0-9]+)?|"x")`

var (
	numbers  = regexp.MustCompile(`\s*` + jsonCell + `,\s+` + jsonCell + `(,)?`)
	brackets = regexp.MustCompile(`\[((` + jsonCell + `,)+` + jsonCell + `)\s+\](,?)(\s+)`)
)

// SanitizeJsonArrayLineBreaks puts arrays of numbers and "x" cells on one line.
func SanitizeJsonArrayLineBreaks(json string) string {
	res := json
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$2$3")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
