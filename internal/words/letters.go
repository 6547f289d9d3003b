package words

import (
	"math/rand"

	"wordwiz/internal/domain"
)

// letterWeights biases letter selection toward letters that form many words.
// Higher weight means more frequent selection.
var letterWeights = map[string]int{
	"A": 10, "E": 10, "I": 9, "O": 9, "S": 10, "T": 10, "N": 9, "R": 9,
	"L": 8, "D": 8, "C": 7, "H": 7, "M": 7, "U": 7, "P": 7, "G": 7,
	"B": 6, "F": 5, "W": 5, "Y": 5, "V": 4,
	"K": 3, "J": 2, "X": 2,
	"Q": 1, "Z": 1,
}

// goodStartLetters begin many English words; they get a weight boost when
// drawing the first letter.
var goodStartLetters = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "F": true, "G": true,
	"H": true, "I": true, "L": true, "M": true, "N": true, "O": true, "P": true,
	"R": true, "S": true, "T": true, "U": true, "W": true,
}

// goodEndLetters end many English words; they get a weight boost when
// drawing the last letter.
var goodEndLetters = map[string]bool{
	"A": true, "D": true, "E": true, "G": true, "H": true, "K": true,
	"L": true, "N": true, "R": true, "S": true, "T": true, "Y": true,
}

// boostCap limits the favored-letter boost so common letters don't dominate
const boostCap = 12

// weightedLetter draws one letter, boosting favored letters 1.5x up to the
// cap. Callers may pass a nil weights map to use the default table.
func weightedLetter(weights map[string]int, favored map[string]bool) string {
	if weights == nil {
		weights = letterWeights
	}

	total := 0
	for letter, weight := range weights {
		if favored[letter] {
			weight = min(weight+weight/2, boostCap)
		}
		total += weight
	}

	n := rand.Intn(total)
	for letter, weight := range weights {
		if favored[letter] {
			weight = min(weight+weight/2, boostCap)
		}
		n -= weight
		if n < 0 {
			return letter
		}
	}

	// Unreachable: the draw is always within the summed weights
	return "E"
}

// difficultyLevel maps a letter's weight band to a 0-3 difficulty score
func difficultyLevel(letter string) int {
	weight := letterWeights[letter]
	switch {
	case weight >= 9:
		return 0
	case weight >= 7:
		return 1
	case weight >= 4:
		return 2
	default:
		return 3
	}
}

// NewChallenge draws a weighted-random letter pair for a round. The first
// letter favors common word starters; the last letter favors common word
// endings and never draws Q (almost nothing ends in it).
func NewChallenge() *domain.Challenge {
	first := weightedLetter(nil, goodStartLetters)

	endWeights := make(map[string]int, len(letterWeights)-1)
	for letter, weight := range letterWeights {
		if letter == "Q" {
			continue
		}
		endWeights[letter] = weight
	}
	last := weightedLetter(endWeights, goodEndLetters)

	return &domain.Challenge{
		FirstLetter:     first,
		LastLetter:      last,
		DifficultyBonus: difficultyLevel(first) + difficultyLevel(last),
	}
}
