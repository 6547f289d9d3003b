package domain

// Challenge is the letter-pair constraint for one round. Both letters are
// uppercase. Regenerated every round.
type Challenge struct {
	FirstLetter     string `json:"firstLetter"`
	LastLetter      string `json:"lastLetter"`
	DifficultyBonus int    `json:"difficultyBonus"`
}
