package entity

// Rank призовое место билета.
type Rank int

const (
	Miss Rank = iota
	Fifth
	Fourth
	Third
	Second
	First
)

// RankOf определяет место по числу совпадений. Бонус учитывается только
// при пяти совпадениях.
func RankOf(matchCount int, bonusMatched bool) Rank {
	switch {
	case matchCount == TicketSize:
		return First
	case matchCount == 5 && bonusMatched:
		return Second
	case matchCount == 5:
		return Third
	case matchCount == 4:
		return Fourth
	case matchCount == 3:
		return Fifth
	default:
		return Miss
	}
}

// Ranks порядок вывода: от младшего приза к старшему, проигрыш последним.
func Ranks() []Rank {
	return []Rank{Fifth, Fourth, Third, Second, First, Miss}
}

// MatchCount число совпадений, необходимое для места.
func (r Rank) MatchCount() int {
	switch r {
	case First:
		return 6
	case Second, Third:
		return 5
	case Fourth:
		return 4
	case Fifth:
		return 3
	default:
		return 0
	}
}

func (r Rank) String() string {
	switch r {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	case Fourth:
		return "fourth"
	case Fifth:
		return "fifth"
	default:
		return "miss"
	}
}
