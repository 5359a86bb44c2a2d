package domain

// genreVocabulary is the fixed set of genres offered by the dashboard.
var genreVocabulary = []string{
	"Rock",
	"Pop",
	"Jazz",
	"Blues",
	"Classical",
	"Country",
	"Folk",
	"Reggae",
	"Hip Hop",
	"R&B",
	"Soul",
	"Funk",
	"Metal",
	"Punk",
	"Indie",
	"Electronic",
	"Latin",
	"Gospel",
	"World",
	"Alternative",
}

// Genres returns the fixed genre vocabulary.
func Genres() []string {
	out := make([]string, len(genreVocabulary))
	copy(out, genreVocabulary)
	return out
}

// IsKnownGenre reports whether the genre is part of the vocabulary.
func IsKnownGenre(genre string) bool {
	for _, g := range genreVocabulary {
		if g == genre {
			return true
		}
	}
	return false
}

// SkillLevels returns the selectable skill levels for a jam session.
func SkillLevels() []string {
	return []string{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillAllLevels}
}
