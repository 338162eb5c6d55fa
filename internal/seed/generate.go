package seed

import (
	"fmt"
	"math/rand/v2"

	"bookcatalog/internal/book"
	"bookcatalog/internal/user"

	"gopkg.in/yaml.v3"
)

var (
	titleWords = []string{"Silent", "Golden", "Hidden", "Broken", "Distant", "Burning", "Frozen", "Secret", "Lost", "Wandering"}
	titleNouns = []string{"River", "Garden", "Empire", "Letters", "Horizon", "Orchard", "Harbor", "Lantern", "Echoes", "Kingdom"}
	firstNames = []string{"Emily", "Benjamin", "Sophia", "William", "Olivia", "James", "Ava", "Lucas", "Mia", "Henry"}
	lastNames  = []string{"Thompson", "Harper", "Anderson", "Grant", "Martinez", "Walker", "Reyes", "Nguyen", "Okafor", "Brennan"}
)

// Generate builds a synthetic catalog of count books and users accounts.
// The same rng state always yields the same catalog.
func Generate(count, users int, rng *rand.Rand) Data {
	data := Data{
		Books: make([]book.Book, 0, count),
		Users: make([]user.User, 0, users),
	}

	for i := 0; i < count; i++ {
		data.Books = append(data.Books, book.Book{
			ID:     i + 1,
			Title:  fmt.Sprintf("The %s %s %d", pick(rng, titleWords), pick(rng, titleNouns), i+1),
			Author: pick(rng, firstNames) + " " + pick(rng, lastNames),
			ISBN:   fmt.Sprintf("%09d", 100000000+i),
		})
	}

	for i := 0; i < users; i++ {
		data.Users = append(data.Users, user.User{
			Username: fmt.Sprintf("user%d", i+1),
			Password: fmt.Sprintf("password%d", i+1),
		})
	}
	return data
}

// Marshal renders data in the seed file format accepted by Parse.
func Marshal(data Data) ([]byte, error) {
	return yaml.Marshal(data)
}

func pick(rng *rand.Rand, words []string) string {
	return words[rng.IntN(len(words))]
}
