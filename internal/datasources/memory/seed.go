package memory

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

// Seed is the document format accepted by LoadSeed.
type Seed struct {
	Articles   []domain.Article         `json:"articles"`
	Challenges []domain.CodingChallenge `json:"challenges"`
}

// LoadSeed decodes a Seed document and puts every entry. The first invalid
// entry aborts the load; entries before it stay loaded.
func (s *Store) LoadSeed(r io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("decoding seed: %w", err)
	}
	for _, a := range seed.Articles {
		if err := s.PutArticle(a); err != nil {
			return fmt.Errorf("seeding article [%s]: %w", a.ID, err)
		}
	}
	for _, c := range seed.Challenges {
		if err := s.PutChallenge(c); err != nil {
			return fmt.Errorf("seeding challenge [%s]: %w", c.ID, err)
		}
	}
	return nil
}
