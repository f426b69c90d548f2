package deck

import (
	"fmt"
	"math/rand"
	"strings"
)

// #region positions

// Position names a slot in a spread and what that slot asks of the card.
type Position struct {
	Name    string
	Meaning string
}

// ThreeCard is the default spread: present ground, what moves, what lies
// ahead.
var ThreeCard = []Position{
	{Name: "ANCHOR", Meaning: "The present situation, what grounds you."},
	{Name: "TIDE", Meaning: "The changing influences, what's in flux."},
	{Name: "HORIZON", Meaning: "The long-term outlook, what's ahead."},
}

// #endregion positions

// #region spread

// PlacedCard pairs a drawn card with its spread position.
type PlacedCard struct {
	Position Position
	Card     Card
}

// Spread is a dealt reading: positions filled in order.
type Spread struct {
	Query  string
	Placed []PlacedCard
}

// Deal shuffles the deck and fills each position, deciding orientation per
// card with a coin flip from rng.
func Deal(d *Deck, rng *rand.Rand, positions []Position, query string) (*Spread, error) {
	d.Shuffle()
	cards, err := d.Draw(len(positions))
	if err != nil {
		return nil, fmt.Errorf("deal spread: %w", err)
	}
	placed := make([]PlacedCard, len(positions))
	for i, card := range cards {
		card.Reversed = rng.Float64() < 0.5
		placed[i] = PlacedCard{Position: positions[i], Card: card}
	}
	return &Spread{Query: query, Placed: placed}, nil
}

// CardIDs returns the placed card identifiers in position order.
func (s *Spread) CardIDs() []string {
	ids := make([]string, len(s.Placed))
	for i, p := range s.Placed {
		ids[i] = p.Card.ID()
	}
	return ids
}

// Describe renders the spread as a text block, one position per stanza.
func (s *Spread) Describe() string {
	var b strings.Builder
	for _, p := range s.Placed {
		fmt.Fprintf(&b, "%s: %s\n", p.Position.Name, p.Card.ID())
		fmt.Fprintf(&b, "  %s\n", p.Position.Meaning)
		if m := p.Card.Meaning(); m != "" {
			fmt.Fprintf(&b, "  %s\n", m)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// #endregion spread
