// Package deck models the card deck and spread drawing. The homeostat hands
// a query string over once emergence is sustained; this package owns what
// happens on the table.
package deck

import (
	"fmt"
	"math/rand"
	"strings"
)

// #region card

// Suit identifies a minor-arcana suit, or Major for trumps.
type Suit string

const (
	Major     Suit = "major"
	Wands     Suit = "wands"
	Swords    Suit = "swords"
	Cups      Suit = "cups"
	Pentacles Suit = "pentacles"
)

// Title renders the suit with a leading capital.
func (s Suit) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Card is one card as drawn: identity plus orientation.
type Card struct {
	Name     string
	Suit     Suit
	Reversed bool
}

// ID returns a stable identifier for the card including orientation.
func (c Card) ID() string {
	if c.Reversed {
		return c.Name + " (reversed)"
	}
	return c.Name
}

// Meaning returns the card's keyword meaning. A reversed card negates the
// upright keywords, alternating "no" and "lacking" deterministically.
func (c Card) Meaning() string {
	keywords, ok := meanings[c.Name]
	if !ok {
		return ""
	}
	if !c.Reversed {
		return keywords
	}
	parts := strings.Split(keywords, ", ")
	negated := make([]string, len(parts))
	for i, kw := range parts {
		if i%2 == 0 {
			negated[i] = "no " + kw
		} else {
			negated[i] = "lacking " + kw
		}
	}
	return strings.Join(negated, ", ")
}

// #endregion card

// #region deck

var majorArcana = []string{
	"The Fool", "The Magician", "The High Priestess", "The Empress",
	"The Emperor", "The Hierophant", "The Lovers", "The Chariot",
	"Justice", "The Hermit", "The Wheel of Fortune", "Strength",
	"The Hanged Man", "Death", "Temperance", "The Devil",
	"The Tower", "The Star", "The Moon", "The Sun",
	"Judgement", "The World",
}

var suits = []Suit{Wands, Swords, Cups, Pentacles}

var ranks = []string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Page", "Knight", "Queen", "King",
}

// Deck is a full 78-card deck. Cards leave the deck when drawn; a new deck
// is built per reading.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New builds an ordered full deck drawing randomness from rng.
func New(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, len(majorArcana)+len(suits)*len(ranks))
	for _, name := range majorArcana {
		cards = append(cards, Card{Name: name, Suit: Major})
	}
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, Card{
				Name: fmt.Sprintf("%s of %s", rank, suit.Title()),
				Suit: suit,
			})
		}
	}
	return &Deck{cards: cards, rng: rng}
}

// Remaining reports how many cards are left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Shuffle permutes the remaining cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns n cards from the top. Drawing past the end of
// the deck is an error.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("deck exhausted: tried to draw %d of %d remaining", n, len(d.cards))
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// #endregion deck
