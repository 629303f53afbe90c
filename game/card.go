package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Figure is the symbol printed on a country card.
type Figure struct {
	Number int
	Name   string
}

// Card is a country card. Trading three of them grants armies.
type Card struct {
	Country *Country
	Figure  Figure
}

func (c Card) String() string {
	return fmt.Sprintf("%s [%s]", c.Country.Name, c.Figure.Name)
}

// deck is a FIFO queue of cards with a discard pile.
type deck struct {
	cards     []Card
	discarded []Card
}

func (d *deck) shuffle(r Random) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *deck) draw(r Random) (Card, bool) {
	if len(d.cards) == 0 {
		// If no cards left, reshuffle discarded into deck
		if len(d.discarded) == 0 {
			return Card{}, false
		}
		d.cards = append(d.cards, d.discarded...)
		d.discarded = nil
		d.shuffle(r)
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// InitializeDeck replaces the deck with a shuffled copy of cards.
func (g *Game) InitializeDeck(cards []Card) {
	g.deck = deck{cards: append([]Card(nil), cards...)}
	g.deck.shuffle(g.random)
}

// DeckSize returns the number of cards left to draw.
func (g *Game) DeckSize() int {
	return len(g.deck.cards)
}

// DrawCard moves the top card of the deck into p's hand.
func (g *Game) DrawCard(p *Player) (Card, error) {
	if !g.hasPlayer(p) {
		return Card{}, ErrUnknownPlayer
	}
	card, ok := g.deck.draw(g.random)
	if !ok {
		return Card{}, ErrEmptyDeck
	}
	p.hand = append(p.hand, card)
	return card, nil
}

// TradeCards exchanges three cards from p's hand for armies and returns how
// many armies were granted. The cards have to share a figure or all differ.
func (g *Game) TradeCards(p *Player, cards []Card) (int, error) {
	if !g.hasPlayer(p) {
		return 0, ErrUnknownPlayer
	}
	if len(cards) != 3 {
		return 0, fmt.Errorf("%w: got %d", ErrCardCount, len(cards))
	}

	// Resolve every card to a distinct hand index before touching the hand
	used := make(map[int]bool, len(cards))
	for _, card := range cards {
		idx := -1
		for i, held := range p.hand {
			if !used[i] && held == card {
				idx = i
				break
			}
		}
		if idx < 0 {
			return 0, fmt.Errorf("%w: %s", ErrCardNotHeld, card)
		}
		used[idx] = true
	}
	if !isValidSet(cards) {
		return 0, ErrInvalidCardSet
	}

	hand := make([]Card, 0, len(p.hand)-len(cards))
	for i, held := range p.hand {
		if used[i] {
			g.deck.discarded = append(g.deck.discarded, held)
			continue
		}
		hand = append(hand, held)
	}
	armies := g.rules.ArmiesForTrade(p.trades)
	p.hand = hand
	p.trades++

	log.Info().Msgf("%s traded cards for %d armies", p.Name, armies)
	return armies, nil
}

func isValidSet(cards []Card) bool {
	figures := make(map[int]int)
	for _, c := range cards {
		figures[c.Figure.Number]++
	}
	return len(figures) == 1 || len(figures) == len(cards)
}
