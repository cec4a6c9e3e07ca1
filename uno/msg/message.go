package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return line("First card is %s", card)
}

func (m MessageWriter) HumanPlayerHand(cards []card.Card) string {
	return line("Your cards: %s", cards)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return line("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return line("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return line("It's %s's turn!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return line("%s drew a card!", playerName)
	}
	return line("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return line("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return line("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return line("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return line("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Turn order has been reversed!\n"
}

func (m MessageWriter) DeckReshuffled(deckSize int) string {
	return line("The discard pile was shuffled back into the deck, %d cards left.", deckSize)
}

func (m MessageWriter) MatchAborted(reason string) string {
	return line("Game over without a winner: %s", strings.TrimSpace(reason))
}

func (m MessageWriter) Welcome() string {
	return line(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return line("%s wins!", playerName)
}

func (m MessageWriter) PickColor() string {
	return line(
		"Select a color: %s, %s, %s or %s ?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

// PickTarget lists the other seats by number, starting at 1.
func (m MessageWriter) PickTarget(amount int, names []string) string {
	lines := []string{fmt.Sprintf("Who draws %d cards?", amount)}
	for i, name := range names {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, name))
	}
	return strings.Join(lines, "\n") + "\n"
}

// CardSelection labels every playable card with labels[i].
func (m MessageWriter) CardSelection(labels []string, cards []card.Card, canPass bool) string {
	lines := []string{"Select a card to play:"}
	for i, c := range cards {
		lines = append(lines, fmt.Sprintf("%s %s", labels[i], c))
	}
	if canPass {
		lines = append(lines, "or 'pass' to keep it")
	} else {
		lines = append(lines, "or 'draw' to draw a card")
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m MessageWriter) UnknownColor(input string) string {
	return line("Unknown color '%s'", input)
}

// line formats one newline terminated line of output.
func line(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}
