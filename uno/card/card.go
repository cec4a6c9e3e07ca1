package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Type int

const (
	NormalCard Type = iota
	ActionCard
	WildCard
)

var typeNames = map[Type]string{
	NormalCard: "normal",
	ActionCard: "action",
	WildCard:   "wild",
}

func (t Type) String() string {
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	for k, name := range typeNames {
		if name == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("invalid card type '%s'", text)
}

// Value is a number 0-9 for normal cards or one of the named kinds below.
type Value int

const (
	Skip Value = iota + 10
	Reverse
	DrawTwo
	DrawFour
	ChangeColor
)

var valueNames = map[Value]string{
	Skip:        "skip",
	Reverse:     "reverse",
	DrawTwo:     "draw-two",
	DrawFour:    "draw-four",
	ChangeColor: "change-color",
}

func (v Value) IsNumber() bool {
	return v >= 0 && v <= 9
}

func (v Value) String() string {
	if v.IsNumber() {
		return strconv.Itoa(int(v))
	}
	if name, ok := valueNames[v]; ok {
		return name
	}
	return fmt.Sprintf("value(%d)", int(v))
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := parseValue(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func parseValue(s string) (Value, error) {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 9 {
		return Value(n), nil
	}
	for k, name := range valueNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid card value '%s'", s)
}

// Card is an immutable card value. Wild cards always carry color.None; the
// color chosen when one is played is tracked by the game, not the card.
type Card struct {
	Type  Type        `json:"type"`
	Color color.Color `json:"color"`
	Value Value       `json:"value"`
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{Type: NormalCard, Color: c, Value: Value(number)}
}

func NewSkipCard(c color.Color) Card {
	return Card{Type: ActionCard, Color: c, Value: Skip}
}

func NewReverseCard(c color.Color) Card {
	return Card{Type: ActionCard, Color: c, Value: Reverse}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{Type: ActionCard, Color: c, Value: DrawTwo}
}

func NewWildCard() Card {
	return Card{Type: WildCard, Color: color.None, Value: ChangeColor}
}

func NewWildDrawFourCard() Card {
	return Card{Type: WildCard, Color: color.None, Value: DrawFour}
}

func (c Card) IsWild() bool {
	return c.Type == WildCard
}

// Actions returns the effects of playing c, in resolution order.
func (c Card) Actions() []action.Action {
	switch c.Value {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(2),
		}
	case ChangeColor:
		return []action.Action{action.NewPickColorAction()}
	case DrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(4),
		}
	}
	return []action.Action{}
}

// Name is the plain form accepted by Parse, e.g. "red-7" or "wild-draw-four".
func (c Card) Name() string {
	switch {
	case c.Value == ChangeColor:
		return "wild"
	case c.Value == DrawFour:
		return "wild-draw-four"
	}
	return c.Color.Name() + "-" + c.Value.String()
}

func (c Card) String() string {
	switch c.Value {
	case ChangeColor:
		return "[wild]"
	case DrawFour:
		return "[wild +4]"
	case Skip:
		return c.Color.Paintf("[%s (/)]", c.Color.Name())
	case Reverse:
		return c.Color.Paintf("[%s <=>]", c.Color.Name())
	case DrawTwo:
		return c.Color.Paintf("[%s +2]", c.Color.Name())
	}
	return c.Color.Paintf("[%s %d]", c.Color.Name(), int(c.Value))
}

// Valid reports whether c is one of the card shapes that exist in a deck.
func (c Card) Valid() bool {
	switch c.Type {
	case NormalCard:
		return c.Color.Valid() && c.Value.IsNumber()
	case ActionCard:
		return c.Color.Valid() && (c.Value == Skip || c.Value == Reverse || c.Value == DrawTwo)
	case WildCard:
		return c.Color == color.None && (c.Value == DrawFour || c.Value == ChangeColor)
	}
	return false
}

// Parse reads the Name form of a card: "red-7", "blue-skip", "green-reverse",
// "yellow-draw-two", "wild" or "wild-draw-four". Colors may be abbreviated to
// their initial.
func Parse(s string) (Card, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "wild", "wild-change-color", "change-color":
		return NewWildCard(), nil
	case "wild-draw-four", "draw-four", "+4":
		return NewWildDrawFourCard(), nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("invalid card '%s'", s)
	}
	c, err := color.ByName(parts[0])
	if err != nil {
		return Card{}, err
	}
	v, err := parseValue(parts[1])
	if err != nil {
		return Card{}, err
	}
	card := Card{Type: NormalCard, Color: c, Value: v}
	if !v.IsNumber() {
		card.Type = ActionCard
	}
	if !card.Valid() {
		return Card{}, fmt.Errorf("invalid card '%s'", s)
	}
	return card, nil
}
