package game

const (
	CounterClockwise = -1
	Clockwise        = 1
)

// Cycler is a fixed ring of seats. Reversing flips the direction flag and
// never reorders the ring.
type Cycler struct {
	elements  []string
	current   int
	direction int
}

func NewCycler(elements []string) *Cycler {
	return &Cycler{
		elements:  elements,
		current:   len(elements) - 1,
		direction: Clockwise,
	}
}

func (c *Cycler) Current() string {
	return c.elements[c.current]
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Len() int {
	return len(c.elements)
}

func (c *Cycler) Elements() []string {
	elements := make([]string, len(c.elements))
	copy(elements, c.elements)
	return elements
}

func (c *Cycler) ForEach(function func(string)) {
	for _, element := range c.elements {
		function(element)
	}
}

func (c *Cycler) Contains(element string) bool {
	for _, e := range c.elements {
		if e == element {
			return true
		}
	}
	return false
}

// Peek returns the seat offset positions away in the current direction
// without moving.
func (c *Cycler) Peek(offset int) string {
	return c.elements[c.index(offset)]
}

// Advance moves seats positions in the current direction.
func (c *Cycler) Advance(seats int) string {
	c.current = c.index(seats)
	return c.elements[c.current]
}

func (c *Cycler) Next() string {
	return c.Advance(1)
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case Clockwise:
		c.direction = CounterClockwise
	case CounterClockwise:
		c.direction = Clockwise
	}
}

func (c *Cycler) index(offset int) int {
	elementCount := len(c.elements)
	return ((c.current+offset*c.direction)%elementCount + elementCount) % elementCount
}
