package gamemath

// Contact is the outcome of classifying a character/enemy pair.
type Contact int

const (
	ContactNone Contact = iota
	ContactStomp
	ContactSide
)

func (c Contact) String() string {
	switch c {
	case ContactStomp:
		return "stomp"
	case ContactSide:
		return "side"
	}
	return "none"
}

// ContactRule holds the overlap thresholds for one enemy size class, as
// fractions of the enemy hitbox.
type ContactRule struct {
	MinHorizontalOverlap float64
	MinVerticalOverlap   float64
}

// ClassifyContact decides between stomp, side-hit and nothing. velY uses the
// screen convention: positive is downward, so velY >= 0 means falling or level.
func ClassifyContact(char, enemy Box, velY float64, rule ContactRule) Contact {
	if !Overlaps(char, enemy) {
		return ContactNone
	}
	if HorizontalOverlap(char, enemy) <= rule.MinHorizontalOverlap*enemy.Width() {
		return ContactNone
	}

	feet := char.Bottom()
	middle := (enemy.Top() + enemy.Bottom()) / 2

	if feet < middle {
		if velY >= 0 {
			return ContactStomp
		}
		return ContactNone
	}
	if VerticalOverlap(char, enemy) > rule.MinVerticalOverlap*enemy.Height() {
		return ContactSide
	}
	return ContactNone
}
