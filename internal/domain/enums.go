package domain

import "fmt"

// Visibility is what the player currently sees of a cell.
type Visibility int

const (
	Hidden Visibility = iota
	Revealed
	Flagged
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return fmt.Sprintf("visibility(%d)", int(v))
	}
}

func (v Visibility) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Visibility) UnmarshalText(b []byte) error {
	for _, c := range []Visibility{Hidden, Revealed, Flagged} {
		if c.String() == string(b) {
			*v = c
			return nil
		}
	}
	return fmt.Errorf("unknown visibility %q", b)
}

// Status is the overall game state. Won and Lost are absorbing.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(b []byte) error {
	for _, c := range []Status{Playing, Won, Lost} {
		if c.String() == string(b) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", b)
}

func (s Status) IsPlaying() bool  { return s == Playing }
func (s Status) IsTerminal() bool { return s == Won || s == Lost }

// HintKind tells whether a hinted cell is certainly safe or certainly a mine.
type HintKind int

const (
	HintSafe HintKind = iota
	HintMine
)

func (k HintKind) String() string {
	if k == HintMine {
		return "mine"
	}
	return "safe"
}

func (k HintKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *HintKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "safe":
		*k = HintSafe
	case "mine":
		*k = HintMine
	default:
		return fmt.Errorf("unknown hint kind %q", b)
	}
	return nil
}
