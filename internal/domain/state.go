package domain

// Phase represents the lifecycle stage of a round.
type Phase string

const (
	// PhaseKitty is the stage where the dealer swaps cards with the kitty.
	PhaseKitty Phase = "kitty"
	// PhasePlaying is the trick-taking stage.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after the last trick.
	PhaseEnded Phase = "ended"
)

// Seats is the number of players at the table.
const Seats = 4

// Player holds one seat's state for a round.
type Player struct {
	UserID string
	Seat   int // 0-based; seats 0/2 and 1/3 are partners
	Hand   []Card
}

// Round is the authoritative state of one dealt round.
type Round struct {
	ID      string
	Phase   Phase
	Trump   TrumpInfo
	Players map[string]*Player // userId -> player
	Seats   [Seats]string      // index 0..3 => userId

	DealerSeat int
	TurnSeat   int
	Kitty      []Card

	Trick     Trick   // trick in progress; no plays between tricks
	Completed []Trick // finished tricks in order

	AttackerPoints int
}

// Partner returns the seat across the table.
func Partner(seat int) int {
	return (seat + 2) % Seats
}

// NextSeat returns the seat that plays after the given one.
func NextSeat(seat int) int {
	return (seat + 1) % Seats
}

// IsDefender reports whether the seat sits on the dealer's side.
func (r *Round) IsDefender(seat int) bool {
	return seat == r.DealerSeat || seat == Partner(r.DealerSeat)
}

// PlayerAt returns the player sitting at the seat, or nil.
func (r *Round) PlayerAt(seat int) *Player {
	if seat < 0 || seat >= Seats {
		return nil
	}
	return r.Players[r.Seats[seat]]
}

// Opponents lists the user IDs of the two players on the other side.
func (r *Round) Opponents(userID string) []string {
	p, ok := r.Players[userID]
	if !ok {
		return nil
	}
	return []string{r.Seats[NextSeat(p.Seat)], r.Seats[NextSeat(Partner(p.Seat))]}
}

// LowestAvailableSeat returns the first empty seat index, or -1 when full.
func LowestAvailableSeat(seats *[Seats]string) int {
	for i := 0; i < Seats; i++ {
		if seats[i] == "" {
			return i
		}
	}
	return -1
}
