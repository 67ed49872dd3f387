package app

const (
	// HandSize is the number of cards each seat is dealt.
	HandSize = 25
	// KittySize is the number of cards the dealer takes up and buries again.
	KittySize = 8
	// KittyMultiplier scales the buried points the attackers earn by
	// winning the last trick.
	KittyMultiplier = 2
)
