package redis

// RouletteColor is the color a participant can bet on. "none" means the
// participant has not picked yet; it is never a valid winning color.
type RouletteColor string

const (
	ColorRed   RouletteColor = "red"
	ColorBlack RouletteColor = "black"
	ColorGreen RouletteColor = "green"
	ColorNone  RouletteColor = "none"
)

// IsBettable reports whether the color is one a participant may choose.
func (c RouletteColor) IsBettable() bool {
	return c == ColorRed || c == ColorBlack || c == ColorGreen
}

// Participant holds the per-table state of one joined user.
type Participant struct {
	Name        string        `json:"name"`
	Credits     int           `json:"credits"`
	Bet         int           `json:"bet"`
	ChosenColor RouletteColor `json:"chosenColor"`
}

/*
 * 'Table' is the root document of one roulette room, stored as a single
 * RedisJSON value under "tables:<id>". The JSON tags are the wire format:
 * the same document is broadcast verbatim to clients on every mutation.
 */
type Table struct {
	Id             string                  `json:"id"`
	InitialCredits int                     `json:"initialCredits"`
	MaxBet         int                     `json:"max_bet"`
	Participants   map[string]*Participant `json:"participants"`
	AdminId        string                  `json:"adminID"`
	HasStarted     bool                    `json:"hasStarted"`
}

// NewTable builds the initial document for a freshly created room. The
// creator is the admin but is NOT a participant yet; participants are only
// added when their socket connection is admitted.
func NewTable(id string, initialCredits, maxBet int, adminId string) *Table {
	return &Table{
		Id:             id,
		InitialCredits: initialCredits,
		MaxBet:         maxBet,
		Participants:   make(map[string]*Participant),
		AdminId:        adminId,
		HasStarted:     false,
	}
}

// IsAdmin reports whether the given user id is the table admin. Computed on
// every call against the table value, never cached on a connection.
func (t *Table) IsAdmin(userId string) bool {
	return userId == t.AdminId
}
