package tables

import (
	"fmt"

	models "Ruleta/models/redis"
)

/*
 * Pure transition logic for the Table document. Every function validates a
 * command against the current table value and mutates it in place, or
 * returns an *Error and leaves the table untouched. No I/O happens here:
 * callers (the socket.io handlers) fetch the document, run the transition
 * and then patch the store with the same values.
 *
 * Identity rules (who may run which command) are NOT checked here, that is
 * the gateway's job. This package only enforces phase and value-range rules.
 */

// AddParticipant admits a user into the table. Always valid; re-admitting
// the same id just resets that participant to the initial state.
func AddParticipant(t *models.Table, userId, name string) *models.Participant {
	p := &models.Participant{
		Name:        name,
		Credits:     t.InitialCredits,
		Bet:         0,
		ChosenColor: models.ColorNone,
	}
	t.Participants[userId] = p
	return p
}

// RemoveParticipant removes a participant while no round is running.
// While a round is in progress the removal is a deliberate no-op (not an
// error): dropping a participant mid-round would corrupt the settlement, so
// the caller is expected to retry after the round ends. Returns whether the
// table actually changed.
func RemoveParticipant(t *models.Table, userId string) bool {
	if t.HasStarted {
		return false
	}
	if _, ok := t.Participants[userId]; !ok {
		return false
	}
	delete(t.Participants, userId)
	return true
}

// PlaceBet sets a participant's bet for the upcoming round.
func PlaceBet(t *models.Table, userId string, amount int) error {
	if t.HasStarted {
		return ErrInvalidState("cannot place a bet while the round is in progress")
	}
	p, ok := t.Participants[userId]
	if !ok {
		return ErrNotFound(fmt.Sprintf("participant %s is not at the table", userId))
	}
	if amount < 0 {
		return ErrInvalidArgument("bet cannot be negative")
	}
	if amount > t.MaxBet {
		return ErrInvalidArgument(fmt.Sprintf("bet %d exceeds the table maximum of %d", amount, t.MaxBet))
	}
	if amount > p.Credits {
		return ErrInvalidArgument(fmt.Sprintf("bet %d exceeds your %d credits", amount, p.Credits))
	}
	p.Bet = amount
	return nil
}

// ChooseColor sets a participant's color pick for the upcoming round.
func ChooseColor(t *models.Table, userId string, color models.RouletteColor) error {
	if t.HasStarted {
		return ErrInvalidState("cannot choose a color while the round is in progress")
	}
	p, ok := t.Participants[userId]
	if !ok {
		return ErrNotFound(fmt.Sprintf("participant %s is not at the table", userId))
	}
	if !color.IsBettable() {
		return ErrInvalidArgument(fmt.Sprintf("invalid color %q", color))
	}
	p.ChosenColor = color
	return nil
}

// UpdateCredits is the admin's direct balance override. The new balance may
// not undercut the participant's live bet: a balance below the bet would let
// the next losing settlement drive the credits negative.
func UpdateCredits(t *models.Table, userId string, credits int) error {
	p, ok := t.Participants[userId]
	if !ok {
		return ErrNotFound(fmt.Sprintf("participant %s is not at the table", userId))
	}
	if credits < 0 {
		return ErrInvalidArgument("credits cannot be negative")
	}
	if credits < p.Bet {
		return ErrInvalidArgument(
			fmt.Sprintf("credits %d cannot drop below the live bet of %d", credits, p.Bet))
	}
	p.Credits = credits
	return nil
}

// StartRound flips the table into the in-round phase. Every participant must
// have picked a color first; bets of 0 are allowed (a participant can sit a
// round out on a color without staking anything).
func StartRound(t *models.Table) error {
	if t.HasStarted {
		return ErrInvalidState("the round has already started")
	}
	if len(t.Participants) == 0 {
		return ErrPrecondition("cannot start a round with no participants")
	}
	for id, p := range t.Participants {
		if !p.ChosenColor.IsBettable() {
			return ErrPrecondition(fmt.Sprintf("participant %s (%s) has not chosen a color", p.Name, id))
		}
		if p.Bet > p.Credits {
			return ErrPrecondition(fmt.Sprintf("participant %s (%s) has a bet above their credits", p.Name, id))
		}
	}
	t.HasStarted = true
	return nil
}

// Settle ends the round: participants on the winning color gain their bet,
// the rest lose it, and every participant is reset for the next round.
// Credits can never go negative here: PlaceBet caps each bet at the
// participant's balance, StartRound re-verifies bet <= credits, and
// UpdateCredits refuses to drop a balance below the live bet.
func Settle(t *models.Table, winning models.RouletteColor) error {
	if !t.HasStarted {
		return ErrInvalidState("no round in progress to settle")
	}
	if !winning.IsBettable() {
		return ErrInvalidArgument(fmt.Sprintf("invalid winning color %q", winning))
	}
	for _, p := range t.Participants {
		switch p.ChosenColor {
		case winning:
			p.Credits += p.Bet
		case models.ColorNone:
			// never bet this round, only reset below
		default:
			p.Credits -= p.Bet
		}
		p.Bet = 0
		p.ChosenColor = models.ColorNone
	}
	t.HasStarted = false
	return nil
}
