package gamemaster

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"teg/game"
)

const updateBuffer = 16

// Update is published after every resolved battle. Winner and Objective are
// set on the last update of a game.
type Update struct {
	Battle    *game.Battle
	Winner    *game.Player
	Objective game.Objective
}

// UpdateGetter returns the next pending update without blocking. ok is false
// when nothing is pending or the game is over and every update was read.
type UpdateGetter func() (u Update, ok bool)

func (gm *GameMaster) Updates() UpdateGetter {
	return func() (Update, bool) {
		select {
		case u, ok := <-gm.updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

// Attack resolves a battle between two countries given by id and publishes
// the result. Once a player wins the update channel is closed.
func (gm *GameMaster) Attack(fromID, toID, troops int) (*game.Battle, error) {
	if gm.gameOver {
		return nil, ErrGameOver
	}
	from, ok := gm.Game.Map.Country(fromID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", game.ErrUnknownCountry, fromID)
	}
	to, ok := gm.Game.Map.Country(toID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", game.ErrUnknownCountry, toID)
	}

	b, err := gm.Game.Attack(from, to, troops)
	if err != nil {
		return b, err
	}
	log.Info().Msg(b.String())

	u := Update{Battle: b}
	if winner, objective, won := gm.Winner(); won {
		u.Winner, u.Objective = winner, objective
		gm.gameOver = true
	}
	gm.publish(u)
	if gm.gameOver {
		close(gm.updateCh)
	}
	return b, nil
}

// GameOver reports whether a player has won.
func (gm *GameMaster) GameOver() bool {
	return gm.gameOver
}

// publish never blocks. A full buffer loses its oldest update so the newest,
// including the final one, is always delivered.
func (gm *GameMaster) publish(u Update) {
	for {
		select {
		case gm.updateCh <- u:
			return
		default:
		}
		select {
		case old := <-gm.updateCh:
			log.Warn().Msgf("update buffer full, dropping battle %s", old.Battle.ID)
		default:
		}
	}
}
