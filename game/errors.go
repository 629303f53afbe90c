package game

import "errors"

// Setup errors
var (
	ErrMapFrozen          = errors.New("map cannot change once a game uses it")
	ErrUnknownContinent   = errors.New("unknown continent")
	ErrUnknownCountry     = errors.New("unknown country")
	ErrDuplicateContinent = errors.New("duplicate continent id")
	ErrDuplicateCountry   = errors.New("duplicate country id")
	ErrNoCountries        = errors.New("countries have not been loaded")
	ErrNoPlayers          = errors.New("players have not been assigned")
	ErrPlayerCount        = errors.New("invalid number of players")
	ErrDuplicatePlayer    = errors.New("duplicate player name")
	ErrInvalidPercent     = errors.New("percentage must be greater than 0 and at most 1")
	ErrEmptyConquest      = errors.New("a conquest objective needs continents to conquer or countries per continent")
)

// Rule violations
var (
	ErrSelfAttack       = errors.New("a country cannot attack itself")
	ErrSamePlayer       = errors.New("a player cannot attack their own country")
	ErrNotAdjacent      = errors.New("countries are not adjacent")
	ErrSingleArmy       = errors.New("cannot attack from a country with only one army")
	ErrDiceNotRolled    = errors.New("both sides must roll dice before the battle is calculated")
	ErrBattleDecided    = errors.New("battle already decided")
	ErrNotOwner         = errors.New("country is not owned by player")
	ErrAlreadyOwned     = errors.New("country already has an owner")
	ErrNotEnoughArmies  = errors.New("not enough armies")
	ErrInvalidArmies    = errors.New("army count must be positive")
	ErrCardCount        = errors.New("exactly three cards must be traded")
	ErrCardNotHeld      = errors.New("card is not in the player's hand")
	ErrInvalidCardSet   = errors.New("cards must share one figure or all differ")
	ErrEmptyDeck        = errors.New("no cards left to draw")
	ErrUnknownPlayer    = errors.New("player is not part of this game")
	ErrInvalidTroops    = errors.New("troop count must be at least one")
	ErrUnownedCountry   = errors.New("country has no owner")
)

// Invariant violations
var (
	ErrNegativeArmies = errors.New("army count would go below zero")
)
