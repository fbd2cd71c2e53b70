package constants

// Routes used by the backend router
const (
	RouteAPIPrefix          = "/api"
	RouteFactions           = "/factions"
	RouteFactionByKey       = "/factions/:factionKey"
	RouteAbilities          = "/abilities"
	RouteMatch              = "/match"
	RouteMatchMove          = "/match/move"
	RouteMatchAttack        = "/match/attack"
	RouteMatchAbility       = "/match/ability"
	RouteMatchEndTurn       = "/match/end-turn"
	RouteUnitMoves          = "/match/units/:unitID/moves"
	RouteUnitAttacks        = "/match/units/:unitID/attacks"
	RouteUnitAbilityTargets = "/match/units/:unitID/ability-targets"
	RouteUnitEffects        = "/match/units/:unitID/effects"
	RouteVersion            = "/version"
	RouteHealth             = "/healthz"
	RouteStream             = "/ws"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyStatus = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrFactionNotFound    = "Faction not found"
	ErrFailedFetchCatalog = "Failed to fetch factions"
	ErrFailedSaveFaction  = "Failed to save faction"
	ErrFactionNameLength  = "Faction name exceeds 64 characters"

	ErrInvalidUnitID     = "Invalid unit ID"
	ErrNoMatch           = "No match in progress"
	ErrMatchFinished     = "Match is already finished"
	ErrUnitNotFound      = "Unit not found"
	ErrWrongFaction      = "Unit does not belong to the active faction"
	ErrFailedCreateMatch = "Failed to create match"
	ErrActionFailed      = "Failed to apply action"
)

// Logging field names
const (
	LogFieldMatchID = "match_id"
	LogFieldFaction = "faction"
	LogFieldTurn    = "turn"
	LogFieldWinner  = "winner"
	LogFieldAddr    = "addr"
)
