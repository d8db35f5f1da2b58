package consts

const (
	// MinPlayers is the least number of seated players a game can start with.
	MinPlayers = 2
	// MaxPlayers is the seat capacity of a single game.
	MaxPlayers = 4

	// HandSize is the number of tiles dealt to each player.
	HandSize = 7
	// MaxPip is the highest pip value in a double-six set.
	MaxPip = 6
	// SetSize is the number of tiles in a double-six set.
	SetSize = 28
)

type ErrorCode int

const (
	CodeInvalidMove ErrorCode = iota + 1
	CodeNotFound
)

type Error struct {
	Code ErrorCode
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

// InvalidMove reports a rule violation. The message is surfaced verbatim
// to the acting player.
func InvalidMove(msg string) Error {
	return Error{Code: CodeInvalidMove, Msg: msg}
}

// NotFound reports a lookup of an unknown game id.
func NotFound(msg string) Error {
	return Error{Code: CodeNotFound, Msg: msg}
}

// IsInvalidMove reports whether err is a rule-violation error.
func IsInvalidMove(err error) bool {
	e, ok := err.(Error)
	return ok && e.Code == CodeInvalidMove
}

// IsNotFound reports whether err is an unknown-game error.
func IsNotFound(err error) bool {
	e, ok := err.(Error)
	return ok && e.Code == CodeNotFound
}

var (
	ErrorsGameNotFound = NotFound("Game not found. ")
)
