package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateUnoGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 10
	HandSize   = 7

	RoomStateWaiting = 1
	RoomStateRunning = 2

	AuthTimeout = 3 * time.Second
	PlayTimeout = 40 * time.Second
	RoomIdleTTL = 24 * time.Hour
)

// Room properties.
const (
	RoomPropsPassword         = "pwd"
	RoomPropsPlayerNum        = "pn"
	RoomPropsChat             = "ct"
	RoomPropsDrawTarget       = "dt"
	RoomPropsReverseSkips     = "rs"
	RoomPropsRobots           = "rb"
	RoomPropsRobotsMaxPerRoom = 9
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsChatUnopened           = NewErr(1, false, "Chat disabled. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is fill. ")
	ErrorsRoomPassword           = NewErr(1, false, "Sorry! Password incorrect! ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")

	ErrorsNotYourTurn        = NewErr(20, false, "It's not your turn. ")
	ErrorsIllegalMove        = NewErr(21, false, "Illegal move. ")
	ErrorsInvalidColor       = NewErr(22, false, "Invalid color, choose red, yellow, green or blue. ")
	ErrorsNotAwaitingColor   = NewErr(23, false, "No color choice is pending. ")
	ErrorsNotAwaitingTarget  = NewErr(24, false, "No draw target choice is pending. ")
	ErrorsInvalidTarget      = NewErr(25, false, "Invalid draw target. ")
	ErrorsAlreadyDrew        = NewErr(26, false, "You already drew this turn. ")
	ErrorsMustDrawFirst      = NewErr(27, false, "You have to draw before passing. ")
	ErrorsUnknownPlayer      = NewErr(28, false, "Unknown player. ")
	ErrorsMatchNotStarted    = NewErr(29, false, "Match not started. ")
	ErrorsMatchStarted       = NewErr(30, false, "Match already started. ")
	ErrorsMatchOver          = NewErr(31, true, "Match is over. ")
	ErrorsDeckExhausted      = NewErr(32, true, "No cards left to draw, match ends without a winner. ")
	ErrorsGamePlayersInvalid = NewErr(33, false, "Game players invalid. ")

	RoomStates = map[int]string{
		RoomStateWaiting: "Waiting",
		RoomStateRunning: "Running",
	}
)
