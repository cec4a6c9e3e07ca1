package state

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
)

type home struct{}

// menu maps everything a player may type on the home screen to a state.
var menu = map[string]consts.StateID{
	"1":      consts.StateJoin,
	"j":      consts.StateJoin,
	"join":   consts.StateJoin,
	"2":      consts.StateCreate,
	"n":      consts.StateCreate,
	"new":    consts.StateCreate,
	"create": consts.StateCreate,
}

func (*home) Next(player *database.Player) (consts.StateID, error) {
	waiting := 0
	for _, room := range database.GetRooms() {
		if room.State == consts.RoomStateWaiting {
			waiting++
		}
	}
	err := player.WriteString(fmt.Sprintf("1.Join (%d rooms waiting)\n2.New\n", waiting))
	if err != nil {
		return 0, player.WriteError(err)
	}
	input, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	next, err := choose(input)
	if err != nil {
		return 0, player.WriteError(err)
	}
	return next, nil
}

// choose reads a home menu entry by number, initial or name.
func choose(input string) (consts.StateID, error) {
	if next, ok := menu[strings.ToLower(strings.TrimSpace(input))]; ok {
		return next, nil
	}
	return 0, consts.ErrorsInputInvalid
}

func (*home) Exit(player *database.Player) consts.StateID {
	return 0
}
