package state

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	unoplayer "github.com/ratel-online/uno/uno/player"
)

type waiting struct{}

func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StateUnoGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		isOwner := room.Creator == player.ID
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Seats()))
		if newOwner := database.GetPlayer(room.Creator); isOwner && newOwner != nil && newOwner.ID != player.ID {
			database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
		}
	}
	return consts.StateHome
}

func waitingForStart(player *database.Player, room *database.Room) (bool, error) {
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err != nil && err != consts.ErrorsTimeout {
			return false, err
		}
		if room.State == consts.RoomStateRunning {
			return true, nil
		}
		signal = strings.TrimSpace(signal)
		lower := strings.ToLower(signal)
		owner := room.Creator == player.ID
		switch {
		case isLs(lower):
			viewRoomPlayers(room, player)
		case (lower == "start" || lower == "s") && owner:
			if err = startMatch(room); err != nil {
				_ = player.WriteError(err)
				continue
			}
			return true, nil
		case (lower == "robot" || lower == "r") && owner:
			name := unoplayer.BotName(room.HasRobot)
			if name == "" {
				_ = player.WriteError(consts.ErrorsRoomPlayersIsFull)
				continue
			}
			if err = room.AddRobot(name); err != nil {
				_ = player.WriteError(err)
				continue
			}
			database.Broadcast(room.ID, fmt.Sprintf("robot %s joined room! room current has %d players\n", name, room.Seats()))
		case strings.HasPrefix(lower, "set ") && owner:
			tags := strings.Fields(signal)
			if len(tags) == 3 {
				if err = database.SetRoomProps(room, strings.ToLower(tags[1]), tags[2]); err != nil {
					_ = player.WriteError(err)
				} else {
					viewRoomPlayers(room, player)
				}
				continue
			}
			database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		case len(signal) > 0:
			database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		}
	}
}

// startMatch deals a new match and hands the first turn out.
func startMatch(room *database.Room) error {
	room.Lock()
	if room.State == consts.RoomStateRunning {
		room.Unlock()
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Seats() < consts.MinPlayers {
		room.Unlock()
		return consts.ErrorsGamePlayersInvalid
	}
	ug, _, err := database.NewUnoGame(room)
	if err != nil {
		room.Unlock()
		return err
	}
	room.UnoGame = ug
	room.State = consts.RoomStateRunning
	room.Unlock()
	ug.Dispatch()
	return nil
}

func viewRoomPlayers(room *database.Room, currPlayer *database.Player) {
	buf := bytes.Buffer{}

	buf.WriteString(fmt.Sprintf("Room ID: %d\n", room.ID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for playerId := range database.RoomPlayers(room.ID) {
		title := "player"
		if playerId == room.Creator {
			title = "owner"
		}
		if player := database.GetPlayer(playerId); player != nil {
			buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", player.Name, player.Score, title))
		}
	}
	for _, robot := range room.Robots {
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", robot, 0, "robot"))
	}
	buf.WriteString("\nSettings:\n")
	buf.WriteString(fmt.Sprintf("%-5s%-5v%-5s%-5v\n", "pn:", fmt.Sprintf("%d,", room.MaxPlayers), "ct:", sprintPropsState(room.EnableChat)))
	buf.WriteString(fmt.Sprintf("%-5s%-5v%-5s%-5v\n", "dt:", sprintPropsState(room.Rules.ChooseDrawTarget)+",", "rs:", sprintPropsState(room.Rules.TwoPlayerReverseSkips)))
	pwd := room.Password
	if pwd != "" {
		if room.Creator != currPlayer.ID {
			pwd = "********"
		}
	} else {
		pwd = "off"
	}
	buf.WriteString(fmt.Sprintf("%-5s%-20v\n", "pwd:", pwd))
	_ = currPlayer.WriteString(buf.String())
}

func sprintPropsState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
