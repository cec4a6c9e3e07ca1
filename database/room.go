package database

import (
	"fmt"
	"sort"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/sasha-s/go-deadlock"
)

type Room struct {
	deadlock.Mutex

	ID         int64      `json:"id"`
	UnoGame    *UnoGame   `json:"-"`
	State      int        `json:"state"`
	Players    int        `json:"players"`
	Robots     []string   `json:"robots"`
	Creator    int64      `json:"creator"`
	ActiveTime time.Time  `json:"activeTime"`
	MaxPlayers int        `json:"maxPlayers"`
	Password   string     `json:"-"`
	EnableChat bool       `json:"enableChat"`
	Rules      game.Rules `json:"rules"`
}

// Seats counts people and robots.
func (room *Room) Seats() int {
	return room.Players + len(room.Robots)
}

// RoomSummary is the public view of a room served by the status api.
type RoomSummary struct {
	ID         int64             `json:"id"`
	State      string            `json:"state"`
	Players    []string          `json:"players"`
	Robots     []string          `json:"robots"`
	MaxPlayers int               `json:"maxPlayers"`
	Locked     bool              `json:"locked"`
	Rules      game.Rules        `json:"rules"`
	Match      *game.PublicState `json:"match,omitempty"`
}

func (room *Room) Summary() RoomSummary {
	room.Lock()
	defer room.Unlock()
	summary := RoomSummary{
		ID:         room.ID,
		State:      consts.RoomStates[room.State],
		Players:    make([]string, 0, room.Players),
		Robots:     append([]string{}, room.Robots...),
		MaxPlayers: room.MaxPlayers,
		Locked:     room.Password != "",
		Rules:      room.Rules,
	}
	for _, id := range room.playerIDs() {
		if player := getPlayer(id); player != nil {
			summary.Players = append(summary.Players, player.Name)
		}
	}
	if room.UnoGame != nil {
		state := room.UnoGame.Game.PublicState()
		summary.Match = &state
	}
	return summary
}

func (room *Room) playerIDs() []int64 {
	ids := make([]int64, 0)
	for id := range getRoomPlayers(room.ID) {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AddRobot seats a bot named name. Only the creator calls it, while waiting.
func (room *Room) AddRobot(name string) error {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Seats() >= room.MaxPlayers || len(room.Robots) >= consts.RoomPropsRobotsMaxPerRoom {
		return consts.ErrorsRoomPlayersIsFull
	}
	room.Robots = append(room.Robots, name)
	room.ActiveTime = time.Now()
	return nil
}

func (room *Room) HasRobot(name string) bool {
	for _, robot := range room.Robots {
		if robot == name {
			return true
		}
	}
	return false
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.ActiveTime = time.Now()
	playersIds := getRoomPlayers(room.ID)
	if _, ok := playersIds[player.ID]; ok {
		room.Players--
		player.RoomID = 0
		delete(playersIds, player.ID)
		if len(playersIds) > 0 && room.Creator == player.ID {
			room.Creator = room.playerIDs()[0]
		}
	}
	if len(playersIds) == 0 {
		room.delete()
	}
}

// Cancel deletes the room when it idled for consts.RoomIdleTTL or nobody in
// it is online. The caller holds the room lock.
func (room *Room) Cancel() {
	if room.ActiveTime.Add(consts.RoomIdleTTL).Before(time.Now()) {
		log.Infof("room %d is timeout %s, removed.\n", room.ID, consts.RoomIdleTTL)
		room.delete()
		return
	}
	living := false
	for id := range getRoomPlayers(room.ID) {
		if player := getPlayer(id); player != nil && player.online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for playerId := range getRoomPlayers(room.ID) {
		if player := getPlayer(playerId); player != nil && player.online && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		room.UnoGame.delete()
		log.Infof("room %d deleted\n", room.ID)
	}
}

// SetRoomProps applies a "set <key> <value>" command of the room creator.
func SetRoomProps(room *Room, key, val string) error {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	on := val == "on"
	if !on && val != "off" && key != consts.RoomPropsPassword && key != consts.RoomPropsPlayerNum {
		return consts.ErrorsInputInvalid
	}
	switch key {
	case consts.RoomPropsPassword:
		if val == "off" {
			val = ""
		}
		room.Password = val
	case consts.RoomPropsPlayerNum:
		var num int
		if _, err := fmt.Sscanf(val, "%d", &num); err != nil || num < consts.MinPlayers || num > consts.MaxPlayers || num < room.Seats() {
			return consts.ErrorsInputInvalid
		}
		room.MaxPlayers = num
	case consts.RoomPropsChat:
		room.EnableChat = on
	case consts.RoomPropsDrawTarget:
		room.Rules.ChooseDrawTarget = on
	case consts.RoomPropsReverseSkips:
		room.Rules.TwoPlayerReverseSkips = on
	default:
		return consts.ErrorsInputInvalid
	}
	room.ActiveTime = time.Now()
	return nil
}
