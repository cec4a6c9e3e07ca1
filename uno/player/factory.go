package player

import (
	"github.com/ratel-online/core/util/rand"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

func NewBot(name string) Strategy {
	return NewGoodPlayer(name)
}

// BotName returns a random bot name not rejected by taken, or "" when every
// name is in use.
func BotName(taken func(name string) bool) string {
	names := make([]string, len(botNames))
	copy(names, botNames)
	for i := len(names) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		names[i], names[j] = names[j], names[i]
	}
	for _, name := range names {
		if !taken(name) {
			return name
		}
	}
	return ""
}
