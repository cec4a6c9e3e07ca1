package player_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

func view(hand []card.Card, playable []card.Card) game.PlayerView {
	return game.PlayerView{
		PublicState: game.PublicState{
			Players:    []string{"me", "left", "right"},
			HandCounts: map[string]int{"me": len(hand), "left": 5, "right": 2},
		},
		PlayerID: "me",
		Hand:     hand,
		Playable: playable,
	}
}

func TestDecide(t *testing.T) {
	redSeven := card.NewNumberCard(color.Red, 7)
	scenarios := []struct {
		description string
		strategy    player.Strategy
		view        func() game.PlayerView
		expected    player.Move
	}{
		{
			description: "plays_a_playable_card",
			strategy:    player.NewNaivePlayer("bot"),
			view:        func() game.PlayerView { return view([]card.Card{redSeven}, []card.Card{redSeven}) },
			expected:    player.Move{Kind: player.PlayMove, Card: redSeven},
		},
		{
			description: "draws_without_playable_cards",
			strategy:    player.NewGoodPlayer("bot"),
			view:        func() game.PlayerView { return view([]card.Card{redSeven}, nil) },
			expected:    player.Move{Kind: player.DrawMove},
		},
		{
			description: "auto_player_draws_first",
			strategy:    player.NewAutoPlayer("me"),
			view:        func() game.PlayerView { return view([]card.Card{redSeven}, []card.Card{redSeven}) },
			expected:    player.Move{Kind: player.DrawMove},
		},
		{
			description: "auto_player_plays_the_drawn_card",
			strategy:    player.NewAutoPlayer("me"),
			view: func() game.PlayerView {
				v := view([]card.Card{redSeven}, []card.Card{redSeven})
				v.HasDrawn = true
				return v
			},
			expected: player.Move{Kind: player.PlayMove, Card: redSeven},
		},
		{
			description: "passes_after_an_unplayable_draw",
			strategy:    player.NewGoodPlayer("bot"),
			view: func() game.PlayerView {
				v := view([]card.Card{redSeven}, nil)
				v.HasDrawn = true
				return v
			},
			expected: player.Move{Kind: player.PassMove},
		},
		{
			description: "picks_the_most_frequent_color",
			strategy:    player.NewGoodPlayer("bot"),
			view: func() game.PlayerView {
				v := view([]card.Card{redSeven, card.NewSkipCard(color.Green), card.NewNumberCard(color.Green, 1)}, nil)
				v.Pending = game.PendingColor
				return v
			},
			expected: player.Move{Kind: player.ColorMove, Color: color.Green},
		},
		{
			description: "targets_the_smallest_hand",
			strategy:    player.NewGoodPlayer("bot"),
			view: func() game.PlayerView {
				v := view([]card.Card{redSeven}, nil)
				v.Pending = game.PendingTarget
				return v
			},
			expected: player.Move{Kind: player.TargetMove, Target: "right"},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, player.Decide(scenario.strategy, scenario.view()))
		})
	}
}

func TestGoodPlayerKeepsOptionsOpen(t *testing.T) {
	blueSkip := card.NewSkipCard(color.Blue)
	redSeven := card.NewNumberCard(color.Red, 7)
	hand := []card.Card{
		blueSkip,
		redSeven,
		card.NewNumberCard(color.Red, 2),
		card.NewNumberCard(color.Red, 4),
	}
	c, ok := player.NewGoodPlayer("bot").Play([]card.Card{blueSkip, redSeven}, view(hand, nil))
	require.True(t, ok)
	require.Equal(t, redSeven, c)
}

func TestColorDefaultsToBlue(t *testing.T) {
	v := view(nil, nil)
	v.Pending = game.PendingColor
	require.Equal(t, color.Blue, player.Decide(player.NewGoodPlayer("bot"), v).Color)
}

func TestBotName(t *testing.T) {
	name := player.BotName(func(string) bool { return false })
	require.NotEmpty(t, name)
	require.Equal(t, "", player.BotName(func(string) bool { return true }))
	require.Equal(t, "Zoe", player.BotName(func(name string) bool { return name != "Zoe" }))
}

func TestBotsFinishAMatch(t *testing.T) {
	ids := []string{"Annie", "Braum", "Caitlyn", "Draven"}
	strategies := map[string]player.Strategy{
		"Annie":   player.NewGoodPlayer("Annie"),
		"Braum":   player.NewNaivePlayer("Braum"),
		"Caitlyn": player.NewAutoPlayer("Caitlyn"),
		"Draven":  player.NewBot("Draven"),
	}
	g, err := game.New("bots", ids,
		game.WithRandom(rand.New(rand.NewSource(11)).Intn),
		game.WithRules(game.Rules{ChooseDrawTarget: true}))
	require.NoError(t, err)
	_, err = g.Begin()
	require.NoError(t, err)

	for move := 0; move < 5000 && g.Status() == game.Running; move++ {
		current := g.Current()
		v, err := g.PlayerView(current)
		require.NoError(t, err)
		_, err = player.Decide(strategies[current], v).Apply(g, current)
		if err == consts.ErrorsDeckExhausted {
			break
		}
		require.NoError(t, err)
	}
	require.NotEqual(t, game.Running, g.Status())
}
