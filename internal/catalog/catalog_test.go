package catalog

import "testing"

func TestLoadValidates(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 26 {
		t.Fatalf("catalog size=%d, want 26", c.Len())
	}

	seen := map[string]bool{}
	for _, card := range c.All() {
		if seen[card.ID] {
			t.Fatalf("duplicate card id %q", card.ID)
		}
		seen[card.ID] = true
		if !card.Rarity.IsValid() {
			t.Fatalf("card %q: invalid rarity %q", card.ID, card.Rarity)
		}
		if card.XPReward < 0 || card.CreditReward < 0 {
			t.Fatalf("card %q: negative reward", card.ID)
		}
	}
}

func TestGet(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	card, ok := c.Get("player-001")
	if !ok {
		t.Fatalf("player-001 missing")
	}
	if card.Name != "Player One" || card.XPReward != 50 || card.CreditReward != 10 {
		t.Fatalf("player-001 data mismatch: %+v", card)
	}

	if _, ok := c.Get("nonexistent-id"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestSecretHintIsMasked(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	konami, _ := c.Get("secret-001")
	if got := konami.HintText(); got != "???" {
		t.Fatalf("secret hint=%q, want ???", got)
	}

	daily, _ := c.Get("daily-003")
	if got := daily.HintText(); got != "Play for 7 consecutive days" {
		t.Fatalf("daily-003 hint=%q", got)
	}
}

func TestSeriesGrouping(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	series := c.Series()
	want := []string{"Player One Series", "High Score Heroes", "Daily Grind", "Genre Guru", "Time Traveler", "Secret Level"}
	if len(series) != len(want) {
		t.Fatalf("series=%v, want %v", series, want)
	}
	for i := range want {
		if series[i] != want[i] {
			t.Fatalf("series[%d]=%q, want %q", i, series[i], want[i])
		}
	}

	if got := len(c.BySeries("Daily Grind")); got != 5 {
		t.Fatalf("Daily Grind size=%d, want 5", got)
	}
}

func TestRarityRankOrder(t *testing.T) {
	order := []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Fatalf("rank(%s) >= rank(%s)", order[i-1], order[i])
		}
	}
	if Rarity("bogus").IsValid() {
		t.Fatalf("bogus rarity reported valid")
	}
}
