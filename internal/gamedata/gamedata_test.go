package gamedata

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifyRune(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{8112, "domination/electrocute/electrocute.png"},
		{8000, "7201_precision.png"},
		{9101, "precision/overheal.png"},
		{8275, "sorcery/nimbuscloak/6361.png"},
		{5003, "statmodsmagicresicon.magicresist_fix.png"},
	}
	for _, tt := range tests {
		got, err := ClassifyRune(tt.id)
		if err != nil {
			t.Errorf("ClassifyRune(%d) failed: %v", tt.id, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ClassifyRune(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestClassifyRune_Unknown(t *testing.T) {
	_, err := ClassifyRune(999999)
	if !errors.Is(err, ErrUnknownPerk) {
		t.Errorf("expected ErrUnknownPerk, got %v", err)
	}
	if _, err := RuneIconURL(999999); !errors.Is(err, ErrUnknownPerk) {
		t.Errorf("RuneIconURL: expected ErrUnknownPerk, got %v", err)
	}
}

func TestRuneIconURL_Roots(t *testing.T) {
	perk, err := RuneIconURL(8112)
	if err != nil || !strings.HasPrefix(perk, PerkStyleBaseURL) {
		t.Errorf("perk url = %q, %v", perk, err)
	}
	shard, err := RuneIconURL(5008)
	if err != nil || shard != StatModBaseURL+"statmodsadaptiveforceicon.png" {
		t.Errorf("shard url = %q, %v", shard, err)
	}
}

func TestTreeLayoutsAreInCatalog(t *testing.T) {
	for _, style := range []int{StylePrecision, StyleDomination, StyleSorcery, StyleInspiration, StyleResolve} {
		layout, ok := LayoutForStyle(style)
		if !ok {
			t.Fatalf("no layout for style %d", style)
		}
		if len(layout.Keystones) < 3 || len(layout.Rows) != 3 {
			t.Errorf("style %d: %d keystones, %d rows", style, len(layout.Keystones), len(layout.Rows))
		}

		ids := append([]int{}, layout.Keystones...)
		for _, row := range layout.Rows {
			ids = append(ids, row...)
		}
		for _, id := range ids {
			p, err := LookupPerk(id)
			if err != nil {
				t.Errorf("style %d lists unknown perk %d", style, id)
				continue
			}
			if p.Tree != layout.Tree {
				t.Errorf("perk %d is in %s but laid out under %s", id, p.Tree, layout.Tree)
			}
		}
	}

	if _, ok := LayoutForStyle(1234); ok {
		t.Error("unexpected layout for unknown style")
	}
}

func TestStatShardGrid(t *testing.T) {
	for r, row := range StatShardGrid {
		for _, id := range row {
			p, err := LookupPerk(id)
			if err != nil || p.Tree != TreeStats {
				t.Errorf("row %d: shard %d = %+v, %v", r, id, p, err)
			}
		}
	}
}

func TestLabels(t *testing.T) {
	if got, ok := QueueLabel(420); !ok || got != "Ranked Solo" {
		t.Errorf("QueueLabel(420) = %q, %v", got, ok)
	}
	if got, ok := QueueLabel(1400); !ok || got != "Ultimate Spellbook" {
		t.Errorf("QueueLabel(1400) = %q, %v", got, ok)
	}
	if _, ok := QueueLabel(9999); ok {
		t.Error("QueueLabel(9999) should be unknown")
	}

	if got := RankedQueueLabel("RANKED_FLEX_SR"); got != "Ranked Flex" {
		t.Errorf("RankedQueueLabel = %q", got)
	}
	if got := RankedQueueLabel("CHERRY"); got != "CHERRY" {
		t.Errorf("unknown queue type should pass through, got %q", got)
	}

	multi := map[int]string{0: "", 1: "", 2: "Double Kill", 3: "Triple Kill", 4: "Quadra Kill", 5: "Penta Kill"}
	for n, want := range multi {
		if got := MultiKillLabel(n); got != want {
			t.Errorf("MultiKillLabel(%d) = %q, want %q", n, got, want)
		}
	}

	if url, ok := SpellIconURL(4); !ok || url != SpellIconBaseURL+"summoner_flash.png" {
		t.Errorf("SpellIconURL(4) = %q, %v", url, ok)
	}
	if _, ok := SpellIconURL(99); ok {
		t.Error("SpellIconURL(99) should be unknown")
	}
}

func TestRanks(t *testing.T) {
	if DivisionNumber("III") != "3" || DivisionNumber("") != "" {
		t.Error("DivisionNumber mismatch")
	}
	if TierLabel("GRANDMASTER") != "Grandmaster" || TierLabel("") != "" {
		t.Error("TierLabel mismatch")
	}
	if !IsApexTier("MASTER") || IsApexTier("DIAMOND") {
		t.Error("IsApexTier mismatch")
	}

	tests := []struct {
		name string
		a, b [3]any
		sign int
	}{
		{"higher tier", [3]any{"GOLD", "IV", 0}, [3]any{"SILVER", "I", 99}, 1},
		{"same tier higher division", [3]any{"GOLD", "I", 0}, [3]any{"GOLD", "II", 50}, 1},
		{"lp decides", [3]any{"GOLD", "II", 10}, [3]any{"GOLD", "II", 40}, -1},
		{"equal", [3]any{"MASTER", "I", 12}, [3]any{"MASTER", "I", 12}, 0},
		{"unknown below iron", [3]any{"", "", 0}, [3]any{"IRON", "IV", 0}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareRank(tt.a[0].(string), tt.a[1].(string), tt.a[2].(int),
				tt.b[0].(string), tt.b[1].(string), tt.b[2].(int))
			if sign(got) != tt.sign {
				t.Errorf("CompareRank = %d, want sign %d", got, tt.sign)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func TestItemsAndAssets(t *testing.T) {
	if ItemSlotID(0) != EmptyItemSlotID || ItemSlotID(3031) != 3031 {
		t.Error("ItemSlotID mismatch")
	}
	if !IsCoreItem(3031) || IsCoreItem(1055) || IsCoreItem(0) || IsCoreItem(3340) {
		t.Error("IsCoreItem mismatch")
	}
	if got := ChampionSplashURL(103); got != ChampionSplashBaseURL+"103/103000.jpg" {
		t.Errorf("ChampionSplashURL = %q", got)
	}
	if got := ItemIconURL(7050); got != "/ddragon-12.13.1/12.13.1/img/item/7050.png" {
		t.Errorf("ItemIconURL = %q", got)
	}
	if got := ProfileIconURL(29); got != ProfileIconBaseURL+"29.jpg" {
		t.Errorf("ProfileIconURL = %q", got)
	}
}
