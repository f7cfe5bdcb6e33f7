package stats

import (
	"lolstats/internal/gamedata"
	"lolstats/internal/riot"
)

// RuneCell is one icon in a rune tree; unselected cells render greyed out
type RuneCell struct {
	PerkID   int    `json:"perkId"`
	IconURL  string `json:"iconUrl"`
	Selected bool   `json:"selected"`
}

// RuneTree is a rendered path. Secondary trees have no keystone row.
type RuneTree struct {
	Style int          `json:"style"`
	Tree  string       `json:"tree"`
	Rows  [][]RuneCell `json:"rows"`
}

// RunePage is the build tab's full rune display
type RunePage struct {
	Primary   *RuneTree    `json:"primary,omitempty"`
	Secondary *RuneTree    `json:"secondary,omitempty"`
	Shards    [][]RuneCell `json:"shards"`
}

// BuildRunePage lays out a participant's primary and secondary paths and
// the stat shard grid, marking chosen perks. A path with an unknown style
// is left nil.
func BuildRunePage(perks riot.Perks) RunePage {
	var page RunePage
	if len(perks.Styles) > 0 {
		page.Primary = buildTree(perks.Styles[0], true)
	}
	if len(perks.Styles) > 1 {
		page.Secondary = buildTree(perks.Styles[1], false)
	}

	picks := [3]int{perks.StatPerks.Offense, perks.StatPerks.Flex, perks.StatPerks.Defense}
	for r, row := range gamedata.StatShardGrid {
		page.Shards = append(page.Shards, cells(row[:], map[int]bool{picks[r]: true}))
	}
	return page
}

func buildTree(style riot.PerkStyle, primary bool) *RuneTree {
	layout, ok := gamedata.LayoutForStyle(style.Style)
	if !ok {
		return nil
	}

	selected := make(map[int]bool, len(style.Selections))
	for _, s := range style.Selections {
		selected[s.Perk] = true
	}

	tree := &RuneTree{Style: layout.Style, Tree: string(layout.Tree)}
	if primary {
		tree.Rows = append(tree.Rows, cells(layout.Keystones, selected))
	}
	for _, row := range layout.Rows {
		tree.Rows = append(tree.Rows, cells(row, selected))
	}
	return tree
}

func cells(ids []int, selected map[int]bool) []RuneCell {
	out := make([]RuneCell, 0, len(ids))
	for _, id := range ids {
		url, err := gamedata.RuneIconURL(id)
		if err != nil {
			continue
		}
		out = append(out, RuneCell{PerkID: id, IconURL: url, Selected: selected[id]})
	}
	return out
}
