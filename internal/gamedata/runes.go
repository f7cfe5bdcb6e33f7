// Package gamedata holds the static lookup tables the dashboard needs to turn
// numeric ids from match documents into labels and asset URLs. All tables are
// package-level and never mutated.
package gamedata

import (
	"errors"
	"fmt"
)

// ErrUnknownPerk is returned for perk ids that are not in the catalog. Callers
// omit the asset instead of failing.
var ErrUnknownPerk = errors.New("unknown perk")

// Tree identifies a rune path
type Tree string

const (
	TreePrecision   Tree = "precision"
	TreeDomination  Tree = "domination"
	TreeSorcery     Tree = "sorcery"
	TreeInspiration Tree = "inspiration"
	TreeResolve     Tree = "resolve"
	TreeStats       Tree = "stats"
)

// Style ids of the five rune paths
const (
	StylePrecision   = 8000
	StyleDomination  = 8100
	StyleSorcery     = 8200
	StyleInspiration = 8300
	StyleResolve     = 8400
)

// Perk is one catalog entry. Key is the image path relative to the style or
// stat-mod asset root.
type Perk struct {
	ID   int
	Tree Tree
	Key  string
}

var perkCatalog = map[int]Perk{
	// Path icons
	StylePrecision:   {StylePrecision, TreePrecision, "7201_precision.png"},
	StyleDomination:  {StyleDomination, TreeDomination, "7200_domination.png"},
	StyleSorcery:     {StyleSorcery, TreeSorcery, "7202_sorcery.png"},
	StyleInspiration: {StyleInspiration, TreeInspiration, "7203_whimsy.png"},
	StyleResolve:     {StyleResolve, TreeResolve, "7204_resolve.png"},

	// Precision
	8005: {8005, TreePrecision, "precision/presstheattack/presstheattack.png"},
	8008: {8008, TreePrecision, "precision/lethaltempo/lethaltempotemp.png"},
	8009: {8009, TreePrecision, "precision/presenceofmind/presenceofmind.png"},
	8010: {8010, TreePrecision, "precision/conqueror/conqueror.png"},
	8014: {8014, TreePrecision, "precision/coupdegrace/coupdegrace.png"},
	8017: {8017, TreePrecision, "precision/cutdown/cutdown.png"},
	8021: {8021, TreePrecision, "precision/fleetfootwork/fleetfootwork.png"},
	9101: {9101, TreePrecision, "precision/overheal.png"},
	9103: {9103, TreePrecision, "precision/legendbloodline/legendbloodline.png"},
	9104: {9104, TreePrecision, "precision/legendalacrity/legendalacrity.png"},
	9105: {9105, TreePrecision, "precision/legendtenacity/legendtenacity.png"},
	9111: {9111, TreePrecision, "precision/triumph.png"},
	// Last Stand moved to precision but its art still lives under sorcery
	8299: {8299, TreePrecision, "sorcery/laststand/laststand.png"},

	// Domination
	8105: {8105, TreeDomination, "domination/relentlesshunter/relentlesshunter.png"},
	8106: {8106, TreeDomination, "domination/ultimatehunter/ultimatehunter.png"},
	8112: {8112, TreeDomination, "domination/electrocute/electrocute.png"},
	8120: {8120, TreeDomination, "domination/ghostporo/ghostporo.png"},
	8124: {8124, TreeDomination, "domination/predator/predator.png"},
	8126: {8126, TreeDomination, "domination/cheapshot/cheapshot.png"},
	8128: {8128, TreeDomination, "domination/darkharvest/darkharvest.png"},
	8134: {8134, TreeDomination, "domination/ingenioushunter/ingenioushunter.png"},
	8135: {8135, TreeDomination, "domination/treasurehunter/treasurehunter.png"},
	8136: {8136, TreeDomination, "domination/zombieward/zombieward.png"},
	8138: {8138, TreeDomination, "domination/eyeballcollection/eyeballcollection.png"},
	8139: {8139, TreeDomination, "domination/tasteofblood/greenterror_tasteofblood.png"},
	8143: {8143, TreeDomination, "domination/suddenimpact/suddenimpact.png"},
	9923: {9923, TreeDomination, "domination/hailofblades/hailofblades.png"},

	// Sorcery
	8210: {8210, TreeSorcery, "sorcery/transcendence/transcendence.png"},
	8214: {8214, TreeSorcery, "sorcery/summonaery/summonaery.png"},
	8224: {8224, TreeSorcery, "sorcery/nullifyingorb/pokeshield.png"},
	8226: {8226, TreeSorcery, "sorcery/manaflowband/manaflowband.png"},
	8229: {8229, TreeSorcery, "sorcery/arcanecomet/arcanecomet.png"},
	8230: {8230, TreeSorcery, "sorcery/phaserush/phaserush.png"},
	8232: {8232, TreeSorcery, "sorcery/waterwalking/waterwalking.png"},
	8233: {8233, TreeSorcery, "sorcery/absolutefocus/absolutefocus.png"},
	8234: {8234, TreeSorcery, "sorcery/celerity/celeritytemp.png"},
	8236: {8236, TreeSorcery, "sorcery/gatheringstorm/gatheringstorm.png"},
	8237: {8237, TreeSorcery, "sorcery/scorch/scorch.png"},
	8275: {8275, TreeSorcery, "sorcery/nimbuscloak/6361.png"},

	// Inspiration
	8304: {8304, TreeInspiration, "inspiration/magicalfootwear/magicalfootwear.png"},
	8306: {8306, TreeInspiration, "inspiration/hextechflashtraption/hextechflashtraption.png"},
	8313: {8313, TreeInspiration, "inspiration/perfecttiming/perfecttiming.png"},
	8316: {8316, TreeInspiration, "inspiration/miniondematerializer/miniondematerializer.png"},
	8321: {8321, TreeInspiration, "inspiration/futuresmarket/futuresmarket.png"},
	8345: {8345, TreeInspiration, "inspiration/biscuitdelivery/biscuitdelivery.png"},
	8347: {8347, TreeInspiration, "inspiration/cosmicinsight/cosmicinsight.png"},
	8351: {8351, TreeInspiration, "inspiration/glacialaugment/glacialaugment.png"},
	8352: {8352, TreeInspiration, "inspiration/timewarptonic/timewarptonic.png"},
	8358: {8358, TreeInspiration, "inspiration/masterkey/masterkey.png"},
	8360: {8360, TreeInspiration, "inspiration/unsealedspellbook/unsealedspellbook.png"},
	8369: {8369, TreeInspiration, "inspiration/firststrike/firststrike.png"},
	8410: {8410, TreeInspiration, "resolve/approachvelocity/approachvelocity.png"},

	// Resolve
	8401: {8401, TreeResolve, "resolve/mirrorshell/mirrorshell.png"},
	8429: {8429, TreeResolve, "resolve/conditioning/conditioning.png"},
	8437: {8437, TreeResolve, "resolve/graspoftheundying/graspoftheundying.png"},
	8439: {8439, TreeResolve, "resolve/veteranaftershock/veteranaftershock.png"},
	8444: {8444, TreeResolve, "resolve/secondwind/secondwind.png"},
	8446: {8446, TreeResolve, "resolve/demolish/demolish.png"},
	8451: {8451, TreeResolve, "resolve/overgrowth/overgrowth.png"},
	8453: {8453, TreeResolve, "resolve/revitalize/revitalize.png"},
	8463: {8463, TreeResolve, "resolve/fontoflife/fontoflife.png"},
	8465: {8465, TreeResolve, "resolve/guardian/guardian.png"},
	8473: {8473, TreeResolve, "resolve/boneplating/boneplating.png"},
	8242: {8242, TreeResolve, "sorcery/unflinching/unflinching.png"},

	// Stat shards
	5001: {5001, TreeStats, "statmodshealthscalingicon.png"},
	5002: {5002, TreeStats, "statmodsarmoricon.png"},
	5003: {5003, TreeStats, "statmodsmagicresicon.magicresist_fix.png"},
	5005: {5005, TreeStats, "statmodsattackspeedicon.png"},
	5007: {5007, TreeStats, "statmodscdrscalingicon.png"},
	5008: {5008, TreeStats, "statmodsadaptiveforceicon.png"},
}

// LookupPerk returns the catalog entry for a perk or style id
func LookupPerk(id int) (Perk, error) {
	p, ok := perkCatalog[id]
	if !ok {
		return Perk{}, fmt.Errorf("%w: %d", ErrUnknownPerk, id)
	}
	return p, nil
}

// ClassifyRune returns the image key for a perk, style or stat shard id
func ClassifyRune(id int) (string, error) {
	p, err := LookupPerk(id)
	if err != nil {
		return "", err
	}
	return p.Key, nil
}

// RuneIconURL returns the full asset URL for a perk, style or stat shard id
func RuneIconURL(id int) (string, error) {
	p, err := LookupPerk(id)
	if err != nil {
		return "", err
	}
	if p.Tree == TreeStats {
		return StatModBaseURL + p.Key, nil
	}
	return PerkStyleBaseURL + p.Key, nil
}

// TreeLayout is the on-screen arrangement of a rune path: one keystone row
// followed by the minor rows. When a path is taken as secondary only the
// minor rows are shown.
type TreeLayout struct {
	Style     int
	Tree      Tree
	Keystones []int
	Rows      [][]int
}

var treeLayouts = map[int]TreeLayout{
	StylePrecision: {
		Style:     StylePrecision,
		Tree:      TreePrecision,
		Keystones: []int{8005, 8008, 8021, 8010},
		Rows:      [][]int{{9101, 9111, 8009}, {9104, 9105, 9103}, {8014, 8017, 8299}},
	},
	StyleDomination: {
		Style:     StyleDomination,
		Tree:      TreeDomination,
		Keystones: []int{8112, 8124, 8128, 9923},
		Rows:      [][]int{{8126, 8139, 8143}, {8136, 8120, 8138}, {8135, 8134, 8105, 8106}},
	},
	StyleSorcery: {
		Style:     StyleSorcery,
		Tree:      TreeSorcery,
		Keystones: []int{8214, 8229, 8230},
		Rows:      [][]int{{8224, 8226, 8275}, {8210, 8234, 8233}, {8237, 8232, 8236}},
	},
	StyleInspiration: {
		Style:     StyleInspiration,
		Tree:      TreeInspiration,
		Keystones: []int{8351, 8360, 8369},
		Rows:      [][]int{{8306, 8304, 8313}, {8321, 8316, 8345}, {8347, 8410, 8352}},
	},
	StyleResolve: {
		Style:     StyleResolve,
		Tree:      TreeResolve,
		Keystones: []int{8437, 8439, 8465},
		Rows:      [][]int{{8446, 8463, 8401}, {8429, 8444, 8473}, {8451, 8453, 8242}},
	},
}

// LayoutForStyle returns the layout of a rune path by style id
func LayoutForStyle(style int) (TreeLayout, bool) {
	l, ok := treeLayouts[style]
	return l, ok
}

// StatShardGrid lists the shard options per row: offense, flex, defense
var StatShardGrid = [3][3]int{
	{5008, 5005, 5007},
	{5008, 5002, 5003},
	{5001, 5002, 5003},
}
