package gamedata

var summonerSpells = map[int]string{
	1:  "summoner_boost.png",
	3:  "summoner_exhaust.png",
	4:  "summoner_flash.png",
	6:  "summoner_haste.png",
	7:  "summoner_heal.png",
	11: "summoner_smite.png",
	12: "summoner_teleport.png",
	13: "summonermana.png",
	14: "summonerignite.png",
	21: "summonerbarrier.png",
	32: "summoner_mark.png",
}

// SpellIconURL returns the icon for a summoner spell id
func SpellIconURL(spellID int) (string, bool) {
	file, ok := summonerSpells[spellID]
	if !ok {
		return "", false
	}
	return SpellIconBaseURL + file, true
}

// Queue ids with special handling
const (
	QueueCustom     = 0
	QueueRankedSolo = 420
	QueueRankedFlex = 440
	QueueARAM       = 450
	GameModeARAM    = "ARAM"
	EmptyItemSlotID = 7050
)

var queueLabels = map[int]string{
	0:    "Custom",
	400:  "Normal Draft",
	420:  "Ranked Solo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	700:  "Clash",
	830:  "Intro Bots",
	840:  "Beginner Bots",
	850:  "Intermediate Bots",
	900:  "ARURF",
	1020: "One for All",
	1400: "Ultimate Spellbook",
}

// QueueLabel returns the display name of a match queue
func QueueLabel(queueID int) (string, bool) {
	label, ok := queueLabels[queueID]
	return label, ok
}

var rankedQueueLabels = map[string]string{
	"RANKED_SOLO_5x5":      "Ranked Solo",
	"RANKED_FLEX_SR":       "Ranked Flex",
	"RANKED_TFT_DOUBLE_UP": "TFT Double-Up",
}

// RankedQueueLabel returns the display name of a league entry's queue type.
// Unknown types are returned unchanged.
func RankedQueueLabel(queueType string) string {
	if label, ok := rankedQueueLabels[queueType]; ok {
		return label
	}
	return queueType
}

// MultiKillLabel names a largest multi-kill. Single kills have no label.
func MultiKillLabel(n int) string {
	switch {
	case n == 2:
		return "Double Kill"
	case n == 3:
		return "Triple Kill"
	case n == 4:
		return "Quadra Kill"
	case n >= 5:
		return "Penta Kill"
	}
	return ""
}
