package gamedata

import (
	"fmt"
	"strconv"
)

// Asset roots. The community mirror serves the latest art; item icons come
// from a pinned Data Dragon bundle.
const (
	communityDragonV1 = "https://raw.communitydragon.org/latest/plugins/rcp-be-lol-game-data/global/default/v1/"

	ProfileIconBaseURL    = communityDragonV1 + "profile-icons/"
	SpellIconBaseURL      = "https://raw.communitydragon.org/latest/plugins/rcp-be-lol-game-data/global/default/data/spells/icons2d/"
	PerkStyleBaseURL      = communityDragonV1 + "perk-images/styles/"
	StatModBaseURL        = communityDragonV1 + "perk-images/statmods/"
	ChampionIconBaseURL   = communityDragonV1 + "champion-icons/"
	ChampionSplashBaseURL = communityDragonV1 + "champion-splashes/"

	DataDragonVersion = "12.13.1"
	DataDragonImgPath = "/ddragon-" + DataDragonVersion + "/" + DataDragonVersion + "/img"
)

// ParticipantColors gives each participant index a fixed line color. Blue
// team shades come first, then red team shades.
var ParticipantColors = [10]string{
	"#3366FF", "#99FFFF", "#0099FF", "#00CCCC", "#66B2FF",
	"#990000", "#990099", "#FF3399", "#FF9999", "#FF0000",
}

// ProfileIconURL returns the profile icon for an icon id
func ProfileIconURL(iconID int) string {
	return ProfileIconBaseURL + strconv.Itoa(iconID) + ".jpg"
}

// ChampionIconURL returns the square portrait for a champion id
func ChampionIconURL(championID int) string {
	return ChampionIconBaseURL + strconv.Itoa(championID) + ".png"
}

// ChampionSplashURL returns the default skin splash art for a champion id
func ChampionSplashURL(championID int) string {
	return fmt.Sprintf("%s%d/%d.jpg", ChampionSplashBaseURL, championID, championID*1000)
}

// ChampionPortraitURL returns the round portrait used in match rows, keyed
// by the champion's internal name
func ChampionPortraitURL(championName string) string {
	return DataDragonImgPath + "/champion/" + championName + ".png"
}

// ItemIconURL returns the item icon path inside the Data Dragon bundle
func ItemIconURL(itemID int) string {
	return DataDragonImgPath + "/item/" + strconv.Itoa(itemID) + ".png"
}
