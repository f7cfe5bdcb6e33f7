package riot

import "strconv"

// Summoner represents the response from /lol/summoner/v4/summoners
type Summoner struct {
	ID            string `json:"id"` // encrypted summoner id
	AccountID     string `json:"accountId,omitempty"`
	PUUID         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry represents a ranked league entry from /lol/league/v4/entries/by-summoner
type LeagueEntry struct {
	LeagueID     string      `json:"leagueId"`
	SummonerID   string      `json:"summonerId"`
	SummonerName string      `json:"summonerName"`
	QueueType    string      `json:"queueType"` // RANKED_SOLO_5x5, RANKED_FLEX_SR
	Tier         string      `json:"tier"`      // IRON ... CHALLENGER
	Rank         string      `json:"rank"`      // I, II, III, IV
	LeaguePoints int         `json:"leaguePoints"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	HotStreak    bool        `json:"hotStreak"`
	Veteran      bool        `json:"veteran"`
	FreshBlood   bool        `json:"freshBlood"`
	Inactive     bool        `json:"inactive"`
	MiniSeries   *MiniSeries `json:"miniSeries,omitempty"`
}

// MiniSeries is an active promotion series. Progress is one character per
// game: 'W', 'L' or 'N' for not yet played.
type MiniSeries struct {
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Progress string `json:"progress"`
}

// Match represents the response from /lol/match/v5/matches/{matchId}
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion,omitempty"`
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation     int64         `json:"gameCreation"` // unix ms
	GameDuration     int64         `json:"gameDuration"` // seconds
	GameEndTimestamp int64         `json:"gameEndTimestamp,omitempty"`
	GameID           int64         `json:"gameId"`
	GameMode         string        `json:"gameMode"`
	GameType         string        `json:"gameType"`
	GameVersion      string        `json:"gameVersion"`
	MapID            int           `json:"mapId"`
	PlatformID       string        `json:"platformId"`
	QueueID          int           `json:"queueId"`
	Participants     []Participant `json:"participants"`
	Teams            []Team        `json:"teams"`
}

// Participant is one player's end-of-game record
type Participant struct {
	ParticipantID  int    `json:"participantId"`
	PUUID          string `json:"puuid"`
	SummonerName   string `json:"summonerName"`
	RiotIDGameName string `json:"riotIdGameName,omitempty"`
	RiotIDTagline  string `json:"riotIdTagline,omitempty"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	ChampLevel     int    `json:"champLevel"`
	TeamID         int    `json:"teamId"`
	TeamPosition   string `json:"teamPosition"`
	Win            bool   `json:"win"`

	Kills            int `json:"kills"`
	Deaths           int `json:"deaths"`
	Assists          int `json:"assists"`
	LargestMultiKill int `json:"largestMultiKill"`

	GoldEarned           int `json:"goldEarned"`
	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`

	TotalDamageDealtToChampions    int `json:"totalDamageDealtToChampions"`
	PhysicalDamageDealtToChampions int `json:"physicalDamageDealtToChampions"`
	MagicDamageDealtToChampions    int `json:"magicDamageDealtToChampions"`
	TrueDamageDealtToChampions     int `json:"trueDamageDealtToChampions"`
	TotalDamageTaken               int `json:"totalDamageTaken"`
	DamageSelfMitigated            int `json:"damageSelfMitigated"`

	VisionScore         int `json:"visionScore"`
	WardsPlaced         int `json:"wardsPlaced"`
	DetectorWardsPlaced int `json:"detectorWardsPlaced"`

	BaronKills     int `json:"baronKills"`
	DragonKills    int `json:"dragonKills"`
	TurretKills    int `json:"turretKills"`
	TurretsLost    int `json:"turretsLost"`
	InhibitorsLost int `json:"inhibitorsLost"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"` // Trinket

	Summoner1ID int `json:"summoner1Id"`
	Summoner2ID int `json:"summoner2Id"`

	Perks      Perks      `json:"perks"`
	Challenges Challenges `json:"challenges"`
}

// DisplayName returns the summoner name, falling back to the Riot ID game name
func (p *Participant) DisplayName() string {
	if p.SummonerName != "" {
		return p.SummonerName
	}
	return p.RiotIDGameName
}

// Items returns the seven item slots in order; 0 means empty
func (p *Participant) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

type Perks struct {
	StatPerks StatPerks   `json:"statPerks"`
	Styles    []PerkStyle `json:"styles"`
}

type StatPerks struct {
	Defense int `json:"defense"`
	Flex    int `json:"flex"`
	Offense int `json:"offense"`
}

// PerkStyle is one rune tree choice. Description is "primaryStyle" or "subStyle".
type PerkStyle struct {
	Description string          `json:"description"`
	Style       int             `json:"style"`
	Selections  []PerkSelection `json:"selections"`
}

type PerkSelection struct {
	Perk int `json:"perk"`
	Var1 int `json:"var1"`
	Var2 int `json:"var2"`
	Var3 int `json:"var3"`
}

// Challenges holds the subset of challenge metrics the dashboard renders
type Challenges struct {
	KDA                       float64 `json:"kda"`
	KillParticipation         float64 `json:"killParticipation"`
	GoldPerMinute             float64 `json:"goldPerMinute"`
	DamagePerMinute           float64 `json:"damagePerMinute"`
	TeamDamagePercentage      float64 `json:"teamDamagePercentage"`
	VisionScorePerMinute      float64 `json:"visionScorePerMinute"`
	EffectiveHealAndShielding float64 `json:"effectiveHealAndShielding"`
	SkillshotsHit             int     `json:"skillshotsHit"`
	SkillshotsDodged          int     `json:"skillshotsDodged"`
	ControlWardsPlaced        int     `json:"controlWardsPlaced"`
}

type Team struct {
	TeamID     int        `json:"teamId"`
	Win        bool       `json:"win"`
	Bans       []Ban      `json:"bans"`
	Objectives Objectives `json:"objectives"`
}

type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

type Objectives struct {
	Baron      Objective `json:"baron"`
	Champion   Objective `json:"champion"`
	Dragon     Objective `json:"dragon"`
	Inhibitor  Objective `json:"inhibitor"`
	RiftHerald Objective `json:"riftHerald"`
	Tower      Objective `json:"tower"`
}

type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// Timeline represents the response from /lol/match/v5/matches/{matchId}/timeline
type Timeline struct {
	Metadata TimelineMetadata `json:"metadata"`
	Info     TimelineInfo     `json:"info"`
}

type TimelineMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type TimelineInfo struct {
	FrameInterval int     `json:"frameInterval"`
	Frames        []Frame `json:"frames"`
}

// Frame is a roughly one-minute snapshot. ParticipantFrames is keyed by the
// 1-based participant id as a string ("1" .. "10").
type Frame struct {
	Timestamp         int64                       `json:"timestamp"`
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Events            []Event                     `json:"events"`
}

// Participant returns the snapshot for a 1-based participant id
func (f *Frame) Participant(participantID int) (ParticipantFrame, bool) {
	pf, ok := f.ParticipantFrames[strconv.Itoa(participantID)]
	return pf, ok
}

type ParticipantFrame struct {
	ParticipantID       int         `json:"participantId"`
	CurrentGold         int         `json:"currentGold"`
	TotalGold           int         `json:"totalGold"`
	Level               int         `json:"level"`
	XP                  int         `json:"xp"`
	MinionsKilled       int         `json:"minionsKilled"`
	JungleMinionsKilled int         `json:"jungleMinionsKilled"`
	DamageStats         DamageStats `json:"damageStats"`
}

type DamageStats struct {
	TotalDamageDone            int `json:"totalDamageDone"`
	TotalDamageDoneToChampions int `json:"totalDamageDoneToChampions"`
	TotalDamageTaken           int `json:"totalDamageTaken"`
}

// Event types used by the dashboard
const (
	EventSkillLevelUp  = "SKILL_LEVEL_UP"
	EventItemPurchased = "ITEM_PURCHASED"
	EventItemSold      = "ITEM_SOLD"
	EventItemUndo      = "ITEM_UNDO"
	EventChampionKill  = "CHAMPION_KILL"

	LevelUpNormal = "NORMAL"
)

// Event is a discrete timeline event. Only the fields the dashboard reads are
// decoded; unused event-specific fields are dropped.
type Event struct {
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	ParticipantID int    `json:"participantId,omitempty"`
	ItemID        int    `json:"itemId,omitempty"`
	BeforeID      int    `json:"beforeId,omitempty"`
	AfterID       int    `json:"afterId,omitempty"`
	GoldGain      int    `json:"goldGain,omitempty"`
	SkillSlot     int    `json:"skillSlot,omitempty"`
	LevelUpType   string `json:"levelUpType,omitempty"`
	KillerID      int    `json:"killerId,omitempty"`
	VictimID      int    `json:"victimId,omitempty"`
}
