package gamedata

// Items that are never highlighted in a build (consumables, trinkets, components)
var ExcludedItems = map[int]bool{
	// Potions and consumables
	2003: true, // Health Potion
	2031: true, // Refillable Potion
	2033: true, // Corrupting Potion
	2055: true, // Control Ward
	2138: true, // Elixir of Iron
	2139: true, // Elixir of Sorcery
	2140: true, // Elixir of Wrath

	// Trinkets
	3340: true, // Stealth Ward
	3341: true, // Sweeping Lens
	3363: true, // Farsight Alteration
	3364: true, // Oracle Lens

	// Components
	1001: true, // Boots
	1018: true, // Cloak of Agility
	1026: true, // Blasting Wand
	1027: true, // Sapphire Crystal
	1028: true, // Ruby Crystal
	1029: true, // Cloth Armor
	1031: true, // Chain Vest
	1033: true, // Null-Magic Mantle
	1036: true, // Long Sword
	1037: true, // Pickaxe
	1038: true, // BF Sword
	1042: true, // Dagger
	1043: true, // Recurve Bow
	1052: true, // Amplifying Tome
	1053: true, // Vampiric Scepter
	1057: true, // Negatron Cloak
	1058: true, // Needlessly Large Rod

	// Starters
	1054: true, // Doran's Shield
	1055: true, // Doran's Blade
	1056: true, // Doran's Ring
	1082: true, // Dark Seal
	1083: true, // Cull
}

// IsCoreItem reports whether an item is a finished item worth highlighting
// in the item timeline
func IsCoreItem(itemID int) bool {
	if itemID <= 0 || itemID == EmptyItemSlotID {
		return false
	}
	if ExcludedItems[itemID] {
		return false
	}
	// Finished items sit at 2000 and above
	return itemID >= 2000
}

// ItemSlotID maps an empty slot to the placeholder icon id
func ItemSlotID(itemID int) int {
	if itemID <= 0 {
		return EmptyItemSlotID
	}
	return itemID
}
