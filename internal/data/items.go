package data

// Layer is the body slot an equippable item occupies.
// Values match the client layer ids.
type Layer int32

const (
	LayerInvalid     Layer = 0
	LayerOneHanded   Layer = 1
	LayerTwoHanded   Layer = 2
	LayerShoes       Layer = 3
	LayerPants       Layer = 4
	LayerShirt       Layer = 5
	LayerHelm        Layer = 6
	LayerGloves      Layer = 7
	LayerWaist       Layer = 12
	LayerInnerTorso  Layer = 13
	LayerMiddleTorso Layer = 17
	LayerCloak       Layer = 20
	LayerBackpack    Layer = 21
	LayerOuterTorso  Layer = 22
	LayerOuterLegs   Layer = 23
	LayerInnerLegs   Layer = 24

	// LayerCount bounds the paperdoll array.
	LayerCount = 25
)

// ItemID is the catalog identity of a starter item.
type ItemID string

// ItemTemplate describes a catalog item: what it is and where it is worn.
type ItemTemplate struct {
	ID        ItemID
	Name      string
	Layer     Layer // LayerInvalid for items that cannot be worn
	Stackable bool
	TwoHanded bool // two-handed weapon; blocks the one-handed layer
	Container bool
}

// Wearable reports whether the item has a body layer.
func (t *ItemTemplate) Wearable() bool {
	return t.Layer != LayerInvalid && t.Layer != LayerBackpack
}

// Starter item catalog.
const (
	ItemBackpack ItemID = "backpack"

	ItemDagger          ItemID = "dagger"
	ItemKatana          ItemID = "katana"
	ItemKryss           ItemID = "kryss"
	ItemClub            ItemID = "club"
	ItemBow             ItemID = "bow"
	ItemShepherdsCrook  ItemID = "shepherds_crook"
	ItemGnarledStaff    ItemID = "gnarled_staff"
	ItemHatchet         ItemID = "hatchet"
	ItemFishingPole     ItemID = "fishing_pole"
	ItemSkinningKnife   ItemID = "skinning_knife"
	ItemBoomerang       ItemID = "boomerang"
	ItemWoodenShield    ItemID = "wooden_shield"
	ItemLeatherChest    ItemID = "leather_chest"
	ItemLeatherGloves   ItemID = "leather_gloves"
	ItemShirt           ItemID = "shirt"
	ItemShortPants      ItemID = "short_pants"
	ItemSkirt           ItemID = "skirt"
	ItemShoes           ItemID = "shoes"
	ItemRobe            ItemID = "robe"
	ItemCloak           ItemID = "cloak"
	ItemHalfApron       ItemID = "half_apron"
	ItemHakama          ItemID = "hakama"
	ItemKasa            ItemID = "kasa"
	ItemWizardsHat      ItemID = "wizards_hat"
	ItemFloppyHat       ItemID = "floppy_hat"
	ItemSpellbook       ItemID = "spellbook"
	ItemNecroSpellbook  ItemID = "necromancer_spellbook"
	ItemBookOfChivalry  ItemID = "book_of_chivalry"
	ItemBookOfBushido   ItemID = "book_of_bushido"
	ItemBookOfNinjitsu  ItemID = "book_of_ninjitsu"
	ItemMysticBook      ItemID = "mystic_book"
	ItemBottle          ItemID = "bottle"
	ItemMortarPestle    ItemID = "mortar_pestle"
	ItemBagOfReagents   ItemID = "bag_of_all_reagents"
	ItemBandage         ItemID = "bandage"
	ItemArrow           ItemID = "arrow"
	ItemTongs           ItemID = "tongs"
	ItemPickaxe         ItemID = "pickaxe"
	ItemFeather         ItemID = "feather"
	ItemShaft           ItemID = "shaft"
	ItemBedroll         ItemID = "bedroll"
	ItemKindling        ItemID = "kindling"
	ItemBoard           ItemID = "board"
	ItemSaw             ItemID = "saw"
	ItemBlankMap        ItemID = "blank_map"
	ItemSextant         ItemID = "sextant"
	ItemRawLambLeg      ItemID = "raw_lamb_leg"
	ItemRawChickenLeg   ItemID = "raw_chicken_leg"
	ItemRawFishSteak    ItemID = "raw_fish_steak"
	ItemSackFlour       ItemID = "sack_flour"
	ItemWaterPitcher    ItemID = "pitcher_of_water"
	ItemScissors        ItemID = "scissors"
	ItemBlankScroll     ItemID = "blank_scroll"
	ItemBlueBook        ItemID = "blue_book"
	ItemLockpick        ItemID = "lockpick"
	ItemLesserPoison    ItemID = "lesser_poison_potion"
	ItemBoltOfCloth     ItemID = "bolt_of_cloth"
	ItemSewingKit       ItemID = "sewing_kit"
	ItemTinkerTools     ItemID = "tinker_tools"
	ItemAxle            ItemID = "axle"
	ItemAxleGears       ItemID = "axle_gears"
	ItemSprings         ItemID = "springs"
	ItemClockFrame      ItemID = "clock_frame"
	ItemNewPlayerTicket ItemID = "new_player_ticket"

	ItemDrums            ItemID = "drums"
	ItemHarp             ItemID = "harp"
	ItemLapHarp          ItemID = "lap_harp"
	ItemLute             ItemID = "lute"
	ItemTambourine       ItemID = "tambourine"
	ItemTambourineTassel ItemID = "tambourine_tassel"

	ItemClumsyScroll        ItemID = "clumsy_scroll"
	ItemCreateFoodScroll    ItemID = "create_food_scroll"
	ItemFeeblemindScroll    ItemID = "feeblemind_scroll"
	ItemHealScroll          ItemID = "heal_scroll"
	ItemMagicArrowScroll    ItemID = "magic_arrow_scroll"
	ItemNightSightScroll    ItemID = "night_sight_scroll"
	ItemReactiveArmorScroll ItemID = "reactive_armor_scroll"
	ItemWeakenScroll        ItemID = "weaken_scroll"
)

// Instruments are interchangeable: bard skills grant one at random.
var Instruments = []ItemID{
	ItemDrums, ItemHarp, ItemLapHarp, ItemLute, ItemTambourine, ItemTambourineTassel,
}

// BeginnerScrolls are the first-circle scrolls an inscriber may start with.
var BeginnerScrolls = []ItemID{
	ItemClumsyScroll, ItemCreateFoodScroll, ItemFeeblemindScroll, ItemHealScroll,
	ItemMagicArrowScroll, ItemNightSightScroll, ItemReactiveArmorScroll, ItemWeakenScroll,
}

// Spellbook contents granted with starter books.
const (
	SpellbookStarterContent   uint64 = 0x382A8C38
	NecromancerStarterContent uint64 = 0x8981
	ChivalryStarterContent    uint64 = 0x3FF
	MysticismStarterContent   uint64 = 0xAB
)

// Fixed hues used by the starter kits.
const (
	HueShadow      int32 = 0x455 // cloak for hiders and detectives
	HueNinjaHakama int32 = 0x2C3
)

var itemTemplates = map[ItemID]*ItemTemplate{}

func register(templates ...ItemTemplate) {
	for i := range templates {
		t := templates[i]
		itemTemplates[t.ID] = &t
	}
}

func init() {
	register(
		ItemTemplate{ID: ItemBackpack, Name: "backpack", Layer: LayerBackpack, Container: true},

		ItemTemplate{ID: ItemDagger, Name: "dagger", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemKatana, Name: "katana", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemKryss, Name: "kryss", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemClub, Name: "club", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemSkinningKnife, Name: "skinning knife", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemBow, Name: "bow", Layer: LayerTwoHanded, TwoHanded: true},
		ItemTemplate{ID: ItemShepherdsCrook, Name: "shepherd's crook", Layer: LayerTwoHanded, TwoHanded: true},
		ItemTemplate{ID: ItemGnarledStaff, Name: "gnarled staff", Layer: LayerTwoHanded, TwoHanded: true},
		ItemTemplate{ID: ItemHatchet, Name: "hatchet", Layer: LayerTwoHanded, TwoHanded: true},
		ItemTemplate{ID: ItemFishingPole, Name: "fishing pole", Layer: LayerTwoHanded, TwoHanded: true},
		ItemTemplate{ID: ItemBoomerang, Name: "boomerang", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemWoodenShield, Name: "wooden shield", Layer: LayerTwoHanded},

		ItemTemplate{ID: ItemLeatherChest, Name: "leather tunic", Layer: LayerInnerTorso},
		ItemTemplate{ID: ItemLeatherGloves, Name: "leather gloves", Layer: LayerGloves},
		ItemTemplate{ID: ItemShirt, Name: "shirt", Layer: LayerShirt},
		ItemTemplate{ID: ItemShortPants, Name: "short pants", Layer: LayerPants},
		ItemTemplate{ID: ItemSkirt, Name: "skirt", Layer: LayerOuterLegs},
		ItemTemplate{ID: ItemShoes, Name: "shoes", Layer: LayerShoes},
		ItemTemplate{ID: ItemRobe, Name: "robe", Layer: LayerOuterTorso},
		ItemTemplate{ID: ItemCloak, Name: "cloak", Layer: LayerCloak},
		ItemTemplate{ID: ItemHalfApron, Name: "half apron", Layer: LayerWaist},
		ItemTemplate{ID: ItemHakama, Name: "hakama", Layer: LayerOuterLegs},
		ItemTemplate{ID: ItemKasa, Name: "kasa", Layer: LayerHelm},
		ItemTemplate{ID: ItemWizardsHat, Name: "wizard's hat", Layer: LayerHelm},
		ItemTemplate{ID: ItemFloppyHat, Name: "floppy hat", Layer: LayerHelm},

		ItemTemplate{ID: ItemSpellbook, Name: "spellbook", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemNecroSpellbook, Name: "necromancer spellbook", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemBookOfChivalry, Name: "book of chivalry", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemBookOfBushido, Name: "book of bushido", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemBookOfNinjitsu, Name: "book of ninjitsu", Layer: LayerOneHanded},
		ItemTemplate{ID: ItemMysticBook, Name: "mysticism spellbook", Layer: LayerOneHanded},

		ItemTemplate{ID: ItemBottle, Name: "empty bottle", Stackable: true},
		ItemTemplate{ID: ItemMortarPestle, Name: "mortar and pestle"},
		ItemTemplate{ID: ItemBagOfReagents, Name: "bag of reagents", Container: true},
		ItemTemplate{ID: ItemBandage, Name: "clean bandage", Stackable: true},
		ItemTemplate{ID: ItemArrow, Name: "arrow", Stackable: true},
		ItemTemplate{ID: ItemTongs, Name: "smith's tongs"},
		ItemTemplate{ID: ItemPickaxe, Name: "pickaxe"},
		ItemTemplate{ID: ItemFeather, Name: "feather", Stackable: true},
		ItemTemplate{ID: ItemShaft, Name: "arrow shaft", Stackable: true},
		ItemTemplate{ID: ItemBedroll, Name: "bedroll"},
		ItemTemplate{ID: ItemKindling, Name: "kindling", Stackable: true},
		ItemTemplate{ID: ItemBoard, Name: "board", Stackable: true},
		ItemTemplate{ID: ItemSaw, Name: "saw"},
		ItemTemplate{ID: ItemBlankMap, Name: "blank map"},
		ItemTemplate{ID: ItemSextant, Name: "sextant"},
		ItemTemplate{ID: ItemRawLambLeg, Name: "raw leg of lamb"},
		ItemTemplate{ID: ItemRawChickenLeg, Name: "raw chicken leg"},
		ItemTemplate{ID: ItemRawFishSteak, Name: "raw fish steak"},
		ItemTemplate{ID: ItemSackFlour, Name: "sack of flour"},
		ItemTemplate{ID: ItemWaterPitcher, Name: "pitcher of water"},
		ItemTemplate{ID: ItemScissors, Name: "scissors"},
		ItemTemplate{ID: ItemBlankScroll, Name: "blank scroll", Stackable: true},
		ItemTemplate{ID: ItemBlueBook, Name: "blue book"},
		ItemTemplate{ID: ItemLockpick, Name: "lockpick", Stackable: true},
		ItemTemplate{ID: ItemLesserPoison, Name: "lesser poison potion", Stackable: true},
		ItemTemplate{ID: ItemBoltOfCloth, Name: "bolt of cloth"},
		ItemTemplate{ID: ItemSewingKit, Name: "sewing kit"},
		ItemTemplate{ID: ItemTinkerTools, Name: "tinker's tools"},
		ItemTemplate{ID: ItemAxle, Name: "axle"},
		ItemTemplate{ID: ItemAxleGears, Name: "axle and gears"},
		ItemTemplate{ID: ItemSprings, Name: "springs"},
		ItemTemplate{ID: ItemClockFrame, Name: "clock frame"},
		ItemTemplate{ID: ItemNewPlayerTicket, Name: "new player ticket"},

		ItemTemplate{ID: ItemDrums, Name: "drum"},
		ItemTemplate{ID: ItemHarp, Name: "harp"},
		ItemTemplate{ID: ItemLapHarp, Name: "lap harp"},
		ItemTemplate{ID: ItemLute, Name: "lute"},
		ItemTemplate{ID: ItemTambourine, Name: "tambourine"},
		ItemTemplate{ID: ItemTambourineTassel, Name: "tambourine with tassel"},

		ItemTemplate{ID: ItemClumsyScroll, Name: "clumsy scroll", Stackable: true},
		ItemTemplate{ID: ItemCreateFoodScroll, Name: "create food scroll", Stackable: true},
		ItemTemplate{ID: ItemFeeblemindScroll, Name: "feeblemind scroll", Stackable: true},
		ItemTemplate{ID: ItemHealScroll, Name: "heal scroll", Stackable: true},
		ItemTemplate{ID: ItemMagicArrowScroll, Name: "magic arrow scroll", Stackable: true},
		ItemTemplate{ID: ItemNightSightScroll, Name: "night sight scroll", Stackable: true},
		ItemTemplate{ID: ItemReactiveArmorScroll, Name: "reactive armor scroll", Stackable: true},
		ItemTemplate{ID: ItemWeakenScroll, Name: "weaken scroll", Stackable: true},
	)
}

// GetItemTemplate returns the catalog entry for id, or nil if unknown.
func GetItemTemplate(id ItemID) *ItemTemplate {
	return itemTemplates[id]
}
