package creation

import (
	"github.com/udisondev/charcreate/internal/data"
	"github.com/udisondev/charcreate/internal/model"
)

// kit hands out the starter items of one skill.
type kit func(p *Provisioner, e *model.Entity)

func (p *Provisioner) pack(e *model.Entity, id data.ItemID, amount int32) {
	p.GivePacked(e, p.NewItem(id, amount))
}

func (p *Provisioner) wear(e *model.Entity, id data.ItemID) {
	p.GiveWorn(e, p.NewItem(id, 1))
}

func (p *Provisioner) wearHued(e *model.Entity, id data.ItemID, hue int32) {
	item := p.NewItem(id, 1)
	if item != nil {
		item.SetHue(hue)
	}
	p.GiveWorn(e, item)
}

func (p *Provisioner) packBook(e *model.Entity, id data.ItemID, content uint64) {
	item := p.NewItem(id, 1)
	if item != nil {
		item.SetContent(content)
	}
	p.GivePacked(e, item)
}

// packOneOf packs one item chosen uniformly from choices.
func (p *Provisioner) packOneOf(e *model.Entity, choices []data.ItemID) {
	p.pack(e, choices[p.rnd.IntN(len(choices))], 1)
}

func packs(items ...packEntry) kit {
	return func(p *Provisioner, e *model.Entity) {
		for _, it := range items {
			p.pack(e, it.id, it.amount)
		}
	}
}

type packEntry struct {
	id     data.ItemID
	amount int32
}

func one(id data.ItemID) packEntry            { return packEntry{id, 1} }
func stack(id data.ItemID, n int32) packEntry { return packEntry{id, n} }

func wears(ids ...data.ItemID) kit {
	return func(p *Provisioner, e *model.Entity) {
		for _, id := range ids {
			p.wear(e, id)
		}
	}
}

func instrument(p *Provisioner, e *model.Entity) {
	p.packOneOf(e, data.Instruments)
}

var skillKits = map[data.SkillName]kit{
	data.SkillAlchemy: func(p *Provisioner, e *model.Entity) {
		packs(stack(data.ItemBottle, 10), one(data.ItemMortarPestle), one(data.ItemBagOfReagents))(p, e)
		p.wearHued(e, data.ItemRobe, data.PinkHues.Random(p.rnd))
	},
	data.SkillAnatomy: packs(stack(data.ItemBandage, 10)),
	data.SkillAnimalLore: func(p *Provisioner, e *model.Entity) {
		p.wear(e, data.ItemShepherdsCrook)
		p.wearHued(e, data.ItemRobe, data.GreenHues.Random(p.rnd))
	},
	data.SkillArchery: func(p *Provisioner, e *model.Entity) {
		p.pack(e, data.ItemArrow, 25)
		p.wear(e, data.ItemBow)
	},
	data.SkillArmsLore: wears(data.ItemKatana, data.ItemKryss, data.ItemClub),
	data.SkillBegging: func(p *Provisioner, e *model.Entity) {
		p.wear(e, data.ItemGnarledStaff)
		p.wearHued(e, data.ItemRobe, data.YellowHues.Random(p.rnd))
	},
	data.SkillBlacksmith: func(p *Provisioner, e *model.Entity) {
		packs(one(data.ItemTongs), one(data.ItemPickaxe))(p, e)
		p.wearHued(e, data.ItemHalfApron, data.YellowHues.Random(p.rnd))
	},
	data.SkillBushido:   wears(data.ItemHakama, data.ItemKasa, data.ItemBookOfBushido),
	data.SkillFletching: packs(stack(data.ItemFeather, 10), stack(data.ItemShaft, 10)),
	data.SkillCamping:   packs(one(data.ItemBedroll), stack(data.ItemKindling, 10)),
	data.SkillCarpentry: func(p *Provisioner, e *model.Entity) {
		packs(stack(data.ItemBoard, 10), one(data.ItemSaw))(p, e)
		p.wearHued(e, data.ItemHalfApron, data.YellowHues.Random(p.rnd))
	},
	data.SkillCartography: packs(
		one(data.ItemBlankMap), one(data.ItemBlankMap), one(data.ItemBlankMap), one(data.ItemBlankMap),
		one(data.ItemSextant),
	),
	data.SkillCooking: packs(
		stack(data.ItemKindling, 5), one(data.ItemRawLambLeg), one(data.ItemRawChickenLeg),
		one(data.ItemRawFishSteak), one(data.ItemSackFlour), one(data.ItemWaterPitcher),
	),
	data.SkillChivalry: func(p *Provisioner, e *model.Entity) {
		if p.expansion.AtLeast(data.ExpansionML) {
			p.packBook(e, data.ItemBookOfChivalry, data.ChivalryStarterContent)
		}
	},
	data.SkillDetectHidden: func(p *Provisioner, e *model.Entity) {
		p.wearHued(e, data.ItemCloak, data.HueShadow)
	},
	data.SkillDiscordance: instrument,
	data.SkillFencing:     wears(data.ItemKryss),
	data.SkillFishing: func(p *Provisioner, e *model.Entity) {
		p.wear(e, data.ItemFishingPole)
		p.wearHued(e, data.ItemFloppyHat, data.YellowHues.Random(p.rnd))
	},
	data.SkillHealing: packs(stack(data.ItemBandage, 20), one(data.ItemScissors)),
	data.SkillHerding: wears(data.ItemShepherdsCrook),
	data.SkillHiding: func(p *Provisioner, e *model.Entity) {
		p.wearHued(e, data.ItemCloak, data.HueShadow)
	},
	data.SkillInscribe: func(p *Provisioner, e *model.Entity) {
		packs(stack(data.ItemBlankScroll, 5), one(data.ItemBlueBook))(p, e)
		p.packOneOf(e, data.BeginnerScrolls)
	},
	data.SkillItemID:        wears(data.ItemGnarledStaff),
	data.SkillLockpicking:   packs(stack(data.ItemLockpick, 10)),
	data.SkillLumberjacking: wears(data.ItemHatchet),
	data.SkillMacing:        wears(data.ItemClub),
	data.SkillMagery: func(p *Provisioner, e *model.Entity) {
		p.packBook(e, data.ItemSpellbook, data.SpellbookStarterContent)
		p.wearHued(e, data.ItemWizardsHat, data.BlueHues.Random(p.rnd))
		p.wearHued(e, data.ItemRobe, data.BlueHues.Random(p.rnd))
	},
	data.SkillMining:       packs(one(data.ItemPickaxe), one(data.ItemPickaxe)),
	data.SkillMusicianship: instrument,
	data.SkillNecromancy: func(p *Provisioner, e *model.Entity) {
		p.packBook(e, data.ItemNecroSpellbook, data.NecromancerStarterContent)
		p.wearHued(e, data.ItemWizardsHat, data.RedHues.Random(p.rnd))
		p.wearHued(e, data.ItemRobe, data.RedHues.Random(p.rnd))
	},
	data.SkillNinjitsu: func(p *Provisioner, e *model.Entity) {
		p.wearHued(e, data.ItemHakama, data.HueNinjaHakama)
		p.wear(e, data.ItemKasa)
		p.wear(e, data.ItemBookOfNinjitsu)
	},
	data.SkillParry:       wears(data.ItemWoodenShield),
	data.SkillPeacemaking: instrument,
	data.SkillPoisoning:   packs(stack(data.ItemLesserPoison, 5)),
	data.SkillProvocation: instrument,
	data.SkillSnooping:    packs(stack(data.ItemLockpick, 5)),
	data.SkillEvalInt: func(p *Provisioner, e *model.Entity) {
		p.wearHued(e, data.ItemCloak, data.BlueHues.Random(p.rnd))
	},
	data.SkillSpiritSpeak: func(p *Provisioner, e *model.Entity) {
		p.wearHued(e, data.ItemCloak, data.RedHues.Random(p.rnd))
	},
	data.SkillStealing:  packs(stack(data.ItemLockpick, 5)),
	data.SkillSwords:    wears(data.ItemKatana),
	data.SkillTactics:   wears(data.ItemLeatherChest),
	data.SkillTailoring: packs(one(data.ItemBoltOfCloth), one(data.ItemSewingKit)),
	data.SkillTinkering: packs(
		one(data.ItemTinkerTools), one(data.ItemAxle), one(data.ItemAxleGears),
		one(data.ItemSprings), one(data.ItemClockFrame),
	),
	data.SkillTracking:   wears(data.ItemSkinningKnife),
	data.SkillVeterinary: packs(stack(data.ItemBandage, 5), one(data.ItemScissors)),
	data.SkillWrestling:  wears(data.ItemLeatherGloves),
	data.SkillThrowing: func(p *Provisioner, e *model.Entity) {
		if e.Race().SupportsThrowing() {
			p.wear(e, data.ItemBoomerang)
		}
	},
	data.SkillMysticism: func(p *Provisioner, e *model.Entity) {
		p.packBook(e, data.ItemMysticBook, data.MysticismStarterContent)
		p.wear(e, data.ItemWizardsHat)
		p.wear(e, data.ItemRobe)
	},
}

// HasKit reports whether skill grants starter items.
func HasKit(skill data.SkillName) bool {
	_, ok := skillKits[skill]
	return ok
}
