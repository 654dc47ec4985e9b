package creation

import (
	"log/slog"

	"github.com/udisondev/charcreate/internal/data"
	"github.com/udisondev/charcreate/internal/model"
	"github.com/udisondev/charcreate/internal/random"
	"github.com/udisondev/charcreate/internal/world"
)

// Placement is where a starter item ended up.
type Placement int

const (
	PlacementWorn Placement = iota
	PlacementPacked
	PlacementDestroyed
)

// String returns the placement name, used as a metric label.
func (p Placement) String() string {
	switch p {
	case PlacementWorn:
		return "worn"
	case PlacementPacked:
		return "packed"
	default:
		return "destroyed"
	}
}

// Provisioner hands out starter equipment. It holds no per-entity state:
// every operation takes the target entity explicitly.
type Provisioner struct {
	expansion data.Expansion
	rnd       random.Source
	serials   *world.SerialGenerator
	metrics   *Metrics
	log       *slog.Logger
}

// NewProvisioner creates a provisioner. nil dependencies fall back to the
// process-wide defaults.
func NewProvisioner(expansion data.Expansion, rnd random.Source, serials *world.SerialGenerator, metrics *Metrics, log *slog.Logger) *Provisioner {
	if rnd == nil {
		rnd = random.Default()
	}
	if serials == nil {
		serials = world.Serials()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Provisioner{
		expansion: expansion,
		rnd:       rnd,
		serials:   serials,
		metrics:   metrics,
		log:       log,
	}
}

// NewItem creates a catalog item with a fresh serial.
// Returns nil for ids missing from the catalog.
func (p *Provisioner) NewItem(id data.ItemID, amount int32) *model.Item {
	item, err := model.NewItem(p.serials.NextItemSerial(), data.GetItemTemplate(id), amount)
	if err != nil {
		p.log.Error("creating starter item", "item", id, "amount", amount, "err", err)
		return nil
	}
	return item
}

// protect marks items newbied on shards before AOS. Blessed items keep their blessing.
func (p *Provisioner) protect(item *model.Item) {
	if !p.expansion.AtLeast(data.ExpansionAOS) && item.LootType() != model.LootBlessed {
		item.SetLootType(model.LootNewbied)
	}
}

// GiveWorn equips item on e. If the layer is taken the item goes to the
// backpack; without a backpack it is destroyed.
func (p *Provisioner) GiveWorn(e *model.Entity, item *model.Item) Placement {
	if item == nil {
		return PlacementDestroyed
	}
	p.protect(item)

	if e.EquipItem(item) {
		return p.placed(e, item, PlacementWorn)
	}
	if e.Backpack().DropItem(item) {
		return p.placed(e, item, PlacementPacked)
	}
	item.Delete()
	return p.placed(e, item, PlacementDestroyed)
}

// GivePacked drops item into e's backpack, destroying it if there is none.
func (p *Provisioner) GivePacked(e *model.Entity, item *model.Item) Placement {
	if item == nil {
		return PlacementDestroyed
	}
	p.protect(item)

	if e.Backpack().DropItem(item) {
		return p.placed(e, item, PlacementPacked)
	}
	item.Delete()
	return p.placed(e, item, PlacementDestroyed)
}

func (p *Provisioner) placed(e *model.Entity, item *model.Item, pl Placement) Placement {
	p.metrics.itemPlaced(pl)
	if pl == PlacementDestroyed {
		p.log.Warn("starter item destroyed, no room", "serial", e.Serial(), "item", item.ID())
	}
	return pl
}

// EnsureBackpack gives e a non-movable backpack unless it already wears one.
func (p *Provisioner) EnsureBackpack(e *model.Entity) *model.Container {
	if pack := e.Backpack(); pack != nil {
		return pack
	}
	pack := model.NewContainer(p.NewItem(data.ItemBackpack, 1))
	if pack == nil {
		return nil
	}
	pack.SetMovable(false)
	if !e.Inventory().SetBackpack(pack) {
		pack.Delete()
		return nil
	}
	return pack
}

// GiveBasics hands out what every new character gets: a backpack and a blessed dagger.
func (p *Provisioner) GiveBasics(e *model.Entity) {
	p.EnsureBackpack(e)

	dagger := p.NewItem(data.ItemDagger, 1)
	if dagger != nil {
		dagger.SetLootType(model.LootBlessed)
	}
	p.GivePacked(e, dagger)
}

// GiveClothing dresses a basic-profession character: shirt, legwear by
// gender and shoes, all blessed. Shirt and legwear take the client's hues
// clipped to the dye range; shoes are a random yellow.
func (p *Provisioner) GiveClothing(e *model.Entity, shirtHue, pantsHue int32) {
	p.wearBlessed(e, data.ItemShirt, data.ClipDyedHue(shirtHue&data.HueMask))

	legs := data.ItemShortPants
	if e.Female() {
		legs = data.ItemSkirt
	}
	p.wearBlessed(e, legs, data.ClipDyedHue(pantsHue&data.HueMask))

	p.wearBlessed(e, data.ItemShoes, data.YellowHues.Random(p.rnd))
}

func (p *Provisioner) wearBlessed(e *model.Entity, id data.ItemID, hue int32) {
	item := p.NewItem(id, 1)
	if item != nil {
		item.SetHue(hue)
		item.SetLootType(model.LootBlessed)
	}
	p.GiveWorn(e, item)
}

// GiveYoungTicket drops the new player ticket into e's backpack.
func (p *Provisioner) GiveYoungTicket(e *model.Entity) Placement {
	return p.GivePacked(e, p.NewItem(data.ItemNewPlayerTicket, 1))
}

// GiveSkillItems hands out the starter kit for one skill. Skills without a
// kit give nothing.
func (p *Provisioner) GiveSkillItems(e *model.Entity, skill data.SkillName) {
	if kit, ok := skillKits[skill]; ok {
		kit(p, e)
	}
}
