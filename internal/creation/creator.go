package creation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/charcreate/internal/data"
	"github.com/udisondev/charcreate/internal/model"
	"github.com/udisondev/charcreate/internal/random"
	"github.com/udisondev/charcreate/internal/world"
)

// Defaults for Config.
const (
	DefaultSkillCap         int32 = 1000
	DefaultWelcomeMessageID int32 = 1062050
	DefaultWelcomeDelay           = 3500 * time.Millisecond

	// StartingHunger is the food level of a new character.
	StartingHunger int32 = 20
)

// SlotAllocator reserves a character slot on an account.
// Implementations must be atomic: concurrent calls for one account never
// receive the same slot. AllocateSlot returns ErrAccountFull when no slot is free.
// CancelSlot undoes a reservation whose character never entered the world;
// it reports false when the slot is already gone.
type SlotAllocator interface {
	AllocateSlot(ctx context.Context, login string, serial uint32) (model.Slot, error)
	CancelSlot(ctx context.Context, login string, serial uint32) (bool, error)
}

// Placer puts a finished entity into the world.
type Placer interface {
	Place(ctx context.Context, e *model.Entity, loc model.Location) error
}

// Config holds shard rules that affect character creation.
type Config struct {
	Expansion        data.Expansion
	Siege            bool  // Siege Perilous ruleset
	SkillCap         int32 // fixed-point cap applied to every skill
	NamePolicy       NamePolicy
	WelcomeMessageID int32
	WelcomeDelay     time.Duration
}

// DefaultConfig returns Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Expansion:        data.ExpansionSA,
		SkillCap:         DefaultSkillCap,
		NamePolicy:       DefaultNamePolicy(),
		WelcomeMessageID: DefaultWelcomeMessageID,
		WelcomeDelay:     DefaultWelcomeDelay,
	}
}

// Deps are the collaborators of a Creator. Slots and Placer are required;
// the rest fall back to process-wide defaults.
type Deps struct {
	Slots     SlotAllocator
	Placer    Placer
	Messenger Messenger
	Scheduler Scheduler
	Random    random.Source
	Serials   *world.SerialGenerator
	Metrics   *Metrics
	Logger    *slog.Logger
}

// Creator runs character creation requests.
// Safe for concurrent use as long as its Random source is.
type Creator struct {
	cfg       Config
	slots     SlotAllocator
	placer    Placer
	messenger Messenger
	scheduler Scheduler
	rnd       random.Source
	serials   *world.SerialGenerator
	metrics   *Metrics
	log       *slog.Logger
	provision *Provisioner
}

// NewCreator creates a Creator.
func NewCreator(cfg Config, deps Deps) (*Creator, error) {
	if deps.Slots == nil {
		return nil, fmt.Errorf("slot allocator is required")
	}
	if deps.Placer == nil {
		return nil, fmt.Errorf("placer is required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Messenger == nil {
		deps.Messenger = LogMessenger{Log: deps.Logger}
	}
	if deps.Scheduler == nil {
		deps.Scheduler = TimerScheduler{}
	}
	if deps.Random == nil {
		deps.Random = random.Default()
	}
	if deps.Serials == nil {
		deps.Serials = world.Serials()
	}
	if cfg.NamePolicy.MaxLength == 0 {
		cfg.NamePolicy = DefaultNamePolicy()
	}

	return &Creator{
		cfg:       cfg,
		slots:     deps.Slots,
		placer:    deps.Placer,
		messenger: deps.Messenger,
		scheduler: deps.Scheduler,
		rnd:       deps.Random,
		serials:   deps.Serials,
		metrics:   deps.Metrics,
		log:       deps.Logger,
		provision: NewProvisioner(cfg.Expansion, deps.Random, deps.Serials, deps.Metrics, deps.Logger),
	}, nil
}

// Provisioner returns the provisioner used by c.
func (c *Creator) Provisioner() *Provisioner { return c.provision }

// Result describes one creation attempt.
type Result struct {
	RequestID string
	States    []State

	// Entity is set only once the character has been placed.
	Entity *model.Entity

	// Serial and SlotIndex are set once a slot was reserved.
	Serial    uint32
	SlotIndex int
	// SlotCanceled reports that placement failed and the reserved slot was given back.
	SlotCanceled bool

	Profession      int32
	Stats           Stats
	StatsFellBack   bool
	Skills          []data.SkillValue // skills actually applied, in order
	SkillsDiscarded bool
	NameReplaced    bool
	RaceDowngraded  bool
}

// State returns the last state reached.
func (r *Result) State() State {
	if len(r.States) == 0 {
		return StateReceivedRequest
	}
	return r.States[len(r.States)-1]
}

// build is the per-request builder. It owns the entity until placement.
type build struct {
	c      *Creator
	req    *Request
	res    *Result
	log    *slog.Logger
	entity *model.Entity
	slot   model.Slot
}

func (b *build) enter(s State) {
	if n := len(b.res.States); n > 0 && !canTransition(b.res.States[n-1], s) {
		b.log.Error("invalid creation state transition", "from", b.res.States[n-1].String(), "to", s.String())
	}
	b.res.States = append(b.res.States, s)
}

// Create runs one creation request to completion.
//
// Errors:
//   - ErrNoSession: request has no session; nothing was created
//   - ErrAccountFull: no free character slot; nothing was created
//   - wrapped storage or placement errors
//
// Every other malformed input is repaired and creation proceeds.
func (c *Creator) Create(ctx context.Context, req *Request) (*Result, error) {
	b := &build{
		c:   c,
		req: req,
		res: &Result{RequestID: uuid.NewString()},
	}
	b.log = c.log.With("request_id", b.res.RequestID)

	b.enter(StateReceivedRequest)
	if req == nil || req.Session == nil || req.Session.Account == "" {
		b.enter(StateRejected)
		c.metrics.requestRejected("no_session")
		b.log.Warn("character creation failed, no session")
		return b.res, ErrNoSession
	}
	b.log = b.log.With("session", req.Session.ID, "account", req.Session.Account)

	b.enter(StateProfessionResolved)
	b.resolveProfession()

	b.enter(StateSlotAllocated)
	if err := b.allocateSlot(ctx); err != nil {
		b.enter(StateRejected)
		return b.res, err
	}

	b.enter(StateIdentityAssigned)
	b.assignIdentity()

	b.enter(StateBodyConfigured)
	b.configureBody()

	b.enter(StateStatsAssigned)
	b.assignStats()

	b.enter(StateSkillsAssigned)
	b.assignSkills()

	b.enter(StateCosmeticsAssigned)
	b.assignCosmetics()

	b.enter(StateEquipmentGranted)
	b.grantEquipment()

	loc := b.startLocation()
	if err := c.placer.Place(ctx, b.entity, loc); err != nil {
		b.log.Error("character creation failed, placement", "serial", b.entity.Serial(), "location", loc.String(), "err", err)
		c.metrics.requestRejected("placement")
		b.cancelSlot(ctx)
		return b.res, fmt.Errorf("placing character %d: %w", b.entity.Serial(), err)
	}
	b.enter(StatePlaced)
	b.res.Entity = b.entity
	c.metrics.characterCreated()

	b.log.Info("new character created",
		"name", b.entity.Name(),
		"serial", b.entity.Serial(),
		"profession", b.res.Profession,
		"city", b.req.City.Name,
		"location", loc.String())

	e, msg := b.entity, c.cfg.WelcomeMessageID
	c.scheduler.AfterFunc(c.cfg.WelcomeDelay, func() {
		c.messenger.SendLocalized(e, msg)
	})

	return b.res, nil
}

func (b *build) resolveProfession() {
	prof := b.req.Profession
	if !ValidateProfession(prof, b.c.cfg.Expansion) {
		b.log.Debug("invalid profession, using custom", "profession", prof)
		prof = data.ProfessionCustom
	}
	b.res.Profession = prof
}

func (b *build) allocateSlot(ctx context.Context) error {
	serial := b.c.serials.NextEntitySerial()
	slot, err := b.c.slots.AllocateSlot(ctx, b.req.Session.Account, serial)
	if err != nil {
		if errors.Is(err, ErrAccountFull) {
			b.c.metrics.requestRejected("account_full")
			b.log.Warn("character creation failed, account full")
			return ErrAccountFull
		}
		b.c.metrics.requestRejected("storage")
		b.log.Error("character creation failed, slot allocation", "err", err)
		return fmt.Errorf("allocating character slot: %w", err)
	}

	e, err := model.NewEntity(serial, b.req.Session.Account)
	if err != nil {
		// serial and account are checked above, this cannot fail
		return fmt.Errorf("creating entity: %w", err)
	}
	b.entity = e
	b.slot = slot
	b.res.Serial = serial
	b.res.SlotIndex = slot.Index
	return nil
}

// cancelSlot gives the reserved slot back after a failed placement.
// It runs even when ctx is already canceled.
func (b *build) cancelSlot(ctx context.Context) {
	serial := b.entity.Serial()
	ok, err := b.c.slots.CancelSlot(context.WithoutCancel(ctx), b.req.Session.Account, serial)
	if err != nil {
		b.log.Error("character slot release failed", "serial", serial, "err", err)
		return
	}
	if !ok {
		b.log.Warn("character slot already released", "serial", serial)
		return
	}
	b.res.SlotCanceled = true
}

func (b *build) assignIdentity() {
	e := b.entity
	e.SetAccessLevel(b.slot.Account.AccessLevel)
	e.SetFemale(b.req.Female)
	e.SetProfession(b.res.Profession)
	e.SetHunger(StartingHunger)
	e.SetAutoRenewInsurance(true)
	e.SetSkillCaps(b.c.cfg.SkillCap)

	// Young status: first character ever created on a young account, player access, not on Siege.
	if e.IsPlayer() && b.slot.Account.Young && b.slot.Created == 0 && !b.c.cfg.Siege {
		e.SetYoung(true)
	}

	name := strings.TrimSpace(b.req.Name)
	if !b.c.cfg.NamePolicy.Allows(name) {
		b.log.Debug("name rejected, using fallback", "name", b.req.Name)
		name = FallbackName
		b.res.NameReplaced = true
		b.c.metrics.nameReplaced()
	}
	e.SetName(name)
}

func (b *build) configureBody() {
	e := b.entity

	race := data.GetRace(b.req.Race)
	if race == nil || !b.c.cfg.Expansion.AtLeast(race.RequiredExpansion) {
		race = data.DefaultRace()
	}
	e.SetRace(race)
	e.SetHue(b.req.Hue | data.BodyHueFlag)

	// Only the default race may be created.
	if !e.Race().IsDefault() {
		e.SetRace(data.DefaultRace())
		e.SetHue(0)
		b.res.RaceDowngraded = true
		b.c.metrics.raceDowngraded()
		b.log.Warn("character creation partially failed, non-human race", "race", race.Name)
	}

	b.c.provision.GiveBasics(e)
}

func (b *build) assignStats() {
	stats, fellBack := AssignStats(b.res.Profession, b.req.Str, b.req.Dex, b.req.Int, BudgetFor(b.req.Session))
	if fellBack {
		b.c.metrics.statFallback()
		b.log.Debug("stat request out of bounds, using minimum",
			"str", b.req.Str, "dex", b.req.Dex, "int", b.req.Int)
	}
	b.entity.InitStats(stats.Str, stats.Dex, stats.Int)
	b.res.Stats = stats
	b.res.StatsFellBack = fellBack
}

func (b *build) assignSkills() {
	skills, discarded := FinalizeSkills(b.res.Profession, b.req.Skills)
	if discarded {
		b.c.metrics.skillsDropped()
		b.log.Debug("invalid skill distribution, no skills assigned", "skills", len(b.req.Skills))
	}
	b.res.SkillsDiscarded = discarded
	b.res.Skills = AssignSkills(b.entity, b.res.Profession, skills, b.c.provision)
}

func (b *build) assignCosmetics() {
	e := b.entity
	race, female := e.Race(), e.Female()

	if race.ValidateHair(female, b.req.HairID) {
		e.SetHair(model.Appearance{ItemID: b.req.HairID, Hue: b.req.HairHue})
	}
	if race.ValidateFacialHair(female, b.req.BeardID) {
		e.SetBeard(model.Appearance{ItemID: b.req.BeardID, Hue: b.req.BeardHue})
	}

	if b.req.FaceID > 0 && race.ValidateFace(female, b.req.FaceID) {
		e.SetFace(model.Appearance{ItemID: b.req.FaceID, Hue: b.req.FaceHue})
	} else {
		e.SetFace(model.Appearance{ItemID: race.RandomFace(female, b.c.rnd), Hue: e.Hue()})
	}
}

func (b *build) grantEquipment() {
	e := b.entity
	if data.IsBasicProfession(b.res.Profession) {
		b.c.provision.GiveClothing(e, b.req.ShirtHue, b.req.PantsHue)
	}
	if e.Young() {
		b.c.provision.GiveYoungTicket(e)
	}
}

// startLocation maps the requested city to a location. Siege shards have no
// Trammel: its cities are moved to the same spot in Felucca.
func (b *build) startLocation() model.Location {
	city := b.req.City
	facet := city.Facet
	if b.c.cfg.Siege && facet == data.FacetTrammel {
		facet = data.FacetFelucca
	}
	return model.LocationAt(city.Location, facet)
}
