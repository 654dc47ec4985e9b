package creation

// State is a step of the creation state machine.
type State int

const (
	StateReceivedRequest State = iota
	StateProfessionResolved
	StateSlotAllocated
	StateIdentityAssigned
	StateBodyConfigured
	StateStatsAssigned
	StateSkillsAssigned
	StateCosmeticsAssigned
	StateEquipmentGranted
	StatePlaced
	StateRejected
)

var stateNames = [...]string{
	StateReceivedRequest:    "ReceivedRequest",
	StateProfessionResolved: "ProfessionResolved",
	StateSlotAllocated:      "SlotAllocated",
	StateIdentityAssigned:   "IdentityAssigned",
	StateBodyConfigured:     "BodyConfigured",
	StateStatsAssigned:      "StatsAssigned",
	StateSkillsAssigned:     "SkillsAssigned",
	StateCosmeticsAssigned:  "CosmeticsAssigned",
	StateEquipmentGranted:   "EquipmentGranted",
	StatePlaced:             "Placed",
	StateRejected:           "Rejected",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// canTransition reports whether the state machine allows from → to.
// Every state advances to the next one; Rejected is only reachable from
// ReceivedRequest (no session) and SlotAllocated (no free slot).
// Create checks every step against it and logs a violation.
func canTransition(from, to State) bool {
	if to == StateRejected {
		return from == StateReceivedRequest || from == StateSlotAllocated
	}
	return from < StatePlaced && to == from+1
}
