package types

// Enum values for Stake State
type StakeState string

const (
	StateActive    StakeState = "ACTIVE"
	StateWithdrawn StakeState = "WITHDRAWN"
)

func (s StakeState) String() string {
	return string(s)
}

// QualifiedStatesForWithdraw returns the states a stake must currently be in
// for a withdrawal to be admitted. Only ACTIVE stakes can be withdrawn;
// everything else means the record was already settled.
func QualifiedStatesForWithdraw() []StakeState {
	return []StakeState{StateActive}
}
