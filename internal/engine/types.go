package engine

type PlanType string

const (
	PlanTypeGame      PlanType = "game"
	PlanTypeEarning   PlanType = "earning"
	PlanTypeChallenge PlanType = "challenge"
)

func (t PlanType) IsValid() bool {
	switch t {
	case PlanTypeGame, PlanTypeEarning, PlanTypeChallenge:
		return true
	default:
		return false
	}
}
