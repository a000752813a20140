package methods

import "goscore/domain/scoring"

// Info describes a method for enumeration
type Info struct {
	ID          scoring.MethodID `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
}

// Lookup returns the implementation for id. Every scoring.MethodID must have a
// case here.
func Lookup(id scoring.MethodID) (Method, bool) {
	switch id {
	case scoring.MethodBellCurve:
		return NewBellCurveMethod(), true
	case scoring.MethodConditionalFlag:
		return NewConditionalFlagMethod(), true
	case scoring.MethodOneSided:
		return NewOneSidedMethod(), true
	case scoring.MethodZeroToOne:
		return NewZeroToOneMethod(), true
	case scoring.MethodDistribution:
		return NewDistributionMethod(), true
	case scoring.MethodSignificance:
		return NewSignificanceMethod(), true
	}
	return nil, false
}

// All lists every registered method in display order
func All() []Info {
	ids := scoring.MethodIDs()
	infos := make([]Info, 0, len(ids))
	for _, id := range ids {
		m, ok := Lookup(id)
		if !ok {
			continue
		}
		infos = append(infos, Info{ID: m.ID(), Name: m.Name(), Description: m.Description()})
	}
	return infos
}
