package model

import (
	"github.com/carehome/roster-solver/internal/catalogue"
	"github.com/carehome/roster-solver/internal/solverbackend"
)

// setObjective builds the weighted linear objective of §4.5:
//
//	W_shortage · Σ shortage
//	+ W_overstaff_gt_need_plus1 · Σ over
//	+ Σ_p Σ_{d in reqOff(p)} w_p · violateOff[p,d]
//
// plus the reserved balance/fill terms when their weights are
// non-zero (§4.5, §9 "MUST be documented if activated" — documented in
// DESIGN.md).
func (m *Model) setObjective() {
	var terms []solverbackend.Term
	w := m.Input.Weights

	for d := 1; d <= m.Input.Days; d++ {
		for _, slot := range catalogue.Slots {
			terms = append(terms, solverbackend.Term{Var: m.Shortage(d, slot), Coeff: int64(w.Shortage)})
			terms = append(terms, solverbackend.Term{Var: m.Over(d, slot), Coeff: int64(w.OverstaffGtNeedPlus1)})
		}
	}

	for pi, p := range m.Input.People {
		weight := w.RequestedOffViolation
		if p.RequestedOffWeight > 0 {
			weight = p.RequestedOffWeight
		}
		for d := range p.RequestedOffDates {
			v, ok := m.ViolateOff(pi, d)
			if !ok {
				continue
			}
			terms = append(terms, solverbackend.Term{Var: v, Coeff: int64(weight)})
		}
	}

	if w.BalanceWorkdays > 0 {
		terms = append(terms, m.balanceWorkdaysTerms(w.BalanceWorkdays)...)
	}
	if w.FillPreferenceBonus > 0 {
		terms = append(terms, m.fillPreferenceTerms(w.FillPreferenceBonus)...)
	}

	m.Backend.SetObjectiveMinimize(terms)
}

// balanceWorkdaysTerms adds the same flat penalty, weight, to every
// assignment variable of every person. It does not compare a person's
// assignment count with other people's or with monthlyMax, so it
// discourages assignments overall rather than evening them out across
// staff, and its size relative to the shortage weight is whatever the
// two weights are set to. This is a reserved term (§4.5): it only
// participates when weights.balance is set above its default of 0.
func (m *Model) balanceWorkdaysTerms(weight int) []solverbackend.Term {
	var terms []solverbackend.Term
	for pi, p := range m.Input.People {
		for _, code := range m.canWorkOrdered(p) {
			for d := 1; d <= m.Input.Days; d++ {
				v, _ := m.X(pi, d, code)
				terms = append(terms, solverbackend.Term{Var: v, Coeff: int64(weight)})
			}
		}
	}
	return terms
}

// fillPreferenceTerms gives a small negative cost (a bonus) to
// assignments covering the 7-9 and 9-15 slots, nudging the solver to
// prefer filling those slots exactly rather than leaving spare capacity
// elsewhere when multiple zero-shortage solutions are tied. Reserved
// term, §4.5.
func (m *Model) fillPreferenceTerms(weight int) []solverbackend.Term {
	var terms []solverbackend.Term
	preferredSlots := map[string]bool{"7-9": true, "9-15": true}
	for pi, p := range m.Input.People {
		for _, code := range m.canWorkOrdered(p) {
			shift, ok := m.Input.Shifts[code]
			if !ok {
				continue
			}
			coversPreferred := false
			for slot := range preferredSlots {
				if catalogue.CoversSlot(shift, slot) {
					coversPreferred = true
					break
				}
			}
			if !coversPreferred {
				continue
			}
			for d := 1; d <= m.Input.Days; d++ {
				v, _ := m.X(pi, d, code)
				terms = append(terms, solverbackend.Term{Var: v, Coeff: -int64(weight)})
			}
		}
	}
	return terms
}
