package floquet

import "math"

// StateKey labels a composite bare state: qubit level α and signed drive
// photon number m.
type StateKey struct {
	Level  int
	Photon int
}

// AssignStateIndices diagonalizes the effective Hamiltonian at zero drive
// amplitude and maps every (level, photon) pair onto the eigenvalue index
// closest in energy to E_α + m·frequency. The mapping covers all
// qubitDim × (2·M_max+1) keys and is valid only for this frequency; it must
// be recomputed when the frequency changes.
//
// Ties (possible when the frequency is commensurate with level spacings)
// resolve to the first index achieving the minimum, which is deterministic
// for the ascending eigenvalue order.
func (d *DrivenQubit) AssignStateIndices(frequency float64) (map[StateKey]int, error) {
	vals, _, err := d.Eigensystem(frequency, 0)
	if err != nil {
		return nil, err
	}

	assignment := make(map[StateKey]int, d.Dim())
	for a, bare := range d.bareEnergies {
		for m := -d.mMax; m <= d.mMax; m++ {
			target := bare + float64(m)*frequency

			best := 0
			bestDist := math.Abs(target - vals[0])
			for i := 1; i < len(vals); i++ {
				dist := math.Abs(target - vals[i])
				if dist < bestDist {
					best = i
					bestDist = dist
				}
			}
			assignment[StateKey{Level: a, Photon: m}] = best
		}
	}
	return assignment, nil
}

// ZeroPhotonIndices restricts an assignment to photon number zero, returning
// one eigenvalue index per qubit level, ordered by level.
func (d *DrivenQubit) ZeroPhotonIndices(assignment map[StateKey]int) []int {
	idxs := make([]int, d.qubit.Dim())
	for a := range idxs {
		idxs[a] = assignment[StateKey{Level: a}]
	}
	return idxs
}
