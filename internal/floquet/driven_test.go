package floquet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floqsim/internal/qubit"
)

func testDriven(t *testing.T, mMax int) *DrivenQubit {
	t.Helper()

	tr, err := qubit.NewTransmon(qubit.Params{
		"Ej": 20, "Ec": 0.25, "ng": 0, "N_max_charge": 15, "N_max": 5,
	})
	require.NoError(t, err)

	coupling, err := tr.TransformToEigenbasis(tr.NumberOperator())
	require.NoError(t, err)

	d, err := NewDrivenQubit(qubit.Params{"M_max": float64(mMax)}, tr, coupling)
	require.NoError(t, err)
	return d
}

func TestNewDrivenQubitErrors(t *testing.T) {
	tr, err := qubit.NewTransmon(qubit.Params{
		"Ej": 20, "Ec": 0.25, "ng": 0, "N_max_charge": 10, "N_max": 4,
	})
	require.NoError(t, err)

	coupling, err := tr.TransformToEigenbasis(tr.NumberOperator())
	require.NoError(t, err)

	_, err = NewDrivenQubit(qubit.Params{}, tr, coupling)
	require.ErrorIs(t, err, qubit.ErrMissingParameter)

	_, err = NewDrivenQubit(qubit.Params{"M_max": -1}, tr, coupling)
	require.ErrorIs(t, err, qubit.ErrInvalidTruncation)

	// Charge-basis dimension (21) does not match the truncated working
	// basis (4); passing the untransformed operator must fail loudly.
	_, err = NewDrivenQubit(qubit.Params{"M_max": 3}, tr, tr.NumberOperator())
	require.ErrorIs(t, err, qubit.ErrDimensionMismatch)
}

func TestEffectiveHamiltonianDimensions(t *testing.T) {
	d := testDriven(t, 4)

	h := d.EffectiveHamiltonian(5.0, 0.1)
	r, c := h.Dims()
	require.Equal(t, d.Dim(), r)
	require.Equal(t, d.Dim(), c)
	require.Equal(t, 5*9, d.Dim())
}

func TestEffectiveHamiltonianSymmetric(t *testing.T) {
	d := testDriven(t, 3)
	h := d.EffectiveHamiltonian(5.3, 0.17)

	var ht mat.Dense
	ht.CloneFrom(h.T())
	require.True(t, mat.EqualApprox(h, &ht, 1e-12), "effective Hamiltonian must be symmetric")
}

func TestBareHamiltonianBlockStructure(t *testing.T) {
	d := testDriven(t, 2)

	// drive term off: eigenvalues are exactly E_α + m·ω for every level α
	// and photon number m, recovered through the index assignment.
	const freq = 5.41 // incommensurate with the transmon spacings
	assignment, err := d.AssignStateIndices(freq)
	require.NoError(t, err)

	vals, _, err := d.Eigensystem(freq, 0)
	require.NoError(t, err)

	for a, bare := range d.BareEnergies() {
		for m := -d.MMax(); m <= d.MMax(); m++ {
			idx := assignment[StateKey{Level: a, Photon: m}]
			want := bare + float64(m)*freq
			tol := 1e-9 * math.Max(1, math.Abs(want))
			require.InDeltaf(t, want, vals[idx], tol,
				"level %d photon %d: eigenvalue %v, want %v", a, m, vals[idx], want)
		}
	}
}

func TestAssignStateIndicesCoverage(t *testing.T) {
	d := testDriven(t, 3)

	assignment, err := d.AssignStateIndices(5.77)
	require.NoError(t, err)
	require.Len(t, assignment, 5*7)

	// Non-degenerate bare energies at an incommensurate frequency: no two
	// labels may claim the same eigenvalue index.
	seen := make(map[int]StateKey, len(assignment))
	for key, idx := range assignment {
		if prev, ok := seen[idx]; ok {
			t.Fatalf("index %d claimed by both %+v and %+v", idx, prev, key)
		}
		seen[idx] = key
	}
}

func TestZeroPhotonIndices(t *testing.T) {
	d := testDriven(t, 2)

	assignment, err := d.AssignStateIndices(5.41)
	require.NoError(t, err)

	idxs := d.ZeroPhotonIndices(assignment)
	require.Len(t, idxs, 5)

	vals, _, err := d.Eigensystem(5.41, 0)
	require.NoError(t, err)
	for a, idx := range idxs {
		require.InDelta(t, d.BareEnergies()[a], vals[idx], 1e-9)
	}
}

func TestEffectiveHamiltonianNotCached(t *testing.T) {
	d := testDriven(t, 2)

	h1 := d.EffectiveHamiltonian(5.0, 0.0)
	h2 := d.EffectiveHamiltonian(5.0, 0.3)
	if mat.Equal(h1, h2) {
		t.Error("distinct amplitudes produced identical Hamiltonians")
	}

	// Mutating a returned matrix must not leak into later calls.
	h1.Set(0, 0, 1234)
	h3 := d.EffectiveHamiltonian(5.0, 0.0)
	if h3.At(0, 0) == 1234 {
		t.Error("returned Hamiltonian shares state with the driven system")
	}
}

// The amplitude enters the effective Hamiltonian as Ω/2 times the drive
// operator: H_eff(ω, Ω) - H_eff(ω, 0) = (Ω/2)·(coupling ⊗ cosθ).
func TestDriveTermScale(t *testing.T) {
	d := testDriven(t, 3)

	const freq, amp = 5.3, 0.12
	var diff mat.Dense
	diff.Sub(d.EffectiveHamiltonian(freq, amp), d.EffectiveHamiltonian(freq, 0))

	var want mat.Dense
	want.Scale(amp/2, d.DriveOperator())
	require.True(t, mat.EqualApprox(&diff, &want, 1e-14),
		"drive term must scale as half the amplitude")
}

func TestDriveOperatorIndependentOfPoint(t *testing.T) {
	d := testDriven(t, 2)
	if !mat.Equal(d.DriveOperator(), d.DriveOperator()) {
		t.Error("drive operator not stable across calls")
	}
}

func TestCouplingCopied(t *testing.T) {
	tr, err := qubit.NewTransmon(qubit.Params{
		"Ej": 20, "Ec": 0.25, "ng": 0, "N_max_charge": 10, "N_max": 4,
	})
	if err != nil {
		t.Fatal(err)
	}
	coupling, err := tr.TransformToEigenbasis(tr.NumberOperator())
	if err != nil {
		t.Fatal(err)
	}

	d, err := NewDrivenQubit(qubit.Params{"M_max": 2}, tr, coupling)
	if err != nil {
		t.Fatal(err)
	}

	before := d.EffectiveHamiltonian(5, 0.2)
	coupling.Set(0, 0, 99)
	after := d.EffectiveHamiltonian(5, 0.2)
	if !mat.Equal(before, after) {
		t.Error("driven system observed caller mutation of the coupling operator")
	}
}

func TestEigensystemAscending(t *testing.T) {
	d := testDriven(t, 3)
	vals, vecs, err := d.Eigensystem(5.2, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[i-1] {
			t.Fatalf("eigenvalues not ascending at %d", i)
		}
	}
	r, c := vecs.Dims()
	if r != d.Dim() || c != d.Dim() {
		t.Fatalf("eigenvector matrix %dx%d, want %dx%d", r, c, d.Dim(), d.Dim())
	}
}

func TestAssignStateIndicesTieBreak(t *testing.T) {
	// At frequency 0 every photon sector collapses onto the bare energies,
	// so each (level, m) target is maximally degenerate. The first-match
	// policy must still produce a deterministic, repeatable assignment.
	d := testDriven(t, 2)

	a1, err := d.AssignStateIndices(0)
	require.NoError(t, err)
	a2, err := d.AssignStateIndices(0)
	require.NoError(t, err)

	require.Equal(t, a1, a2)
	for a := 0; a < d.Qubit().Dim(); a++ {
		base := a1[StateKey{Level: a, Photon: -d.MMax()}]
		for m := -d.MMax(); m <= d.MMax(); m++ {
			require.Equal(t, base, a1[StateKey{Level: a, Photon: m}],
				"degenerate targets must resolve to the first matching index")
		}
	}
}
