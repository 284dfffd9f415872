package floquet

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floqsim/internal/operators"
	"github.com/san-kum/floqsim/internal/qubit"
)

// DrivenQubit combines a bare qubit with a single periodic drive in the
// extended Hilbert space: qubit eigenbasis ⊗ drive photon basis
// -M_max..M_max. The drive-side operators and the composite bare basis are
// built once at construction; the effective Hamiltonian is assembled fresh
// on every call.
//
// The coupling operator is taken as given in the qubit's truncated working
// basis. A charge-basis operator must be passed through
// [qubit.System.TransformToEigenbasis] first; this obligation is not
// validated here, and skipping it yields a numerically valid but physically
// wrong effective Hamiltonian.
type DrivenQubit struct {
	qubit    qubit.System
	coupling *mat.Dense
	mMax     int
	driveDim int

	driveNumber   *mat.Dense
	driveCos      *mat.Dense
	driveRaise    *mat.Dense
	driveLower    *mat.Dense
	driveIdentity *mat.Dense

	bareEnergies []float64  // ground-zeroed qubit levels
	bareBasis    *mat.Dense // column α: qubit eigenstate α ⊗ zero-photon state
}

// NewDrivenQubit builds the drive-mode operators and composite bare basis.
// Required drive parameter: M_max (photon-number half range).
func NewDrivenQubit(params qubit.Params, q qubit.System, coupling mat.Matrix) (*DrivenQubit, error) {
	if !params.Has("M_max") {
		return nil, fmt.Errorf("%w: M_max", qubit.ErrMissingParameter)
	}
	mMax := int(params["M_max"])
	if mMax < 0 {
		return nil, fmt.Errorf("%w: M_max = %d", qubit.ErrInvalidTruncation, mMax)
	}

	r, c := coupling.Dims()
	if r != c || r != q.Dim() {
		return nil, fmt.Errorf("%w: coupling is %dx%d, qubit working basis is %d", qubit.ErrDimensionMismatch, r, c, q.Dim())
	}

	d := &DrivenQubit{
		qubit:    q,
		coupling: mat.DenseCopyOf(coupling),
		mMax:     mMax,
		driveDim: 2*mMax + 1,
	}
	if err := d.buildDriveOperators(); err != nil {
		return nil, err
	}
	d.buildBareBasis()
	return d, nil
}

func (d *DrivenQubit) buildDriveOperators() error {
	number, err := operators.Number(d.mMax)
	if err != nil {
		return err
	}
	raise, err := operators.Raise(d.mMax)
	if err != nil {
		return err
	}
	lower, err := operators.Lower(d.mMax)
	if err != nil {
		return err
	}
	cos, err := operators.Hopping(d.mMax)
	if err != nil {
		return err
	}

	d.driveNumber = number
	d.driveRaise = raise
	d.driveLower = lower
	d.driveCos = cos
	d.driveIdentity = operators.Identity(d.driveDim)
	return nil
}

// buildBareBasis tensors every qubit eigenstate with the zero-photon drive
// state (the midpoint basis index) and records the ground-zeroed qubit
// level as its bare energy. In the eigenbasis the qubit eigenstates are the
// standard unit vectors, so column α has a single 1 at composite index
// α·driveDim + mMax.
func (d *DrivenQubit) buildBareBasis() {
	qDim := d.qubit.Dim()
	levels := d.qubit.Levels()
	ground := levels[0]

	d.bareEnergies = make([]float64, qDim)
	d.bareBasis = mat.NewDense(qDim*d.driveDim, qDim, nil)
	for a := 0; a < qDim; a++ {
		d.bareEnergies[a] = levels[a] - ground
		d.bareBasis.Set(a*d.driveDim+d.mMax, a, 1)
	}
}

// MMax returns the drive photon-number half range.
func (d *DrivenQubit) MMax() int { return d.mMax }

// Dim returns the extended-space dimension qubitDim × (2·M_max+1).
func (d *DrivenQubit) Dim() int { return d.qubit.Dim() * d.driveDim }

// Qubit returns the underlying bare system.
func (d *DrivenQubit) Qubit() qubit.System { return d.qubit }

// BareEnergies returns the ground-zeroed qubit levels used as labeling
// targets. The slice is shared; callers must not modify it.
func (d *DrivenQubit) BareEnergies() []float64 { return d.bareEnergies }

// BareHamiltonian returns qubit eigenbasis Hamiltonian ⊗ drive identity.
func (d *DrivenQubit) BareHamiltonian() *mat.Dense {
	return operators.Kron(d.qubit.EigenbasisHamiltonian(), d.driveIdentity)
}

// DriveOperator returns coupling ⊗ cosθ, the amplitude-independent operator
// factor of the drive term.
func (d *DrivenQubit) DriveOperator() *mat.Dense {
	return operators.Kron(d.coupling, d.driveCos)
}

// EffectiveHamiltonian assembles the Floquet effective Hamiltonian
//
//	H_eff = H_bare ⊗ I + (Ω/2)·(coupling ⊗ cosθ) + frequency·(I ⊗ M)
//
// for the given drive frequency and amplitude Ω (GHz). The amplitude
// parametrizes the physical drive (Ω/2)·cos(ωt)·coupling, so each
// photon-shift sideband carries a matrix element of Ω/4 per unit coupling.
// H_eff is a pure function of its arguments plus fixed construction state
// and is never cached.
func (d *DrivenQubit) EffectiveHamiltonian(frequency, amplitude float64) *mat.Dense {
	h := d.BareHamiltonian()

	var drive mat.Dense
	drive.Scale(amplitude/2, d.DriveOperator())
	h.Add(h, &drive)

	var photon mat.Dense
	photon.Scale(frequency, operators.Kron(operators.Identity(d.qubit.Dim()), d.driveNumber))
	h.Add(h, &photon)

	return h
}

// Eigensystem diagonalizes the effective Hamiltonian at the given point.
// Eigenvalues ascend; eigenvector columns match.
func (d *DrivenQubit) Eigensystem(frequency, amplitude float64) ([]float64, *mat.Dense, error) {
	return operators.Eigh(d.EffectiveHamiltonian(frequency, amplitude))
}
