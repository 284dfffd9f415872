// Package floquet builds the extended-Hilbert-space effective Hamiltonian
// of a periodically driven qubit and labels its eigenstates.
//
// A time-periodic drive problem becomes time-independent by tensoring the
// qubit's energy eigenbasis with a drive photon-number space -M..M:
//
//	H_eff(ω, Ω) = H₀ ⊗ I + (Ω/2)·(coupling ⊗ cosθ) + ω·(I ⊗ M)
//
// Eigenvalues of H_eff are quasi-energies. At zero amplitude the spectrum
// is exactly {E_α + m·ω}; [DrivenQubit.AssignStateIndices] exploits this to
// attach physical (level, photon) labels to unlabeled eigenpairs, which
// amplitude sweeps then reuse to follow a level through hybridization.
package floquet
