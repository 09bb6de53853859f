/*
Package nhmmer is an application controller for the nhmmer program from the
HMMER 3.1 suite, which implements DNA homology search with profile HMMs.

nhmmer is hosted at http://hmmer.janelia.org/software. If it is used, the
following paper should be cited:

	Wheeler T.J. and Eddy S.R., "nhmmer: DNA homology search with profile
	HMMs", Bioinformatics, 2013, 29(19):2487-9.

The package does no searching itself. A Config describes one invocation,
Config.Args turns it into an argument list, and Config.Run executes nhmmer
and waits for it. Only six nhmmer options are supported (see Parameters);
anything else is rejected before a process is started.

When Config.Artifacts is set, Run also reads the hit table written with
--tblout and reports every sequence in the database that had no hit. These
are called artifacts: sequences that failed to match the profile.

Each call to Run is independent and the package holds no state, so Run may
be called from multiple goroutines as long as each call writes to its own
output paths.
*/
package nhmmer
