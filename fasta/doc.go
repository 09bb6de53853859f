/*
Package fasta provides routines for reading and writing FASTA files, along
with helpers for pulling out just the sequence labels, which is all that is
needed to compare a sequence database with the hits reported by a search.

The format used is the one described by NCBI:
http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml

By default, sequences are checked to make sure they contain only valid
characters: a-z, A-Z, * and -. All lowercases letters are translated to their
upper case equivalent.
*/
package fasta
