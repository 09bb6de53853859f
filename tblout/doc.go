/*
Package tblout provides routines for reading (but not writing) the parseable
hit tables written by nhmmer's --tblout option.

A table is whitespace delimited with one hit per line. Lines starting with '#'
are comments: the column headings at the top and the run summary (program,
version, query and target files, options) at the bottom. The first column of
every hit is the target sequence name, which is all ReadTargets looks at.
*/
package tblout
