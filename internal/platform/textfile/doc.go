// Package textfile stores decks in the pipe-delimited line format
// ("term|definition|errors", one card per line) and writes plain text files
// such as session transcripts.
package textfile
