// Package pedigree turns noisy OCR transcriptions of paper rabbit
// pedigree/registration cards into structured per-animal records. The
// pipeline is a strict chain: Normalize repairs known OCR misreads of the
// card's field labels, Segment splits the cleaned text into per-animal
// blocks (subject, sire, dam), and Extract pulls typed fields out of one
// block with tolerant pattern matching. Every stage is a pure function that
// never fails; a pattern that does not match simply leaves its field empty.
package pedigree
