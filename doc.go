// SPDX-License-Identifier: MIT

// Package vowelspace measures how a poem moves through vowel space.
//
// Every line of an IPA transcription becomes a point whose coordinates are
// the shares of open, close and neutral vowels in that line. The sequence
// of points is the poem's trajectory; the distance between consecutive
// points, normalized by the poem's spread around its centroid, shows where
// the sound of the poem shifts.
//
// Subpackages:
//
//	space/      — three-dimensional points: distance, centroid, population stddev
//	phonetic/   — symbol classifier: ignore set, vowel categories, diphthong rule
//	text/       — a poem as lines: symbol tallies, probability tables, segmentation
//	trajectory/ — per-line distance from the previous line and its z-score
//	corpus/     — runs the pipeline over many poems into one table
//	source/     — poem discovery and line reading from a directory
//	tablecsv/   — CSV encoding of string records
//	config/     — YAML run configuration
//	metric/     — Prometheus run metrics
//
// The vowelspace command (cmd/vowelspace) ties them together:
//
//	texts/*IPAMusic.txt → statOutput/corpus-3DAnalysisByLine.csv
package vowelspace
