// Package tracker keeps in-process operational statistics with windowed
// summaries, backing the metrics summary endpoint and alerting rules.
package tracker
