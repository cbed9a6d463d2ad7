// Package alerting fires operational alerts through pluggable delivery
// channels, with per-rule cooldowns and a global hourly rate limit.
package alerting
