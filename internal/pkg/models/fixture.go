package models

import "time"

// QuoteValue is one (outcome label, decimal price) pair inside a raw market.
// Odd stays a string until the normalizer parses it: providers send prices as
// quoted strings and malformed values must be droppable without failing the quote.
type QuoteValue struct {
	Label string `json:"value"`
	Odd   string `json:"odd"`
}

// RawMarketQuote is a single market as delivered by a quote source, before any
// vocabulary normalization. Validated once at ingestion; the analysis core never
// inspects untyped provider payloads.
type RawMarketQuote struct {
	Name   string       `json:"name"`
	Values []QuoteValue `json:"values"`
}

// Fixture is one scheduled match prepared for analysis. Quotes are ordered by
// source preference (preferred source first). Form and head-to-head summaries
// are optional and nil when the upstream fetch had nothing.
type Fixture struct {
	ID        int64
	Date      time.Time
	Kickoff   string // local "HH:MM" display time, may be empty
	League    LeagueRef
	HomeTeam  string
	AwayTeam  string
	Venue     string
	Quotes    []RawMarketQuote
	HomeForm  *TeamFormSummary
	AwayForm  *TeamFormSummary
	H2H       *HeadToHeadSummary
}
