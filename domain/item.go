// Package domain contains core concepts of the potluck sign-up system.
// This file defines Item records and the section enumeration.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"
	"time"
)

// Section is one of the four fixed meal categories an item belongs to.
type Section string

const (
	SectionAppetizers Section = "appetizers"
	SectionEntree     Section = "entree"
	SectionDessert    Section = "dessert"
	SectionBeverages  Section = "beverages"
)

// Sections lists every allowed section, in menu order.
var Sections = []Section{
	SectionAppetizers,
	SectionEntree,
	SectionDessert,
	SectionBeverages,
}

// ParseSection normalizes raw input (trimmed, lowercased) into a Section.
// The boolean reports membership in the allowed set.
func ParseSection(raw string) (Section, bool) {
	normalized := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range Sections {
		if s == normalized {
			return normalized, true
		}
	}
	return "", false
}

// Item represents a single potluck sign-up record.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Dish      string    `json:"dish"`
	Section   Section   `json:"section"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
