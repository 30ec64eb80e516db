package models

import "github.com/lib/pq"

// Package is a subscription tier users can upgrade to. The badge is the
// display label stamped onto a user record on purchase.
type Package struct {
	ID    int64          `db:"id" json:"id"`
	Name  string         `db:"name" json:"name"`
	Price float64        `db:"price" json:"price"`
	Badge string         `db:"badge" json:"badge"`
	Perks pq.StringArray `db:"perks" json:"perks"`
}
