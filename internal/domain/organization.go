package domain

import "time"

// BrandRecord is one row of an organization's brand catalog: a brand the org
// monitors, with any recorded spelling variants. IsOrgBrand distinguishes the
// org's own brands from known competitors.
type BrandRecord struct {
	Name       string   `db:"name"       json:"name"`
	Variants   []string `db:"-"          json:"variants"`
	IsOrgBrand bool     `db:"is_org_brand" json:"is_org_brand"`
}

// OrgMetadata holds the free-form organization metadata consumed by the
// gazetteer builder.
type OrgMetadata struct {
	CompetitorsSeed []string `json:"competitors_seed"`
}

// Organization is the monitored account. Name and Domain feed own-brand alias
// generation; Metadata carries the seed competitor list.
type Organization struct {
	ID       string      `db:"id"     json:"id"`
	Name     string      `db:"name"   json:"name"`
	Domain   string      `db:"domain" json:"domain"`
	Metadata OrgMetadata `db:"-"      json:"metadata"`
}

// ResponseRow is a historical AI-response row used to bootstrap the
// gazetteer: competitor names previously detected for the org, with the run
// timestamp that scopes the rolling window.
type ResponseRow struct {
	Competitors []string  `db:"-"      json:"competitors"`
	RunAt       time.Time `db:"run_at" json:"run_at"`
}
