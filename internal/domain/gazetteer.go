package domain

// GazetteerSource identifies where a gazetteer entry came from.
// Build precedence is catalog > catalog_variant > seed > historical; first
// writer wins per normalized name. The global list is a separate lookup tier
// consulted at classification time, after the account gazetteer.
type GazetteerSource string

const (
	// SourceCatalog marks entries from the organization's explicit brand catalog.
	SourceCatalog GazetteerSource = "catalog"
	// SourceCatalogVariant marks recorded spelling variants of catalog brands.
	SourceCatalogVariant GazetteerSource = "catalog_variant"
	// SourceGlobalList marks entries from the static global company list.
	SourceGlobalList GazetteerSource = "global_list"
	// SourceHistorical marks terms recurring in the org's collected AI responses.
	SourceHistorical GazetteerSource = "historical"
	// SourceSeed marks entries from the organization metadata's seed competitor list.
	SourceSeed GazetteerSource = "seed"
)

// GazetteerEntry maps a known brand name to its canonical form within an
// organization's scope. Entries are immutable once the gazetteer is built.
type GazetteerEntry struct {
	Name           string          `json:"name"`
	NormalizedName string          `json:"normalized_name"`
	Source         GazetteerSource `json:"source"`
	IsOwnBrand     bool            `json:"is_own_brand"`
}
