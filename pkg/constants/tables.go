package constants

// Table names used by the repositories and the schema migration.
const (
	TableUser     = "users"
	TableCampaign = "campaigns"
	TableTag      = "tags"
	TableLead     = "leads"
	TableLeadTag  = "lead_tags"
	TableLabel    = "labels"
	TableTemplate = "templates"
)

// AllTables lists every table in creation order (parents before children).
var AllTables = []string{
	TableUser,
	TableCampaign,
	TableTag,
	TableLead,
	TableLeadTag,
	TableLabel,
	TableTemplate,
}
