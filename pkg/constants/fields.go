package constants

// Column names shared by the repositories.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
	FieldOwnerID   = "owner_id"

	// User Fields
	FieldUsername   = "username"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldIsActive   = "is_active"
	FieldIsStaff    = "is_staff"
	FieldDateJoined = "date_joined"
	FieldLastLogin  = "last_login"

	// Campaign Fields
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldBudget    = "budget"

	// Tag / Label Fields
	FieldColor = "color"

	// Lead Fields
	FieldProfileURL = "profile_url"
	FieldSource     = "source"
	FieldStatus     = "status"
	FieldIsArchived = "is_archived"
	FieldCampaignID = "campaign_id"
	FieldNotes      = "notes"

	// Lead-Tag join
	FieldLeadID = "lead_id"
	FieldTagID  = "tag_id"

	// Template Fields
	FieldLabelID = "label_id"
	FieldContent = "content"
)
