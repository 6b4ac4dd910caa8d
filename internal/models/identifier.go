package models

// Identifier is the shared set of person-identifying fields embedded in
// Report and Search. At least one field must be non-empty at creation;
// services enforce this before any write.
type Identifier struct {
	Name        string `gorm:"size:255;index" json:"name,omitempty"`
	InstagramID string `gorm:"size:255;index" json:"instagram_id,omitempty"`
	FacebookID  string `gorm:"size:255;index" json:"facebook_id,omitempty"`
	Email       string `gorm:"size:255;index" json:"email,omitempty"`
	PhoneNumber string `gorm:"size:32;index" json:"phone_number,omitempty"`
}

// IdentifierField pairs a field's wire name with its database column.
type IdentifierField struct {
	Name   string
	Column string
	Value  func(Identifier) string
}

// IdentifierFields lists the identifier fields in their fixed priority
// order. Match evaluation and matched_on resolution iterate this slice, so
// the order decides which field a multi-field match is attributed to.
var IdentifierFields = []IdentifierField{
	{Name: "name", Column: "name", Value: func(i Identifier) string { return i.Name }},
	{Name: "instagramId", Column: "instagram_id", Value: func(i Identifier) string { return i.InstagramID }},
	{Name: "facebookId", Column: "facebook_id", Value: func(i Identifier) string { return i.FacebookID }},
	{Name: "email", Column: "email", Value: func(i Identifier) string { return i.Email }},
	{Name: "phoneNumber", Column: "phone_number", Value: func(i Identifier) string { return i.PhoneNumber }},
}

// Empty reports whether every identifier field is blank.
func (i Identifier) Empty() bool {
	for _, f := range IdentifierFields {
		if f.Value(i) != "" {
			return false
		}
	}
	return true
}

// MatchedField returns the wire name of the first field, in priority order,
// that is non-empty on the query and exactly equal (case-sensitive) on the
// candidate. The boolean is false when no field matches.
func (i Identifier) MatchedField(candidate Identifier) (string, bool) {
	for _, f := range IdentifierFields {
		v := f.Value(i)
		if v != "" && v == f.Value(candidate) {
			return f.Name, true
		}
	}
	return "", false
}
