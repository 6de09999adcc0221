package domain

// DocType is a document type label from the closed review taxonomy.
type DocType string

// The closed taxonomy of ADGM filing document types.
// Declaration order doubles as the fixed priority order used to break
// classification score ties.
const (
	DocTypeArticlesOfAssociation         DocType = "ArticlesOfAssociation"
	DocTypeMemorandumOfAssociation       DocType = "MemorandumOfAssociation"
	DocTypeBoardResolution               DocType = "BoardResolution"
	DocTypeShareholderResolution         DocType = "ShareholderResolution"
	DocTypeIncorporationApplication      DocType = "IncorporationApplication"
	DocTypeUBODeclaration                DocType = "UBODeclaration"
	DocTypeRegisterOfMembers             DocType = "RegisterOfMembers"
	DocTypeRegisterOfDirectors           DocType = "RegisterOfDirectors"
	DocTypeRegisterOfMembersAndDirectors DocType = "RegisterOfMembersAndDirectors"
	DocTypeChangeOfAddressNotice         DocType = "ChangeOfAddressNotice"
	DocTypeEmploymentContract            DocType = "EmploymentContract"
	DocTypeCompliancePolicy              DocType = "CompliancePolicy"
	DocTypeCommercialAgreement           DocType = "CommercialAgreement"
	DocTypeLicensingFiling               DocType = "LicensingFiling"

	// DocTypeUnknown marks a document no candidate type cleared the
	// confidence floor for. It is never a classification candidate.
	DocTypeUnknown DocType = "Unknown"
)

// Taxonomy returns the classification candidates in priority order.
// DocTypeUnknown is excluded; it is a degradation outcome, not a candidate.
func Taxonomy() []DocType {
	return []DocType{
		DocTypeArticlesOfAssociation,
		DocTypeMemorandumOfAssociation,
		DocTypeBoardResolution,
		DocTypeShareholderResolution,
		DocTypeIncorporationApplication,
		DocTypeUBODeclaration,
		DocTypeRegisterOfMembers,
		DocTypeRegisterOfDirectors,
		DocTypeRegisterOfMembersAndDirectors,
		DocTypeChangeOfAddressNotice,
		DocTypeEmploymentContract,
		DocTypeCompliancePolicy,
		DocTypeCommercialAgreement,
		DocTypeLicensingFiling,
	}
}

// Priority returns the tie-break rank of t within the taxonomy.
// Lower rank wins ties. Unknown and unrecognised labels rank last.
func (t DocType) Priority() int {
	for i, c := range Taxonomy() {
		if c == t {
			return i
		}
	}
	return len(Taxonomy())
}

// Valid reports whether t is in the closed taxonomy or Unknown.
func (t DocType) Valid() bool {
	if t == DocTypeUnknown {
		return true
	}
	return t.Priority() < len(Taxonomy())
}

// ParseDocType maps a label string to a DocType.
// Returns ErrUnknownDocType for labels outside the closed taxonomy.
func ParseDocType(s string) (DocType, error) {
	t := DocType(s)
	if !t.Valid() {
		return "", ErrUnknownDocType
	}
	return t, nil
}
