package usecasecontract

// IValidator checks values against their declared constraints.
type IValidator interface {
	// ValidateStruct returns nil or an *entity.ValidationError listing every violation.
	ValidateStruct(v interface{}) error
}
