package allocator

// Error messages
const (
	ErrMsgInvalidCapacity  = "capacity must be non-negative"
	ErrMsgInvalidPrice     = "price must be non-negative"
	ErrMsgDuplicateItem    = "duplicate catalog item"
	ErrMsgInvalidRiskLevel = "invalid risk level"
)

// Risk level identifiers as stored alongside each portfolio
const (
	RiskLevelFull RiskLevel = "type1"
	RiskLevelHalf RiskLevel = "type2"
)
