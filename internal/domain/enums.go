package domain

// FlashcardSource tells where a flashcard's content came from.
type FlashcardSource string

const (
	SourceManual   FlashcardSource = "manual"
	SourceAIFull   FlashcardSource = "ai-full"
	SourceAIEdited FlashcardSource = "ai-edited"
)

func (s FlashcardSource) String() string { return string(s) }

func (s FlashcardSource) IsValid() bool {
	switch s {
	case SourceManual, SourceAIFull, SourceAIEdited:
		return true
	}
	return false
}

// IsAI returns true for sources that must reference a generation.
func (s FlashcardSource) IsAI() bool {
	return s == SourceAIFull || s == SourceAIEdited
}

// ProposalStatus is the user's disposition of a generated proposal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

func (s ProposalStatus) String() string { return string(s) }

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalPending, ProposalAccepted, ProposalRejected:
		return true
	}
	return false
}

// ReviewStatus is the lifecycle state of a review session.
type ReviewStatus string

const (
	ReviewStatusReviewing ReviewStatus = "reviewing"
	ReviewStatusSaving    ReviewStatus = "saving"
	ReviewStatusSuccess   ReviewStatus = "success"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusReviewing, ReviewStatusSaving, ReviewStatusSuccess:
		return true
	}
	return false
}

// FlashcardSortField is a column flashcard listings can be ordered by.
type FlashcardSortField string

const (
	SortByCreatedAt FlashcardSortField = "created_at"
	SortByUpdatedAt FlashcardSortField = "updated_at"
	SortByFront     FlashcardSortField = "front"
)

func (f FlashcardSortField) String() string { return string(f) }

func (f FlashcardSortField) IsValid() bool {
	switch f {
	case SortByCreatedAt, SortByUpdatedAt, SortByFront:
		return true
	}
	return false
}

// SortOrder is the direction of a listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// GenerationErrorCode classifies a failed generation attempt.
type GenerationErrorCode string

const (
	GenErrAIService      GenerationErrorCode = "AI_SERVICE_ERROR"
	GenErrDatabaseInsert GenerationErrorCode = "DATABASE_INSERT_ERROR"
)

func (c GenerationErrorCode) String() string { return string(c) }

// EventType names a domain event published to the broker.
type EventType string

const (
	EventGenerationCompleted    EventType = "generation.completed"
	EventGenerationFailed       EventType = "generation.failed"
	EventPasswordResetRequested EventType = "password_reset.requested"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventGenerationCompleted, EventGenerationFailed, EventPasswordResetRequested:
		return true
	}
	return false
}
