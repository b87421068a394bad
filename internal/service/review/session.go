package review

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Session is the review state machine of one generation. Transitions replace
// a proposal with an updated copy; callers never get references into it.
// A Session is not safe for concurrent use.
type Session struct {
	id           string
	userID       uuid.UUID
	generationID int64
	status       domain.ReviewStatus
	proposals    []domain.Proposal
	editingID    string
	createdAt    time.Time
	savingSince  time.Time
}

// NewSession starts a review over the given proposals. Every proposal enters
// as a pending, unedited ai-full card.
func NewSession(id string, userID uuid.UUID, generationID int64, proposals []domain.Proposal, now time.Time) *Session {
	ps := make([]domain.Proposal, len(proposals))
	for i, p := range proposals {
		p.Status = domain.ProposalPending
		p.Source = domain.SourceAIFull
		p.Edited = false
		ps[i] = p
	}

	return &Session{
		id:           id,
		userID:       userID,
		generationID: generationID,
		status:       domain.ReviewStatusReviewing,
		proposals:    ps,
		createdAt:    now,
	}
}

// FromState restores a session from its stored form.
func FromState(st domain.ReviewSession) *Session {
	return &Session{
		id:           st.ID,
		userID:       st.UserID,
		generationID: st.GenerationID,
		status:       st.Status,
		proposals:    slices.Clone(st.Proposals),
		editingID:    st.EditingID,
		createdAt:    st.CreatedAt,
		savingSince:  st.SavingSince,
	}
}

// State returns the stored form of the session.
func (s *Session) State() domain.ReviewSession {
	return domain.ReviewSession{
		ID:           s.id,
		UserID:       s.userID,
		GenerationID: s.generationID,
		Status:       s.status,
		Proposals:    s.Proposals(),
		EditingID:    s.editingID,
		CreatedAt:    s.createdAt,
		SavingSince:  s.savingSince,
	}
}

func (s *Session) ID() string                  { return s.id }
func (s *Session) UserID() uuid.UUID           { return s.userID }
func (s *Session) GenerationID() int64         { return s.generationID }
func (s *Session) Status() domain.ReviewStatus { return s.status }

// EditingID returns the id of the proposal selected for editing, or "".
func (s *Session) EditingID() string { return s.editingID }

// Proposals returns a copy of the proposals in their original order.
func (s *Session) Proposals() []domain.Proposal {
	return slices.Clone(s.proposals)
}

// Accept marks one proposal accepted.
func (s *Session) Accept(id string) error {
	return s.transition(id, func(p *domain.Proposal) { p.Status = domain.ProposalAccepted })
}

// Reject marks one proposal rejected.
func (s *Session) Reject(id string) error {
	return s.transition(id, func(p *domain.Proposal) { p.Status = domain.ProposalRejected })
}

// AcceptAll marks every proposal accepted, edited ones included.
func (s *Session) AcceptAll() error {
	return s.setAll(domain.ProposalAccepted)
}

// RejectAll marks every proposal rejected.
func (s *Session) RejectAll() error {
	return s.setAll(domain.ProposalRejected)
}

// StartEdit selects a proposal for editing without changing it.
func (s *Session) StartEdit(id string) error {
	if err := s.ensureReviewing(); err != nil {
		return err
	}
	if s.indexOf(id) < 0 {
		return proposalNotFound(id)
	}
	s.editingID = id
	return nil
}

// CancelEdit drops the current edit selection. It is a no-op when nothing is
// being edited.
func (s *Session) CancelEdit() error {
	if err := s.ensureReviewing(); err != nil {
		return err
	}
	s.editingID = ""
	return nil
}

// SaveEdit overwrites front and back of a proposal. Editing implies
// acceptance: the proposal ends up accepted, edited and ai-edited.
func (s *Session) SaveEdit(id, front, back string) error {
	if err := s.ensureReviewing(); err != nil {
		return err
	}

	var errs domain.FieldErrors
	errs.CheckText("front", front, domain.MaxFrontLength)
	errs.CheckText("back", back, domain.MaxBackLength)
	if err := errs.Err(); err != nil {
		return err
	}

	err := s.transition(id, func(p *domain.Proposal) {
		p.Front = front
		p.Back = back
		p.Status = domain.ProposalAccepted
		p.Edited = true
		p.Source = domain.SourceAIEdited
	})
	if err != nil {
		return err
	}

	s.editingID = ""
	return nil
}

// AcceptedCount returns the number of accepted proposals.
func (s *Session) AcceptedCount() int {
	n := 0
	for _, p := range s.proposals {
		if p.Status == domain.ProposalAccepted {
			n++
		}
	}
	return n
}

// Counts splits the accepted proposals into unedited and edited.
func (s *Session) Counts() (unedited, edited int) {
	for _, p := range s.proposals {
		if p.Status != domain.ProposalAccepted {
			continue
		}
		if p.Edited {
			edited++
		} else {
			unedited++
		}
	}
	return unedited, edited
}

// Accepted maps the accepted proposals to flashcards ready for bulk creation.
func (s *Session) Accepted() []domain.FlashcardInput {
	out := make([]domain.FlashcardInput, 0, len(s.proposals))
	for _, p := range s.proposals {
		if p.Status != domain.ProposalAccepted {
			continue
		}

		source := domain.SourceAIFull
		if p.Edited {
			source = domain.SourceAIEdited
		}

		genID := s.generationID
		out = append(out, domain.FlashcardInput{
			Front:        p.Front,
			Back:         p.Back,
			Source:       source,
			GenerationID: &genID,
		})
	}
	return out
}

// BeginSave moves the session to saving and returns the cards to persist.
// Only one save may be in flight.
func (s *Session) BeginSave(now time.Time) ([]domain.FlashcardInput, error) {
	if err := s.ensureReviewing(); err != nil {
		return nil, err
	}

	cards := s.Accepted()
	if len(cards) == 0 {
		return nil, domain.NewValidationError("proposals", "at least one proposal must be accepted")
	}

	s.status = domain.ReviewStatusSaving
	s.savingSince = now
	s.editingID = ""
	return cards, nil
}

// FinishSave completes a save started by BeginSave. A failed save returns the
// session to reviewing with proposals unchanged.
func (s *Session) FinishSave(err error) {
	if s.status != domain.ReviewStatusSaving {
		return
	}
	s.savingSince = time.Time{}
	if err != nil {
		s.status = domain.ReviewStatusReviewing
		return
	}
	s.status = domain.ReviewStatusSuccess
}

// Reclaim returns a session stuck in saving to reviewing once the save has
// been running for at least staleAfter. It reports whether it did.
func (s *Session) Reclaim(now time.Time, staleAfter time.Duration) bool {
	if s.status != domain.ReviewStatusSaving || now.Sub(s.savingSince) < staleAfter {
		return false
	}
	s.status = domain.ReviewStatusReviewing
	s.savingSince = time.Time{}
	return true
}

func (s *Session) transition(id string, apply func(p *domain.Proposal)) error {
	if err := s.ensureReviewing(); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return proposalNotFound(id)
	}

	updated := s.proposals[idx]
	apply(&updated)
	s.proposals[idx] = updated
	return nil
}

func (s *Session) setAll(status domain.ProposalStatus) error {
	if err := s.ensureReviewing(); err != nil {
		return err
	}

	next := make([]domain.Proposal, len(s.proposals))
	for i, p := range s.proposals {
		p.Status = status
		next[i] = p
	}
	s.proposals = next
	return nil
}

func (s *Session) ensureReviewing() error {
	switch s.status {
	case domain.ReviewStatusReviewing:
		return nil
	case domain.ReviewStatusSaving:
		return fmt.Errorf("review %s is being saved: %w", s.id, domain.ErrConflict)
	default:
		return fmt.Errorf("review %s is %s: %w", s.id, s.status, domain.ErrConflict)
	}
}

func (s *Session) indexOf(id string) int {
	return slices.IndexFunc(s.proposals, func(p domain.Proposal) bool { return p.ID == id })
}

func proposalNotFound(id string) error {
	return fmt.Errorf("proposal %s: %w", id, domain.ErrNotFound)
}
