package review

// SaveEditInput holds the new text of an edited proposal.
type SaveEditInput struct {
	ProposalID string
	Front      string
	Back       string
}
