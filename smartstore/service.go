package smartstore

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Service ties the assembler to the submitting client. One Service per
// store; the category index and origin table behind it are process-scoped.
type Service struct {
	assembler *Assembler
	submitter Submitter
}

func NewService(assembler *Assembler, submitter Submitter) *Service {
	return &Service{assembler: assembler, submitter: submitter}
}

// Register assembles and submits a single-item listing.
func (s *Service) Register(ctx context.Context, input ListingInput) (SubmitResponse, error) {
	payload, err := s.assembler.Assemble(ctx, input)
	if err != nil {
		return SubmitResponse{}, err
	}

	res, err := s.submitter.SubmitListing(ctx, payload)
	if err != nil {
		return SubmitResponse{}, err
	}
	log.Info().
		Str("name", payload.OriginProduct.Name).
		Str("productNo", res.ProductNo).
		Msg("listing registered")
	return res, nil
}

// RegisterGroup assembles and submits a grouped listing.
func (s *Service) RegisterGroup(ctx context.Context, input GroupListingInput) (SubmitResponse, error) {
	payload, err := s.assembler.AssembleGroup(ctx, input)
	if err != nil {
		return SubmitResponse{}, err
	}

	res, err := s.submitter.SubmitGroupListing(ctx, payload)
	if err != nil {
		return SubmitResponse{}, err
	}
	log.Info().
		Str("groupName", payload.GroupName).
		Int("variants", len(payload.Products)).
		Str("productNo", res.ProductNo).
		Msg("grouped listing registered")
	return res, nil
}

// Assemble exposes dry-run assembly without submission.
func (s *Service) Assemble(ctx context.Context, input ListingInput) (*ListingPayload, error) {
	return s.assembler.Assemble(ctx, input)
}

// AssembleGroup exposes dry-run group assembly without submission.
func (s *Service) AssembleGroup(ctx context.Context, input GroupListingInput) (*GroupListingPayload, error) {
	return s.assembler.AssembleGroup(ctx, input)
}
