package records

import "context"

// Service implements medical record viewing. Visibility is decided here:
// operators with admin access read the full set, everyone else reads only
// the records carrying their own email.
type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ListRecords returns the records visible to the caller.
func (s *Service) ListRecords(ctx context.Context, email string, admin bool) (*RecordListResponse, error) {
	var (
		recs []RecordResponse
		err  error
	)
	if admin {
		recs, err = s.repo.ListRecords(ctx)
	} else {
		recs, err = s.repo.ListByPatient(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	return &RecordListResponse{
		Success: true,
		Records: recs,
		Total:   len(recs),
	}, nil
}
