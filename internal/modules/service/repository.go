package service

import "context"

// Repository defines data access for repair jobs.
type Repository interface {
	List(ctx context.Context) ([]*ServiceRecord, error)
	GetByID(ctx context.Context, id int64) (*ServiceRecord, error)
	Insert(ctx context.Context, svc *ServiceRecord) (*ServiceRecord, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status string) (*ServiceRecord, error)
	Delete(ctx context.Context, id int64) error
	ListUnpaid(ctx context.Context) ([]*ServiceRecord, error)
	// FindByNormalizedPhone matches the digits against stored phones with
	// spaces and hyphens stripped (substring match), optionally restricted
	// to an exact service date (YYYY-MM-DD).
	FindByNormalizedPhone(ctx context.Context, digits, date string) ([]*ServiceRecord, error)
	// DatesByNormalizedPhone returns the distinct service dates for the
	// matched phone pattern, newest first.
	DatesByNormalizedPhone(ctx context.Context, digits string) ([]string, error)
}
