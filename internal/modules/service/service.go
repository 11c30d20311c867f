package service

import (
	"context"
	"time"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/modules/member"
	"servicehp-backend/internal/modules/stock"
)

// Service defines repair-job business logic.
type Service interface {
	ListServices(ctx context.Context) ([]*ServiceRecord, error)
	CreateService(ctx context.Context, req CreateServiceRequest) (*ServiceRecord, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status string) (*ServiceRecord, error)
	DeleteService(ctx context.Context, id int64) error
	ListReceivables(ctx context.Context) ([]*ServiceRecord, error)
	Track(ctx context.Context, phone, date string) (*TrackResult, error)
}

type service struct {
	repo       Repository
	memberRepo member.Repository
	stockRepo  stock.Repository
}

// NewService composes the job repository with the member and stock
// repositories needed for the cross-entity checks at creation time.
func NewService(repo Repository, memberRepo member.Repository, stockRepo stock.Repository) Service {
	return &service{repo: repo, memberRepo: memberRepo, stockRepo: stockRepo}
}

func (s *service) ListServices(ctx context.Context) ([]*ServiceRecord, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateService(ctx context.Context, req CreateServiceRequest) (*ServiceRecord, error) {
	if req.ServiceDate == "" || req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, apperr.Validation("service_date, customer_name and customer_phone are required")
	}
	date, err := time.Parse("2006-01-02", req.ServiceDate)
	if err != nil {
		return nil, apperr.Validation("service_date must be YYYY-MM-DD")
	}
	if req.Price < 0 {
		return nil, apperr.Validation("price must not be negative")
	}

	// A membership claim resolves to a member id only when an active member
	// has this exact phone; a miss is not an error.
	var memberID *int64
	if req.MemberStatus == StatusMember {
		m, err := s.memberRepo.FindActiveByPhone(ctx, req.CustomerPhone)
		if err != nil {
			return nil, err
		}
		if m != nil {
			memberID = &m.ID
		}
	}

	// A supplied SKU must exist in stocks or the insert is aborted.
	if req.StockSKU != "" {
		if _, err := s.stockRepo.GetBySKU(ctx, req.StockSKU); err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				return nil, apperr.Validation("SKU not found")
			}
			return nil, err
		}
	}

	status := req.PaymentStatus
	if status == "" {
		status = PaymentUnpaid
	}
	if status != PaymentPaid && status != PaymentUnpaid {
		return nil, apperr.Validation("payment_status must be Paid or Unpaid")
	}

	memberStatus := req.MemberStatus
	if memberStatus == "" {
		memberStatus = StatusNonMember
	}

	return s.repo.Insert(ctx, &ServiceRecord{
		ServiceDate:   date,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceType:   req.ServiceType,
		Price:         req.Price,
		StockSKU:      req.StockSKU,
		MemberStatus:  memberStatus,
		PaymentStatus: status,
		Notes:         req.Notes,
		MemberID:      memberID,
	})
}

func (s *service) UpdatePaymentStatus(ctx context.Context, id int64, status string) (*ServiceRecord, error) {
	if status != PaymentPaid && status != PaymentUnpaid {
		return nil, apperr.Validation("payment_status must be Paid or Unpaid")
	}
	return s.repo.UpdatePaymentStatus(ctx, id, status)
}

func (s *service) DeleteService(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListReceivables(ctx context.Context) ([]*ServiceRecord, error) {
	return s.repo.ListUnpaid(ctx)
}

// Track looks up jobs by customer phone. The match is fuzzy: normalized
// query digits contained in the stored phone with separators stripped.
func (s *service) Track(ctx context.Context, phone, date string) (*TrackResult, error) {
	if phone == "" {
		return nil, apperr.Validation("phone query param required")
	}
	digits := NormalizePhone(phone)
	if digits == "" {
		return nil, apperr.Validation("phone must contain digits")
	}

	services, err := s.repo.FindByNormalizedPhone(ctx, digits, date)
	if err != nil {
		return nil, err
	}
	suggestions, err := s.repo.DatesByNormalizedPhone(ctx, digits)
	if err != nil {
		return nil, err
	}
	return &TrackResult{Services: services, Suggestions: suggestions}, nil
}
