package service

import (
	"context"
	"fmt"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CustomerServiceImpl implements ports.CustomerService.
type CustomerServiceImpl struct {
	db           ports.DBTransactor
	customerRepo ports.CustomerRepository
	invoiceRepo  ports.InvoiceRepository
	log          zerolog.Logger
}

// NewCustomerService creates a new CustomerServiceImpl.
func NewCustomerService(db ports.DBTransactor, customerRepo ports.CustomerRepository, invoiceRepo ports.InvoiceRepository, log zerolog.Logger) *CustomerServiceImpl {
	return &CustomerServiceImpl{db: db, customerRepo: customerRepo, invoiceRepo: invoiceRepo, log: log}
}

// CreateCustomer enforces (tenant, external_customer_id) uniqueness via the
// repository's unique constraint; a duplicate surfaces as a conflict.
func (s *CustomerServiceImpl) CreateCustomer(ctx context.Context, tenantID uuid.UUID, req ports.CreateCustomerRequest) (*domain.Customer, error) {
	if req.ExternalRef == "" {
		return nil, apperror.Validation("external_ref is required")
	}
	if req.Email == "" {
		return nil, apperror.Validation("email is required")
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		ID:                 uuid.New(),
		TenantID:           tenantID,
		ExternalCustomerID: req.ExternalRef,
		Email:              req.Email,
		DisplayName:        req.DisplayName,
		Delinquency:        domain.DelinquencyNone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.customerRepo.Create(ctx, tenantID, customer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create customer: %w", err))
	}

	s.log.Info().Str("tenant_id", tenantID.String()).Str("customer_id", customer.ID.String()).Msg("customer: created")
	return customer, nil
}

// GetCustomer returns a tenant-scoped customer by id.
func (s *CustomerServiceImpl) GetCustomer(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get customer: %w", err))
	}
	if customer == nil || customer.IsDeleted() {
		return nil, apperror.ErrNotFound("customer")
	}
	return customer, nil
}

// ListCustomers returns a filtered, paginated customer listing.
func (s *CustomerServiceImpl) ListCustomers(ctx context.Context, tenantID uuid.UUID, params ports.CustomerListParams) ([]domain.Customer, int64, error) {
	customers, total, err := s.customerRepo.List(ctx, tenantID, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list customers: %w", err))
	}
	return customers, total, nil
}

// RecomputeAging partitions the customer's outstanding invoices by
// days-past-due into the standard buckets (spec §4.2) and writes them
// atomically, setting the customer's balance to the sum of the buckets.
// Each invoice counts at its full TotalCents.
func (s *CustomerServiceImpl) RecomputeAging(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, asOf time.Time) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	customer, err := s.customerRepo.GetByIDForUpdate(ctx, tx, tenantID, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock customer: %w", err))
	}
	if customer == nil {
		return apperror.ErrNotFound("customer")
	}

	open, err := s.invoiceRepo.ListOpenForCustomer(ctx, tenantID, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list open invoices: %w", err))
	}

	var buckets domain.AgingBuckets
	for _, inv := range open {
		outstanding := inv.TotalCents
		days := inv.DaysPastDue(asOf)
		switch {
		case days <= 0:
			buckets.Current += outstanding
		case days <= 30:
			buckets.Days30 += outstanding
		case days <= 60:
			buckets.Days60 += outstanding
		case days <= 90:
			buckets.Days90 += outstanding
		default:
			buckets.Days90P += outstanding
		}
	}

	if err := s.customerRepo.UpdateAging(ctx, tx, tenantID, id, buckets, buckets.Sum()); err != nil {
		return apperror.InternalError(fmt.Errorf("update aging: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit aging recompute: %w", err))
	}
	return nil
}

// SoftDeleteCustomer retires a customer for retention without hard-deleting
// the row (spec §3.1).
func (s *CustomerServiceImpl) SoftDeleteCustomer(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error {
	if err := s.customerRepo.SoftDelete(ctx, tenantID, id); err != nil {
		return apperror.InternalError(fmt.Errorf("soft delete customer: %w", err))
	}
	return nil
}
