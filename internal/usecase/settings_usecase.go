package usecase

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
	"installworks/internal/domain/lifecycle"
	"installworks/internal/usecase/interfaces"
)

// ISettingsUseCase manages the tenant-wide payment policy. The policy is
// read at order materialization only; editing it never touches deposits
// already frozen on existing orders.

type ISettingsUseCase interface {
	GetPaymentPolicy(ctx context.Context) (entities.PaymentPolicy, error)
	PutPaymentPolicy(ctx context.Context, p entities.PaymentPolicy) (entities.PaymentPolicy, error)
}

type SettingsUseCase struct {
	repo interfaces.IPaymentPolicyRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.IPaymentPolicyRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) GetPaymentPolicy(ctx context.Context) (entities.PaymentPolicy, error) {
	return u.repo.Get(ctx)
}

func (u *SettingsUseCase) PutPaymentPolicy(ctx context.Context, p entities.PaymentPolicy) (entities.PaymentPolicy, error) {
	// Resolving against a probe total exercises the same validation the
	// materializer will apply, so a policy that cannot produce a deposit is
	// rejected at save time.
	if _, err := lifecycle.ResolveDeposit(p, decimal.NewFromInt(100)); err != nil {
		log.Printf("[settings][usecase] rejected policy stage=%s type=%s value=%s err=%v", p.Stage, p.DepositType, p.DepositValue, err)
		return entities.PaymentPolicy{}, err
	}
	p.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Put(ctx, p)
	if err != nil {
		return entities.PaymentPolicy{}, err
	}
	log.Printf("[settings][usecase] policy updated stage=%s type=%s value=%s currency=%s", saved.Stage, saved.DepositType, saved.DepositValue, saved.Currency)
	return saved, nil
}
