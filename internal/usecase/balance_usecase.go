package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
)

// BalanceUseCase derives account balances from posted entries. Balances are
// never stored; every read aggregates the immutable posted history, so there
// is no running total to drift out of sync.
type BalanceUseCase struct {
	reportingRepo ReportingRepository
	accountRepo   AccountRepository
	cache         BalanceCache
	logger        zerolog.Logger
}

// NewBalanceUseCase creates a new BalanceUseCase. cache may be nil.
func NewBalanceUseCase(
	reportingRepo ReportingRepository,
	accountRepo AccountRepository,
	cache BalanceCache,
	logger zerolog.Logger,
) *BalanceUseCase {
	return &BalanceUseCase{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
		cache:         cache,
		logger:        logger,
	}
}

// BalanceAsOf returns the account's normal-side balance from posted entries
// with entry dates up to and including asOf. An account with no posted
// activity has a zero balance, not an error.
func (uc *BalanceUseCase) BalanceAsOf(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByCode(ctx, accountCode)
	if err != nil {
		return decimal.Zero, err
	}

	var cacheGen int64
	writeBack := false
	if uc.cache != nil {
		cached, gen, ok, err := uc.cache.Get(ctx, accountCode, asOf)
		if err != nil {
			uc.logger.Warn().Err(err).Str("account", accountCode).Msg("balance cache read failed")
		} else if ok {
			return cached, nil
		} else {
			cacheGen = gen
			writeBack = true
		}
	}

	activity, err := uc.reportingRepo.AccountActivityAsOf(ctx, []string{accountCode}, asOf)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	if len(activity) > 0 {
		balance = account.Type.NormalBalance(activity[0].Debit, activity[0].Credit)
	}

	// Pin the write-back to the generation the miss observed; an invalidation
	// in between orphans it instead of resurrecting a stale balance.
	if writeBack {
		if err := uc.cache.Set(ctx, accountCode, asOf, balance, cacheGen); err != nil {
			uc.logger.Warn().Err(err).Str("account", accountCode).Msg("balance cache write failed")
		}
	}

	return balance, nil
}

// BalancesAsOf returns normal-side balances for a set of accounts in one
// pass. Every requested code must exist.
func (uc *BalanceUseCase) BalancesAsOf(ctx context.Context, accountCodes []string, asOf time.Time) (map[string]decimal.Decimal, error) {
	accounts, err := uc.accountRepo.GetByCodes(ctx, accountCodes)
	if err != nil {
		return nil, err
	}

	types := make(map[string]domain.AccountType, len(accounts))
	for _, a := range accounts {
		types[a.Code] = a.Type
	}

	for _, code := range accountCodes {
		if _, ok := types[code]; !ok {
			return nil, domain.ErrAccountNotFound
		}
	}

	activity, err := uc.reportingRepo.AccountActivityAsOf(ctx, accountCodes, asOf)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]decimal.Decimal, len(accountCodes))
	for _, code := range accountCodes {
		balances[code] = decimal.Zero
	}

	for _, act := range activity {
		balances[act.AccountCode] = types[act.AccountCode].NormalBalance(act.Debit, act.Credit)
	}

	return balances, nil
}
