package service

import (
	"github.com/pkg/errors"

	"github.com/Astemirdum/lending-registry/lending/internal/errs"
	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

const maxFeePercent = 100

// Policy is the initial parameter set fixed at system start.
type Policy struct {
	Operator           model.Identity
	LendingFeePercent  uint64
	MaxLendingPeriod   uint64
	DepositRequirement uint64
	MaxBooksPerUser    uint64
}

func (p Policy) Validate() error {
	switch {
	case p.Operator == "":
		return errors.New("operator identity is required")
	case p.LendingFeePercent > maxFeePercent:
		return errors.Errorf("lending fee %d%% exceeds %d%%", p.LendingFeePercent, maxFeePercent)
	case p.MaxLendingPeriod == 0:
		return errors.New("max lending period must be positive")
	case p.DepositRequirement == 0:
		return errors.New("deposit requirement must be positive")
	case p.MaxBooksPerUser == 0:
		return errors.New("max books per user must be positive")
	}
	return nil
}

// adminPolicy holds the mutable system parameters. Only the operator fixed
// at construction may change them.
type adminPolicy struct {
	operator model.Identity
	params   Policy
}

func newAdminPolicy(p Policy) *adminPolicy {
	return &adminPolicy{operator: p.Operator, params: p}
}

func (a *adminPolicy) isOperator(id model.Identity) bool {
	return id == a.operator
}

func (a *adminPolicy) authorize(id model.Identity) error {
	if !a.isOperator(id) {
		return errs.ErrUnauthorized
	}
	return nil
}

func (a *adminPolicy) setLendingFee(caller model.Identity, pct uint64) error {
	if err := a.authorize(caller); err != nil {
		return err
	}
	if pct > maxFeePercent {
		return errs.ErrInvalidParams
	}
	a.params.LendingFeePercent = pct
	return nil
}

func (a *adminPolicy) setPositive(caller model.Identity, v uint64, dst *uint64) error {
	if err := a.authorize(caller); err != nil {
		return err
	}
	if v == 0 {
		return errs.ErrInvalidParams
	}
	*dst = v
	return nil
}

func (a *adminPolicy) setMaxLendingPeriod(caller model.Identity, blocks uint64) error {
	return a.setPositive(caller, blocks, &a.params.MaxLendingPeriod)
}

func (a *adminPolicy) setDepositRequirement(caller model.Identity, amount uint64) error {
	return a.setPositive(caller, amount, &a.params.DepositRequirement)
}

func (a *adminPolicy) setMaxBooksPerUser(caller model.Identity, n uint64) error {
	return a.setPositive(caller, n, &a.params.MaxBooksPerUser)
}
