package demo

import (
	"github.com/bft-labs/stockroom/internal/domain"
	"github.com/bft-labs/stockroom/internal/report"
	"github.com/bft-labs/stockroom/pkg/log"
	"github.com/bft-labs/stockroom/pkg/store"
)

// Finance records transactions applied to a savings account.
type Finance struct {
	Account      *domain.SavingsAccount
	Transactions *store.Store[domain.Transaction]

	env Env
}

// NewFinance opens a savings account with the given balance.
func NewFinance(env Env, number string, balanceCents int64) *Finance {
	return &Finance{
		Account:      domain.NewSavingsAccount(number, balanceCents),
		Transactions: store.New[domain.Transaction](),
		env:          env.withDefaults(),
	}
}

// Record processes t through p, applies it to the account and stores it.
// A transaction the account rejects is reported and not stored.
func (f *Finance) Record(p domain.Processor, t domain.Transaction) error {
	out := f.env.Out
	if err := p.Process(t); err != nil {
		f.env.Logger.Warn("transaction rejected", log.String("channel", p.Name()), log.Err(err))
		return report.Line(out, "[%s] Rejected: %v", p.Name(), err)
	}
	if err := report.Processed(out, p.Name(), t); err != nil {
		return err
	}
	if err := f.Account.Apply(t); err != nil {
		f.env.Logger.Warn("transaction not applied", log.Int("id", t.ID), log.Err(err))
		return report.Line(out, "Insufficient funds")
	}
	f.Transactions.Add(t)
	return report.Balance(out, f.Account.BalanceCents)
}

// Run applies the sample transactions through each payment channel.
func (f *Finance) Run() error {
	now := f.env.Now().UTC()
	steps := []struct {
		p domain.Processor
		t domain.Transaction
	}{
		{domain.MobileMoney, domain.Transaction{ID: 1, Date: now, AmountCents: 15000, Category: "Groceries"}},
		{domain.BankTransfer, domain.Transaction{ID: 2, Date: now, AmountCents: 20000, Category: "Utilities"}},
		{domain.CryptoWallet, domain.Transaction{ID: 3, Date: now, AmountCents: 12000, Category: "Entertainment"}},
	}
	for _, s := range steps {
		if err := f.Record(s.p, s.t); err != nil {
			return err
		}
	}
	return nil
}
