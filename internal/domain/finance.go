package domain

import (
	"fmt"
	"time"
)

// Transaction is a debit against an account. Amounts are in cents.
type Transaction struct {
	ID          int       `json:"id" toml:"id" yaml:"id"`
	Date        time.Time `json:"date" toml:"date" yaml:"date"`
	AmountCents int64     `json:"amount_cents" toml:"amount_cents" yaml:"amount_cents"`
	Category    string    `json:"category" toml:"category" yaml:"category"`
}

func (t Transaction) Key() int { return t.ID }

// Processor is a payment channel a transaction is processed through.
type Processor interface {
	// Name is the channel's display name, e.g. "Bank Transfer".
	Name() string
	// Process validates the transaction for this channel.
	Process(t Transaction) error
}

type channel string

func (c channel) Name() string { return string(c) }

func (c channel) Process(t Transaction) error {
	if t.AmountCents <= 0 {
		return fmt.Errorf("%s: transaction %d: %w", c, t.ID, ErrInvalidAmount)
	}
	return nil
}

// The payment channels supported by the finance demo.
var (
	BankTransfer Processor = channel("Bank Transfer")
	MobileMoney  Processor = channel("Mobile Money")
	CryptoWallet Processor = channel("Crypto Wallet")
)

// Account is a plain account; applying a transaction always debits it.
type Account struct {
	Number       string
	BalanceCents int64
}

// Apply debits the transaction amount.
func (a *Account) Apply(t Transaction) error {
	a.BalanceCents -= t.AmountCents
	return nil
}

// SavingsAccount is an Account that refuses to go below zero.
type SavingsAccount struct {
	Account
}

// NewSavingsAccount opens a savings account with an initial balance.
func NewSavingsAccount(number string, balanceCents int64) *SavingsAccount {
	return &SavingsAccount{Account: Account{Number: number, BalanceCents: balanceCents}}
}

// Apply debits the transaction amount, or returns ErrInsufficientFunds
// leaving the balance unchanged.
func (s *SavingsAccount) Apply(t Transaction) error {
	if t.AmountCents > s.BalanceCents {
		return fmt.Errorf("transaction %d: %w", t.ID, ErrInsufficientFunds)
	}
	return s.Account.Apply(t)
}
