package classifier

import (
	"fmt"

	"github.com/dwarvesf/unisat-ctc-exporter/internal/model"
)

// Kind is the tax-relevant classification of an inscription transfer.
type Kind string

const (
	KindMint        Kind = "mint"
	KindInscribe    Kind = "inscribe"
	KindTransferIn  Kind = "transfer_in"
	KindTransferOut Kind = "transfer_out"
)

// Rule pairs a kind with the predicate that recognizes it. Rules are
// evaluated in order, first match wins.
type Rule struct {
	Kind  Kind
	Match func(tx model.Inscription, wallet string) bool
}

// Classified is an inscription tagged with exactly one kind.
type Classified struct {
	model.Inscription
	Kind Kind
}

// UnsupportedTransactionError means no rule matched. This is a hard stop:
// the rule set needs extending, guessing a kind would corrupt the report.
type UnsupportedTransactionError struct {
	TxID   string
	Action model.Action
}

func (e *UnsupportedTransactionError) Error() string {
	return fmt.Sprintf("unsupported transaction type: tx %s with action %q matched no rule", e.TxID, e.Action)
}

type Classifier struct {
	rules []Rule
}

func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// DefaultRules covers every transaction shape encountered so far. Extend
// here when classification fails on a new wallet history.
func DefaultRules() []Rule {
	return []Rule{
		{
			Kind: KindMint,
			Match: func(tx model.Inscription, _ string) bool {
				return tx.Action == model.ActionMint
			},
		},
		{
			Kind: KindInscribe,
			Match: func(tx model.Inscription, _ string) bool {
				return tx.Action == model.ActionInscribeTransfer
			},
		},
		{
			Kind: KindTransferIn,
			Match: func(tx model.Inscription, wallet string) bool {
				return tx.Action == model.ActionTransfer && tx.ToAddress == wallet
			},
		},
		{
			Kind: KindTransferOut,
			Match: func(tx model.Inscription, wallet string) bool {
				return tx.Action == model.ActionTransfer && tx.FromAddress == wallet
			},
		},
	}
}

func (c *Classifier) Classify(tx model.Inscription, wallet string) (Classified, error) {
	for _, rule := range c.rules {
		if rule.Match(tx, wallet) {
			return Classified{Inscription: tx, Kind: rule.Kind}, nil
		}
	}

	return Classified{}, &UnsupportedTransactionError{TxID: tx.TxID, Action: tx.Action}
}
