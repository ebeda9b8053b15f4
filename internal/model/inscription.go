package model

import (
	"fmt"
	"time"
)

// Action is the OKLink actionType of an inscription record.
type Action string

const (
	ActionMint             Action = "mint"
	ActionTransfer         Action = "transfer"
	ActionInscribeTransfer Action = "inscribeTransfer"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionMint, ActionTransfer, ActionInscribeTransfer:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}

// Label is the human-readable form used in CSV descriptions.
func (a Action) Label() string {
	switch a {
	case ActionMint:
		return "Mint"
	case ActionTransfer:
		return "Transfer"
	case ActionInscribeTransfer:
		return "InscribeTransfer"
	default:
		return string(a)
	}
}

// State is the on-chain status of an inscription record. Only successful
// transactions are supported; anything else must fail parsing so we notice
// the moment the wallet history contains a shape we have not handled.
type State string

const (
	StateSuccess State = "success"
)

func ParseState(s string) (State, error) {
	switch State(s) {
	case StateSuccess:
		return State(s), nil
	default:
		return "", fmt.Errorf("unknown state: %q", s)
	}
}

// TokenType is the inscription protocol. Only BRC-20 is supported.
type TokenType string

const (
	TokenTypeBRC20 TokenType = "BRC20"
)

func ParseTokenType(s string) (TokenType, error) {
	switch TokenType(s) {
	case TokenTypeBRC20:
		return TokenType(s), nil
	default:
		return "", fmt.Errorf("unknown token type: %q", s)
	}
}

// Inscription is one normalized inscription transfer for the wallet,
// decoded and validated from the raw OKLink record.
type Inscription struct {
	TxID          string    `json:"tx_id"`
	Action        Action    `json:"action"`
	Amount        BigAmount `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
	FromAddress   string    `json:"from_address"`
	ToAddress     string    `json:"to_address"`
	InscriptionID string    `json:"inscription_id"`
	Token         string    `json:"token"`
	TokenType     TokenType `json:"token_type"`
	State         State     `json:"state"`
}
