package ctc

import (
	"fmt"

	"github.com/dwarvesf/unisat-ctc-exporter/internal/classifier"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/consts"
)

// Category is a CTC custom-import transaction category.
type Category string

const (
	CategoryBuy  Category = "buy"
	CategorySell Category = "sell"
	CategoryMint Category = "mint"
)

const timestampLayout = "2006/01/02 15:04:05"

// Header is the column list of CTC's custom import schema. Order and
// names are fixed by CTC, not by us.
func Header() []string {
	return []string{
		"Timestamp (UTC)",
		"Type",
		"Base Currency",
		"Base Amount",
		"Quote Currency",
		"Quote Amount",
		"Fee Currency",
		"Fee Amount",
		"From",
		"To",
		"Blockchain",
		"ID",
		"Description",
	}
}

// Row is one CTC import row. Quote and fee columns stay empty: OKLink
// inscription records carry no price or fee information.
type Row struct {
	Timestamp    string
	Category     Category
	BaseCurrency string
	BaseAmount   string
	From         string
	To           string
	Blockchain   string
	ID           string
	Description  string
}

func (r Row) record() []string {
	return []string{
		r.Timestamp,
		string(r.Category),
		r.BaseCurrency,
		r.BaseAmount,
		"", // quote currency
		"", // quote amount
		"", // fee currency
		"", // fee amount
		r.From,
		r.To,
		r.Blockchain,
		r.ID,
		r.Description,
	}
}

func categoryOf(kind classifier.Kind) (Category, error) {
	switch kind {
	case classifier.KindMint, classifier.KindInscribe:
		return CategoryMint, nil
	case classifier.KindTransferIn:
		return CategoryBuy, nil
	case classifier.KindTransferOut:
		return CategorySell, nil
	default:
		return "", fmt.Errorf("no CTC category for kind %q", kind)
	}
}

// MapRow converts a classified inscription into its CTC row. Pure: the
// same input always yields the same row.
func MapRow(tx classifier.Classified) (Row, error) {
	category, err := categoryOf(tx.Kind)
	if err != nil {
		return Row{}, fmt.Errorf("tx %s: %w", tx.TxID, err)
	}

	return Row{
		Timestamp:    tx.Timestamp.UTC().Format(timestampLayout),
		Category:     category,
		BaseCurrency: tx.Token,
		BaseAmount:   tx.Amount.String(),
		From:         tx.FromAddress,
		To:           tx.ToAddress,
		Blockchain:   consts.BTC_BLOCKCHAIN_LABEL,
		ID:           tx.TxID,
		Description:  fmt.Sprintf("%s %s with inscription_id %s", tx.TokenType, tx.Action.Label(), tx.InscriptionID),
	}, nil
}
