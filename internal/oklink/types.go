package oklink

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/dwarvesf/unisat-ctc-exporter/internal/model"
)

// Page is one decoded page of inscription records for a wallet.
type Page struct {
	Inscriptions      []model.Inscription
	Page              int
	TotalPages        int
	TotalTransactions int
}

// OKLink returns every number as a JSON string, so the wire structs are
// all-string and get validated during conversion to model types.
type rawInscription struct {
	TxID          string `json:"txId"`
	ActionType    string `json:"actionType"`
	Amount        string `json:"amount"`
	FromAddress   string `json:"fromAddress"`
	ToAddress     string `json:"toAddress"`
	InscriptionID string `json:"inscriptionId"`
	Token         string `json:"token"`
	TokenType     string `json:"tokenType"`
	State         string `json:"state"`
	Time          string `json:"time"`
}

type rawPage struct {
	Page             string           `json:"page"`
	Limit            string           `json:"limit"`
	TotalPage        string           `json:"totalPage"`
	TotalTransaction string           `json:"totalTransaction"`
	InscriptionsList []rawInscription `json:"inscriptionsList"`
}

type rawResponse struct {
	Code string    `json:"code"`
	Msg  string    `json:"msg"`
	Data []rawPage `json:"data"`
}

func (r rawInscription) toModel() (model.Inscription, error) {
	action, err := model.ParseAction(r.ActionType)
	if err != nil {
		return model.Inscription{}, errors.Wrapf(err, "tx %s", r.TxID)
	}

	amount, err := model.ParseBigAmount(r.Amount)
	if err != nil {
		return model.Inscription{}, errors.Wrapf(err, "tx %s", r.TxID)
	}

	timestamp, err := parseMsTimestamp(r.Time)
	if err != nil {
		return model.Inscription{}, errors.Wrapf(err, "tx %s", r.TxID)
	}

	state, err := model.ParseState(r.State)
	if err != nil {
		return model.Inscription{}, errors.Wrapf(err, "tx %s", r.TxID)
	}

	tokenType, err := model.ParseTokenType(r.TokenType)
	if err != nil {
		return model.Inscription{}, errors.Wrapf(err, "tx %s", r.TxID)
	}

	return model.Inscription{
		TxID:          r.TxID,
		Action:        action,
		Amount:        amount,
		Timestamp:     timestamp,
		FromAddress:   r.FromAddress,
		ToAddress:     r.ToAddress,
		InscriptionID: r.InscriptionID,
		Token:         r.Token,
		TokenType:     tokenType,
		State:         state,
	}, nil
}

func (r rawPage) toPage() (*Page, error) {
	page, err := strconv.Atoi(r.Page)
	if err != nil {
		return nil, errors.Wrap(err, "invalid page number")
	}

	totalPages, err := strconv.Atoi(r.TotalPage)
	if err != nil {
		return nil, errors.Wrap(err, "invalid total page count")
	}

	totalTxs, err := strconv.Atoi(r.TotalTransaction)
	if err != nil {
		return nil, errors.Wrap(err, "invalid total transaction count")
	}

	inscriptions := make([]model.Inscription, 0, len(r.InscriptionsList))
	for _, raw := range r.InscriptionsList {
		inscription, err := raw.toModel()
		if err != nil {
			return nil, err
		}
		inscriptions = append(inscriptions, inscription)
	}

	return &Page{
		Inscriptions:      inscriptions,
		Page:              page,
		TotalPages:        totalPages,
		TotalTransactions: totalTxs,
	}, nil
}

// OKLink's time field is a millisecond unix epoch rendered as a string.
func parseMsTimestamp(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid timestamp")
	}

	return time.UnixMilli(ms).UTC(), nil
}
