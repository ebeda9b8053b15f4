package exporter

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"

	"github.com/dwarvesf/unisat-ctc-exporter/internal/classifier"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/ctc"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/model"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/oklink"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/utils/config"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/utils/logger"
)

type Exporter struct {
	appConfig  *config.AppConfig
	logger     *logger.Logger
	okLink     oklink.IOkLink
	classifier *classifier.Classifier
	writer     *ctc.Writer
}

func New(
	appConfig *config.AppConfig,
	logger *logger.Logger,
	okLink oklink.IOkLink,
	classifier *classifier.Classifier,
	writer *ctc.Writer,
) IExporter {
	return &Exporter{
		appConfig:  appConfig,
		logger:     logger,
		okLink:     okLink,
		classifier: classifier,
		writer:     writer,
	}
}

// Run is strictly fetch-all, classify-all, write-once. Nothing touches
// the filesystem until every transaction classified and mapped cleanly.
func (e *Exporter) Run(wallet string) (string, error) {
	if _, err := btcutil.DecodeAddress(wallet, &chaincfg.MainNetParams); err != nil {
		return "", errors.Wrapf(err, "invalid wallet address %q", wallet)
	}

	inscriptions, err := e.fetchAll(wallet)
	if err != nil {
		return "", err
	}

	rows := make([]ctc.Row, 0, len(inscriptions))
	totals := map[string]model.BigAmount{}
	for _, tx := range inscriptions {
		classified, err := e.classifier.Classify(tx, wallet)
		if err != nil {
			e.logger.Error("[Run][Classify]", map[string]string{
				"error": err.Error(),
				"txId":  tx.TxID,
			})
			return "", err
		}

		row, err := ctc.MapRow(classified)
		if err != nil {
			e.logger.Error("[Run][MapRow]", map[string]string{
				"error": err.Error(),
				"txId":  tx.TxID,
			})
			return "", err
		}
		rows = append(rows, row)

		if total, ok := totals[tx.Token]; ok {
			totals[tx.Token] = total.Add(tx.Amount)
		} else {
			totals[tx.Token] = tx.Amount
		}
	}

	path, err := e.writer.Write(rows)
	if err != nil {
		e.logger.Error("[Run][Write]", map[string]string{
			"error": err.Error(),
		})
		return "", err
	}

	for token, total := range totals {
		e.logger.Debug(fmt.Sprintf("[Run] token %s total amount %s", token, total))
	}
	e.logger.Info("[Run] export complete", map[string]string{
		"wallet":       wallet,
		"transactions": strconv.Itoa(len(rows)),
		"path":         path,
	})

	return path, nil
}

func (e *Exporter) fetchAll(wallet string) ([]model.Inscription, error) {
	e.logger.Info("[fetchAll] Start fetching inscriptions...", map[string]string{
		"wallet": wallet,
	})

	inscriptions := []model.Inscription{}
	page := 1
	for {
		p, err := e.okLink.GetInscriptionsByAddress(wallet, page)
		if err != nil {
			e.logger.Error("[fetchAll][GetInscriptionsByAddress]", map[string]string{
				"error": err.Error(),
				"page":  strconv.Itoa(page),
			})
			return nil, err
		}

		inscriptions = append(inscriptions, p.Inscriptions...)
		e.logger.Info(fmt.Sprintf("[fetchAll] fetched page %d out of %d", p.Page, p.TotalPages))

		if p.Page >= p.TotalPages || len(p.Inscriptions) == 0 {
			break
		}
		page++
	}

	e.logger.Info(fmt.Sprintf("[fetchAll] Total inscriptions: %d", len(inscriptions)))
	return inscriptions, nil
}
