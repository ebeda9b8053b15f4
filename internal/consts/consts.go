package consts

const (
	// CTC's custom import wants a human-readable chain label, not a ticker.
	BTC_BLOCKCHAIN_LABEL = "Bitcoin"

	OKLINK_BTC_TX_LIST_PATH = "/api/v5/explorer/btc/transaction-list"
	OKLINK_ACCESS_KEY_HEADER = "Ok-Access-Key"
)
