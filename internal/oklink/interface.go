package oklink

type IOkLink interface {
	// GetInscriptionsByAddress fetches one page (1-based) of BRC-20
	// inscription records for a wallet.
	GetInscriptionsByAddress(address string, page int) (*Page, error)
}
