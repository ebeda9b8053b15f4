package exporter

type IExporter interface {
	// Run exports the full inscription history of a wallet and returns
	// the path of the written CSV.
	Run(wallet string) (string, error)
}
