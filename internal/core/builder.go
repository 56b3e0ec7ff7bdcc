package core

import (
	"os"

	"pchat/config"
	"pchat/internal/console"
	"pchat/internal/metrics"
	"pchat/internal/transport"
	"pchat/util"
)

// Build constructs the appropriate Mode from a validated
// configuration.  This is the single dispatch point between server
// and client startup.
func Build(cfg *config.Config, logger *util.Logger) Mode {
	printer := console.NewPrinter(os.Stdout, cfg.Interactive)
	collector := metrics.New()

	if cfg.Listen {
		return &ListenMode{
			Port:    cfg.Port,
			Name:    cfg.Name,
			Printer: printer,
			Logger:  logger,
			Metrics: collector,
		}
	}
	return &DialMode{
		Dialer:  &transport.TCPDialer{},
		Host:    cfg.Host,
		Port:    cfg.Port,
		Name:    cfg.Name,
		Printer: printer,
		Logger:  logger,
		Metrics: collector,
	}
}
