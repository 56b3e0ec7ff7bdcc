package core

import (
	"testing"

	"pchat/config"
	"pchat/internal/transport"
	"pchat/util"
)

// TestBuild_Listen verifies Build produces a ListenMode carrying the
// configured port and name.
func TestBuild_Listen(t *testing.T) {
	cfg := &config.Config{Listen: true, Port: 8080, Name: "server"}
	logger := util.NewLogger(util.LogQuiet)

	mode := Build(cfg, logger)
	lm, ok := mode.(*ListenMode)
	if !ok {
		t.Fatalf("expected *ListenMode, got %T", mode)
	}
	if lm.Port != 8080 || lm.Name != "server" {
		t.Errorf("Port=%d Name=%q", lm.Port, lm.Name)
	}
	if lm.Printer == nil || lm.Logger == nil || lm.Metrics == nil {
		t.Error("listen mode missing collaborators")
	}
}

// TestBuild_Dial verifies Build produces a DialMode with a plain TCP
// dialer.
func TestBuild_Dial(t *testing.T) {
	cfg := &config.Config{Host: "example.com", Port: 80, Name: "host"}
	logger := util.NewLogger(util.LogQuiet)

	mode := Build(cfg, logger)
	dm, ok := mode.(*DialMode)
	if !ok {
		t.Fatalf("expected *DialMode, got %T", mode)
	}
	if dm.Host != "example.com" || dm.Port != 80 || dm.Name != "host" {
		t.Errorf("Host=%q Port=%d Name=%q", dm.Host, dm.Port, dm.Name)
	}
	if _, ok := dm.Dialer.(*transport.TCPDialer); !ok {
		t.Errorf("Dialer is %T, want *transport.TCPDialer", dm.Dialer)
	}
}
