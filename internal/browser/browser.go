package browser

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Config controls how the browser is launched.
type Config struct {
	ProxyURL string // empty means a direct connection
	Headless bool
}

// Browser wraps a launched rod.Browser.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	cfg      Config
}

// New launches a browser and connects to it.
func New(cfg Config) (*Browser, error) {
	l := launcher.New().Headless(cfg.Headless)
	if cfg.ProxyURL != "" {
		l = l.Proxy(cfg.ProxyURL)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &Browser{
		browser:  b,
		launcher: l,
		cfg:      cfg,
	}, nil
}

// ProxyURL returns the proxy the browser was launched with.
func (b *Browser) ProxyURL() string {
	return b.cfg.ProxyURL
}

// NewPage opens a blank page.
func (b *Browser) NewPage() (*rod.Page, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Close shuts the browser down and kills the launched process.
func (b *Browser) Close() error {
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			return err
		}
	}
	if b.launcher != nil {
		b.launcher.Kill()
	}
	return nil
}
