// Package toast manages transient notifications. A Provider owns the toast list and is
// safe for concurrent use so background work can resolve promise toasts while the UI
// renders.
package toast

import (
	"slices"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/inkui/internal/ids"
	"github.com/alexisbeaulieu97/inkui/internal/logger"
)

// DefaultDuration applies when Options.Duration is zero.
const DefaultDuration = 5 * time.Second

// Type selects the icon and accent of a toast.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Action is a button rendered inside a toast.
type Action struct {
	Label   string
	AltText string
	OnClick func()
}

// Options describes a toast to create.
type Options struct {
	// ID overrides the generated "toast-N" identifier.
	ID      string
	Message string
	Type    Type
	// Duration is how long the toast stays up. Zero means DefaultDuration and a
	// negative value keeps the toast until it is removed.
	Duration time.Duration
	// HideClose removes the close button. Toasts without one never expire on their own.
	HideClose bool
	Action    *Action
}

// Item is a toast as held by the provider.
type Item struct {
	ID       string
	Message  string
	Type     Type
	Duration time.Duration
	Closable bool
	Loading  bool
	Action   *Action
	Open     bool
	// Version increases on every update so stale expiry timers can be ignored.
	Version int
}

// Expires reports whether the toast dismisses itself.
func (it Item) Expires() bool {
	return it.Closable && it.Duration > 0
}

// ProviderOptions configures a Provider.
type ProviderOptions struct {
	Logger *logger.Logger
	// OnChange is called after every mutation, outside the provider lock.
	OnChange func()
}

// Provider holds the live toasts in creation order.
type Provider struct {
	mu       sync.Mutex
	toasts   []Item
	log      *logger.Logger
	onChange func()
}

// NewProvider creates an empty provider.
func NewProvider(opts ProviderOptions) *Provider {
	return &Provider{log: opts.Logger, onChange: opts.OnChange}
}

// Create adds a toast and returns its id.
func (p *Provider) Create(opts Options) string {
	return p.create(opts, false)
}

func (p *Provider) create(opts Options, loading bool) string {
	id := opts.ID
	if id == "" {
		id = ids.New("toast")
	}
	item := Item{
		ID:       id,
		Message:  Sanitize(opts.Message),
		Type:     opts.Type,
		Duration: resolveDuration(opts.Duration),
		Closable: !opts.HideClose,
		Loading:  loading,
		Action:   opts.Action,
		Open:     true,
		Version:  1,
	}
	if item.Type == "" {
		item.Type = TypeInfo
	}

	p.mu.Lock()
	p.toasts = append(p.toasts, item)
	p.mu.Unlock()

	p.log.WithFields(map[string]any{"toast": id, "type": string(item.Type)}).Debug("toast created")
	p.changed()
	return id
}

// Update mutates the toast with id and reopens it. It reports whether the toast exists.
func (p *Provider) Update(id string, mutate func(*Item)) bool {
	p.mu.Lock()
	i := p.index(id)
	if i < 0 {
		p.mu.Unlock()
		return false
	}
	item := p.toasts[i]
	mutate(&item)
	item.ID = id
	item.Message = Sanitize(item.Message)
	item.Open = true
	item.Version = p.toasts[i].Version + 1
	p.toasts[i] = item
	p.mu.Unlock()

	p.changed()
	return true
}

// Remove drops the toast with id.
func (p *Provider) Remove(id string) {
	p.mu.Lock()
	i := p.index(id)
	if i >= 0 {
		p.toasts = slices.Delete(p.toasts, i, i+1)
	}
	p.mu.Unlock()

	if i >= 0 {
		p.changed()
	}
}

// RemoveAll drops every toast.
func (p *Provider) RemoveAll() {
	p.mu.Lock()
	n := len(p.toasts)
	p.toasts = nil
	p.mu.Unlock()

	if n > 0 {
		p.changed()
	}
}

// Expire removes the toast with id if it has not been updated since version. It
// reports whether the toast was removed.
func (p *Provider) Expire(id string, version int) bool {
	p.mu.Lock()
	i := p.index(id)
	ok := i >= 0 && p.toasts[i].Version == version && p.toasts[i].Expires()
	if ok {
		p.toasts = slices.Delete(p.toasts, i, i+1)
	}
	p.mu.Unlock()

	if ok {
		p.changed()
	}
	return ok
}

// Trigger runs the action of the toast with id and removes the toast.
func (p *Provider) Trigger(id string) {
	item, ok := p.Get(id)
	if !ok {
		return
	}
	if item.Action != nil && item.Action.OnClick != nil {
		item.Action.OnClick()
	}
	p.Remove(id)
}

// Get returns a copy of the toast with id.
func (p *Provider) Get(id string) (Item, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.index(id)
	if i < 0 {
		return Item{}, false
	}
	return p.toasts[i], true
}

// Toasts returns a snapshot in creation order.
func (p *Provider) Toasts() []Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.toasts)
}

// Success creates a success toast.
func (p *Provider) Success(message string, opts Options) string {
	return p.typed(TypeSuccess, message, opts)
}

// Error creates an error toast.
func (p *Provider) Error(message string, opts Options) string {
	return p.typed(TypeError, message, opts)
}

// Warning creates a warning toast.
func (p *Provider) Warning(message string, opts Options) string {
	return p.typed(TypeWarning, message, opts)
}

// Info creates an info toast.
func (p *Provider) Info(message string, opts Options) string {
	return p.typed(TypeInfo, message, opts)
}

func (p *Provider) typed(t Type, message string, opts Options) string {
	opts.Type = t
	opts.Message = message
	return p.Create(opts)
}

func (p *Provider) index(id string) int {
	return slices.IndexFunc(p.toasts, func(it Item) bool { return it.ID == id })
}

func (p *Provider) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}

func resolveDuration(d time.Duration) time.Duration {
	switch {
	case d == 0:
		return DefaultDuration
	case d < 0:
		return 0
	default:
		return d
	}
}
