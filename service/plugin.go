package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/dnldd/candleplugin/chart"
	"github.com/dnldd/candleplugin/config"
	"github.com/dnldd/candleplugin/host"
	"github.com/dnldd/candleplugin/series"
	"github.com/dnldd/candleplugin/shared"
	"github.com/google/uuid"
	pkgerrs "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// installStackMarshaler makes zerolog render the stacks of pkg/errors wrapped errors.
var installStackMarshaler sync.Once

// PluginConfig represents the configuration struct for the candlestick plugin.
type PluginConfig struct {
	// Settings are the widget settings.
	Settings *config.Settings
	// Logger is the parent logger, the global logger is used when nil.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *PluginConfig) Validate() error {
	if cfg.Settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}

	return cfg.Settings.Validate()
}

// Plugin turns host configuration and element data into candlestick chart options.
type Plugin struct {
	cfg      *PluginConfig
	id       string
	chart    chart.Settings
	policy   series.Policy
	logger   zerolog.Logger
	fields   shared.FieldConfig
	store    shared.Store
	output   *chart.Options
	err      error
	stateMtx sync.Mutex
}

// NewPlugin initializes a new candlestick plugin.
func NewPlugin(cfg *PluginConfig) (*Plugin, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating plugin config: %w", err)
	}

	chartSettings, err := cfg.Settings.Chart()
	if err != nil {
		return nil, fmt.Errorf("fetching chart settings: %w", err)
	}
	policy, err := cfg.Settings.Policy()
	if err != nil {
		return nil, fmt.Errorf("fetching readiness policy: %w", err)
	}
	level, err := cfg.Settings.Level()
	if err != nil {
		return nil, fmt.Errorf("fetching log level: %w", err)
	}

	installStackMarshaler.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	})

	parent := log.Logger
	if cfg.Logger != nil {
		parent = *cfg.Logger
	}

	id := uuid.New().String()
	logger := parent.With().Str("service", "candleplugin").Str("instance", id).Logger().Level(level)

	return &Plugin{
		cfg:    cfg,
		id:     id,
		chart:  chartSettings,
		policy: policy,
		logger: logger,
	}, nil
}

// ID returns the plugin instance identifier.
func (p *Plugin) ID() string {
	return p.id
}

// Recompute runs a full pass over the provided inputs: the readiness check, normalization,
// series building and chart options. It returns shared.ErrNotReady when none of the
// configured data has arrived yet. The inputs are not mutated.
func (p *Plugin) Recompute(fields shared.FieldConfig, store shared.Store) (opts *chart.Options, err error) {
	defer func() {
		if r := recover(); r != nil {
			opts = nil
			err = fmt.Errorf("recovered from recompute panic: %v", r)
		}
	}()

	if !series.IsReady(fields, store, p.policy) {
		return nil, shared.ErrNotReady
	}

	normalized, err := series.Normalize(fields, store)
	if err != nil {
		return nil, fmt.Errorf("normalizing columns: %w", err)
	}

	if e := p.logger.Debug(); e.Enabled() {
		e.Msgf("normalized store: %s", spew.Sdump(normalized))
	}

	s, err := series.Build(fields, normalized)
	if err != nil {
		return nil, fmt.Errorf("building series: %w", err)
	}

	if e := p.logger.Debug(); e.Enabled() {
		e.Msgf("built %s series: %s", s.Symbol, spew.Sdump(s.Points))
	}

	return chart.NewOptions(p.chart, s), nil
}

// apply recomputes the output from the current inputs. The caller must hold the state lock.
func (p *Plugin) apply() {
	opts, err := p.Recompute(p.fields, p.store)
	switch {
	case err == nil:
		p.output = opts
		p.err = nil
		p.logger.Info().Msgf("chart options ready for %s with %d points",
			opts.Series[0].Name, len(opts.Series[0].Data))

	case errors.Is(err, shared.ErrNotReady):
		// Data is still loading, keep the prior output.
		p.logger.Debug().Msg("data not ready yet")

	case errors.Is(err, shared.ErrMissingSymbol):
		p.output = nil
		p.err = nil
		p.logger.Warn().Err(err).Msg("no data to chart")

	default:
		p.output = nil
		p.err = err
		p.logger.Error().Stack().Err(pkgerrs.WithStack(err)).Msg("recomputing chart options")
	}
}

// OnConfig records a host configuration change and recomputes the output.
func (p *Plugin) OnConfig(fields shared.FieldConfig) {
	p.stateMtx.Lock()
	defer p.stateMtx.Unlock()

	err := fields.Validate()
	if err != nil {
		// The host sends partial configs while the editor panel is being filled in.
		p.logger.Debug().Err(err).Msg("incomplete field configuration")
	}

	p.fields = fields
	p.apply()
}

// OnData records a host element data update and recomputes the output.
func (p *Plugin) OnData(store shared.Store) {
	p.stateMtx.Lock()
	defer p.stateMtx.Unlock()

	p.store = store
	p.apply()
}

// OnConfigPayload decodes a host config payload and applies it. A payload that cannot be
// decoded leaves the plugin state untouched.
func (p *Plugin) OnConfigPayload(payload []byte) error {
	fields, err := host.DecodeConfig(payload)
	if err != nil {
		p.logger.Error().Err(err).Msg("decoding config payload")
		return fmt.Errorf("decoding config payload: %w", err)
	}

	p.OnConfig(fields)

	return nil
}

// OnDataPayload decodes a host element data payload and applies it. A payload that cannot
// be decoded leaves the plugin state untouched.
func (p *Plugin) OnDataPayload(payload []byte) error {
	store, err := host.DecodeElementData(payload)
	if err != nil {
		p.logger.Error().Err(err).Msg("decoding element data payload")
		return fmt.Errorf("decoding element data payload: %w", err)
	}

	p.OnData(store)

	return nil
}

// Output returns the current chart options, nil when there is nothing to chart.
func (p *Plugin) Output() *chart.Options {
	p.stateMtx.Lock()
	defer p.stateMtx.Unlock()

	return p.output
}

// Err returns the error to display in place of the chart, if any.
func (p *Plugin) Err() error {
	p.stateMtx.Lock()
	defer p.stateMtx.Unlock()

	return p.err
}
