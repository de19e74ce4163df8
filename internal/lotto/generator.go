package lotto

import (
	"context"
	"fmt"
	"slices"
	"time"

	"lottogen/internal/logging"
	"lottogen/internal/model"
	"lottogen/internal/storage"
)

// Generator draws combinations and keeps the archive of everything it has
// produced in sync with a Store. It is not safe for concurrent use.
type Generator struct {
	cfg       Config
	rng       Rand
	now       func() time.Time
	ids       idClock
	log       *logging.Logger
	formatter *Formatter

	store        storage.Store
	combinations []model.Combination
}

type Option func(*Generator)

// WithConfig replaces the default 6/49/10 config. Zero numeric fields keep
// their defaults; SmartFilters is taken as given.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg.withDefaults()
	}
}

func WithRand(r Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func WithLogger(l *logging.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

func WithFormatter(f *Formatter) Option {
	return func(g *Generator) {
		g.formatter = f
	}
}

// NewGenerator validates the config and loads the archive from store. The
// store must already be initialized. A failed or malformed load is logged and
// the generator starts with an empty archive.
func NewGenerator(ctx context.Context, store storage.Store, opts ...Option) (*Generator, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidConfig)
	}

	g := &Generator{
		cfg:   DefaultConfig(),
		store: store,
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if g.rng == nil {
		g.rng = newDefaultRand()
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.log == nil {
		g.log = logging.Nop()
	}
	g.log = g.log.WithComponent("generator")
	if g.formatter == nil {
		g.formatter = defaultFormatter()
	}

	g.combinations = g.load(ctx)
	for _, c := range g.combinations {
		g.ids.observe(c.ID)
	}
	return g, nil
}

// Config returns the current configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// SetSmartFilters toggles pattern filtering for subsequent draws.
func (g *Generator) SetSmartFilters(enabled bool) {
	g.cfg.SmartFilters = enabled
}

// IsCommonPattern is the package level check with lucky-number saturation
// logged. Saturation alone never makes a draw common.
func (g *Generator) IsCommonPattern(numbers []int) bool {
	if IsCommonPattern(numbers, g.cfg.MaxNumber) {
		return true
	}
	if ContainsLuckyNumbers(numbers) {
		g.log.Infow("draw contains many lucky numbers", "numbers", numbers, "lucky", countLucky(numbers))
	}
	return false
}

// GenerateRandomNumbers draws count distinct numbers from 1..maxNumber in
// ascending order by rejection sampling.
func (g *Generator) GenerateRandomNumbers(count, maxNumber int) ([]int, error) {
	if maxNumber < 1 || count < 0 || count > maxNumber {
		return nil, fmt.Errorf("%w: cannot draw %d distinct numbers from 1..%d", ErrInvalidRange, count, maxNumber)
	}
	return g.drawNumbers(count, maxNumber), nil
}

func (g *Generator) drawNumbers(count, maxNumber int) []int {
	seen := make(map[int]struct{}, count)
	numbers := make([]int, 0, count)
	for len(numbers) < count {
		n := roll(g.rng, maxNumber)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	return numbers
}

// GenerateCombination draws numbers, redrawing up to MaxAttempts times while
// smart filters flag the draw as common. When the cap is hit the last draw is
// kept as is.
func (g *Generator) GenerateCombination() model.Combination {
	var numbers []int
	attempts := 0
	common := false
	for {
		numbers = g.drawNumbers(g.cfg.NumberCount, g.cfg.MaxNumber)
		attempts++
		if !g.cfg.SmartFilters {
			break
		}
		common = g.IsCommonPattern(numbers)
		if !common || attempts >= MaxAttempts {
			break
		}
	}
	if common {
		g.log.Debugw("retry cap reached, keeping common draw", "numbers", numbers, "attempts", attempts)
	} else {
		g.log.Debugw("draw accepted", "numbers", numbers, "attempts", attempts)
	}

	bonus := roll(g.rng, g.cfg.BonusNumber)
	ts := g.now().UTC().Truncate(time.Millisecond)
	return model.Combination{
		Numbers:   numbers,
		Bonus:     bonus,
		Timestamp: ts,
		ID:        g.ids.next(ts),
	}
}

// GenerateAndSave generates count combinations, saving each one as soon as it
// is drawn. A count below one is treated as one.
func (g *Generator) GenerateAndSave(ctx context.Context, count int) []model.Combination {
	if count < 1 {
		count = 1
	}
	generated := make([]model.Combination, 0, count)
	for i := 0; i < count; i++ {
		c := g.GenerateCombination()
		g.SaveCombination(ctx, c)
		generated = append(generated, c.Clone())
	}
	return generated
}

// SaveCombination appends c to the archive and flushes it.
func (g *Generator) SaveCombination(ctx context.Context, c model.Combination) {
	g.combinations = append(g.combinations, c.Clone())
	g.ids.observe(c.ID)
	g.flush(ctx)
}

// ClearCombinations empties the archive and flushes it.
func (g *Generator) ClearCombinations(ctx context.Context) {
	g.combinations = []model.Combination{}
	g.flush(ctx)
}

// DeleteCombination removes every combination with id and flushes the archive,
// even when nothing matched. It returns how many entries were removed.
func (g *Generator) DeleteCombination(ctx context.Context, id int64) int {
	before := len(g.combinations)
	g.combinations = slices.DeleteFunc(g.combinations, func(c model.Combination) bool {
		return c.ID == id
	})
	g.flush(ctx)
	return before - len(g.combinations)
}

// AllCombinations returns a copy of the archive in insertion order.
func (g *Generator) AllCombinations() []model.Combination {
	return model.CloneAll(g.combinations)
}

// FormatCombination renders c with the generator's formatter.
func (g *Generator) FormatCombination(c model.Combination) string {
	return g.formatter.Format(c)
}

// FormatTime renders t the way FormatCombination renders timestamps.
func (g *Generator) FormatTime(t time.Time) string {
	return g.formatter.Time(t)
}

func (g *Generator) load(ctx context.Context) []model.Combination {
	data, ok, err := g.store.Load(ctx, storage.ArchiveKey)
	if err != nil {
		g.log.Errorw("load combinations", "key", storage.ArchiveKey, "error", err)
		return []model.Combination{}
	}
	if !ok {
		return []model.Combination{}
	}
	combinations, err := storage.DecodeArchive(data)
	if err != nil {
		g.log.Errorw("decode combinations", "key", storage.ArchiveKey, "error", err)
		return []model.Combination{}
	}
	return combinations
}

// flush writes the whole archive. Failures are logged; the in-memory archive
// stays authoritative until the next successful flush.
func (g *Generator) flush(ctx context.Context) {
	data, err := storage.EncodeArchive(g.combinations)
	if err != nil {
		g.log.Errorw("encode combinations", "error", err)
		return
	}
	if err := g.store.Save(ctx, storage.ArchiveKey, data); err != nil {
		g.log.Errorw("save combinations", "key", storage.ArchiveKey, "count", len(g.combinations), "error", err)
		return
	}
	g.log.Debugw("saved combinations", "key", storage.ArchiveKey, "count", len(g.combinations))
}
