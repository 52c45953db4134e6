package intent

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// Category groups trigger fragments that share one canned reply.
type Category struct {
	Name     string
	Triggers []string
	Reply    string
}

// matches reports whether any trigger is contained in the normalized text.
func (c Category) matches(normalized string) bool {
	for _, trigger := range c.Triggers {
		if trigger == "" {
			continue
		}
		if strings.Contains(normalized, trigger) {
			return true
		}
	}
	return false
}

// Picker returns a uniformly distributed index in [0, n).
type Picker func(n int) int

// Option customises a Selector.
type Option func(*Selector)

// WithPicker replaces the random source used for fallback replies.
func WithPicker(pick Picker) Option {
	return func(s *Selector) {
		if pick != nil {
			s.pick = pick
		}
	}
}

// WithRand draws fallback picks from r. Picks are serialised with a mutex
// since a *rand.Rand is not safe for concurrent use, which keeps a seeded
// Selector shareable across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(s *Selector) {
		if r != nil {
			var mu sync.Mutex
			s.pick = func(n int) int {
				mu.Lock()
				defer mu.Unlock()
				return r.IntN(n)
			}
		}
	}
}

// Selector 根据关键词类别为用户消息挑选固定回复，未命中时从默认回复池中随机选择。
type Selector struct {
	categories []Category
	pool       []string
	pick       Picker
}

// NewSelector builds a selector over the ordered categories. Earlier categories
// win when triggers overlap. Triggers are lower-cased once here; an empty pool
// falls back to the built-in default replies so Select never returns "".
func NewSelector(categories []Category, pool []string, opts ...Option) *Selector {
	s := &Selector{
		categories: normalizeCategories(categories),
		pool:       nonEmpty(pool),
		pick:       rand.IntN,
	}
	if len(s.pool) == 0 {
		s.pool = DefaultPool()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default returns a selector over the canonical category table and pool.
func Default(opts ...Option) *Selector {
	return NewSelector(DefaultCategories(), DefaultPool(), opts...)
}

// Select maps free text to exactly one reply.
func (s *Selector) Select(input string) string {
	if category, ok := s.Match(input); ok {
		return category.Reply
	}
	return s.fallback()
}

// Match returns the first category, in priority order, triggered by input.
func (s *Selector) Match(input string) (Category, bool) {
	normalized := strings.ToLower(input)
	for _, category := range s.categories {
		if category.matches(normalized) {
			return category, true
		}
	}
	return Category{}, false
}

// Pool returns a copy of the fallback replies.
func (s *Selector) Pool() []string {
	return append([]string(nil), s.pool...)
}

// Categories returns a copy of the ordered category table.
func (s *Selector) Categories() []Category {
	return append([]Category(nil), s.categories...)
}

func (s *Selector) fallback() string {
	idx := s.pick(len(s.pool))
	if idx < 0 || idx >= len(s.pool) {
		idx = 0
	}
	return s.pool[idx]
}

func normalizeCategories(categories []Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if strings.TrimSpace(c.Reply) == "" {
			continue
		}
		triggers := make([]string, 0, len(c.Triggers))
		for _, t := range c.Triggers {
			if t == "" {
				continue
			}
			triggers = append(triggers, strings.ToLower(t))
		}
		out = append(out, Category{Name: c.Name, Triggers: triggers, Reply: c.Reply})
	}
	return out
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
