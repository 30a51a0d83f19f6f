package analysis

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
)

// Cache stores pipeline results keyed by an input hash. The pipeline is
// deterministic, so a hit can be returned verbatim.
type Cache struct {
	conn *sql.DB
	ttl  time.Duration
	log  zerolog.Logger

	now func() time.Time
}

// NewCache creates a result cache with the given TTL.
func NewCache(conn *sql.DB, ttl time.Duration, log zerolog.Logger) *Cache {
	return &Cache{
		conn: conn,
		ttl:  ttl,
		log:  log.With().Str("component", "analysis_cache").Logger(),
		now:  time.Now,
	}
}

// Init creates the cache schema if it does not exist.
func (c *Cache) Init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS result_cache (
		input_hash TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		expires_at INTEGER NOT NULL,
		payload    BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_result_cache_expires_at
		ON result_cache(expires_at);
	`
	if _, err := c.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create result_cache schema: %w", err)
	}
	return nil
}

// Get returns the cached result for the hash, if present and unexpired.
func (c *Cache) Get(hash string) (*Result, bool) {
	var payload []byte
	err := c.conn.QueryRow(
		`SELECT payload FROM result_cache WHERE input_hash = ? AND expires_at > ?`,
		hash, c.now().Unix()).Scan(&payload)
	if err != nil {
		if err != sql.ErrNoRows {
			c.log.Warn().Err(err).Msg("Cache lookup failed")
		}
		return nil, false
	}

	var result Result
	if err := msgpack.Unmarshal(payload, &result); err != nil {
		c.log.Warn().Err(err).Str("hash", hash).Msg("Cache payload corrupt, ignoring entry")
		return nil, false
	}
	return &result, true
}

// Put stores a result under the hash. Failures are logged, never returned;
// the cache is an optimization, not a dependency.
func (c *Cache) Put(hash string, result *Result) {
	payload, err := msgpack.Marshal(result)
	if err != nil {
		c.log.Warn().Err(err).Msg("Failed to encode cache payload")
		return
	}

	now := c.now()
	_, err = c.conn.Exec(
		`INSERT OR REPLACE INTO result_cache (input_hash, created_at, expires_at, payload)
		 VALUES (?, ?, ?, ?)`,
		hash, now.Unix(), now.Add(c.ttl).Unix(), payload)
	if err != nil {
		c.log.Warn().Err(err).Msg("Failed to store cache entry")
	}
}

// EvictExpired removes entries past their TTL.
func (c *Cache) EvictExpired() (int64, error) {
	res, err := c.conn.Exec(`DELETE FROM result_cache WHERE expires_at <= ?`, c.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to evict expired cache entries: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// HashInput derives the cache key from a canonical rendering of the inputs.
// Map iteration order is not stable in Go, so every map is walked in sorted
// key order.
func HashInput(input domain.AnalysisInput) string {
	h := sha256.New()

	for _, hold := range input.Holdings {
		fmt.Fprintf(h, "h|%s|%v|%v|%s\n", hold.Symbol, hold.Quantity, hold.BuyPrice, hold.BuyDate)
	}

	for _, symbol := range sortedPriceKeys(input.CurrentPrices) {
		if p := input.CurrentPrices[symbol]; p != nil {
			fmt.Fprintf(h, "p|%s|%v\n", symbol, *p)
		} else {
			fmt.Fprintf(h, "p|%s|nil\n", symbol)
		}
	}

	for _, symbol := range sortedSeriesKeys(input.History) {
		fmt.Fprintf(h, "s|%s\n", symbol)
		writeSeries(h, input.History[symbol])
	}

	for _, symbol := range sortedFundamentalsKeys(input.Fundamentals) {
		f := input.Fundamentals[symbol]
		fmt.Fprintf(h, "f|%s", symbol)
		for _, field := range []*float64{
			f.PERatio, f.PBRatio, f.DividendYield, f.ROE, f.DebtToEquity,
			f.RevenueGrowth, f.EarningsGrowth, f.FiftyTwoWeekHigh, f.MarketCap,
		} {
			if field != nil {
				fmt.Fprintf(h, "|%v", *field)
			} else {
				fmt.Fprint(h, "|nil")
			}
		}
		fmt.Fprintln(h)
	}

	fmt.Fprintln(h, "b")
	writeSeries(h, input.Benchmark)

	return hex.EncodeToString(h.Sum(nil))
}

func writeSeries(w io.Writer, series []domain.PricePoint) {
	for _, p := range series {
		fmt.Fprintf(w, "%s|%v|%v|%v|%v|%v\n", p.Date, p.Open, p.High, p.Low, p.Close, p.Volume)
	}
}

func sortedPriceKeys(m map[string]*float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSeriesKeys(m map[string][]domain.PricePoint) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFundamentalsKeys(m map[string]domain.Fundamentals) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
