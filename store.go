package backoffice

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Store persists clients, contributions and investments as relational rows in
// a SQLite database. All derived fields are computed at the write boundary,
// inside the save transaction, so aggregate reads always reflect committed
// state and never a cache.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database at path and migrates the schema.
// Foreign keys are enabled on every pooled connection so client deletes
// cascade to the client's contributions and investments.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("could not open database %q: %w", path, err)
	}
	if err := db.AutoMigrate(&Client{}, &Contribution{}, &Investment{}); err != nil {
		return nil, fmt.Errorf("could not migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// serializable makes every save transaction serialize with concurrent writers.
// The funds gate reads aggregates and then writes; without this, two staff
// actors saving against the same client could both pass the check.
var serializable = &sql.TxOptions{Isolation: sql.LevelSerializable}

// --- clients ---

// SaveClient validates and persists a client, new or edited. The contribution
// frequency is normalized first: lump sum forces once_off.
func (s *Store) SaveClient(c *Client) error {
	c.NormalizeContributionFrequency()
	if err := c.Validate(); err != nil {
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkClientUnique(tx, c); err != nil {
			return err
		}
		return tx.Save(c).Error
	}, serializable)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent writer beat the pre-check; report it the same way.
		ve := &ValidationError{}
		ve.AddNonField("a client with this email or NRC already exists")
		return ve
	}
	return err
}

func checkClientUnique(tx *gorm.DB, c *Client) error {
	ve := &ValidationError{}
	var n int64
	if err := tx.Model(&Client{}).Where("email = ? AND id <> ?", c.Email, c.ID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		ve.Add("email", "a client with this email already exists")
	}
	if err := tx.Model(&Client{}).Where("nrc = ? AND id <> ?", c.NRC, c.ID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		ve.Add("nrc", "a client with this NRC already exists")
	}
	return ve.OrNil()
}

// Client returns the client with this id.
func (s *Store) Client(id uint) (*Client, error) {
	return getClient(s.db, id)
}

// Clients returns all clients ordered by name.
func (s *Store) Clients() ([]Client, error) {
	var clients []Client
	if err := s.db.Order("full_name, id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// DeleteClient removes a client. The foreign keys cascade, so the client's
// contributions and investments go with it.
func (s *Store) DeleteClient(id uint) error {
	res := s.db.Delete(&Client{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("client %d not found", id)
	}
	return nil
}

func getClient(tx *gorm.DB, id uint) (*Client, error) {
	var c Client
	if err := tx.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %d not found", id)
		}
		return nil, err
	}
	return &c, nil
}

// --- aggregates ---

// TotalContributions sums the investable amount over the client's
// contributions, re-queried from committed rows on every call.
func (s *Store) TotalContributions(clientID uint) (decimal.Decimal, error) {
	return totalContributions(s.db, clientID)
}

// TotalInvestments sums the invested amount over the client's investments,
// re-queried from committed rows on every call.
func (s *Store) TotalInvestments(clientID uint) (decimal.Decimal, error) {
	return totalInvestments(s.db, clientID)
}

// AvailableForInvestment is the investable contributions not yet deployed:
// TotalContributions minus TotalInvestments. It can be negative only if rows
// were written with the funds gate bypassed.
func (s *Store) AvailableForInvestment(clientID uint) (decimal.Decimal, error) {
	return availableForInvestment(s.db, clientID)
}

// The sums are computed in Go over decimal values rather than with SQL SUM:
// SQLite would coerce the decimal text columns to floats and drift.

func totalContributions(tx *gorm.DB, clientID uint) (decimal.Decimal, error) {
	var rows []Contribution
	if err := tx.Where("client_id = ?", clientID).Find(&rows).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.InvestableAmount)
	}
	return total, nil
}

func totalInvestments(tx *gorm.DB, clientID uint) (decimal.Decimal, error) {
	var rows []Investment
	if err := tx.Where("client_id = ?", clientID).Find(&rows).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.InvestmentAmount)
	}
	return total, nil
}

func availableForInvestment(tx *gorm.DB, clientID uint) (decimal.Decimal, error) {
	contributed, err := totalContributions(tx, clientID)
	if err != nil {
		return decimal.Zero, err
	}
	invested, err := totalInvestments(tx, clientID)
	if err != nil {
		return decimal.Zero, err
	}
	return contributed.Sub(invested), nil
}

// --- contributions ---

// RecordContribution derives the fees and investable amount and persists the
// contribution. Contributions are accepted unconditionally; only investments
// are gated on available funds.
func (s *Store) RecordContribution(c *Contribution) error {
	c.Recompute()
	if err := c.Validate(); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getClient(tx, c.ClientID); err != nil {
			return err
		}
		return tx.Save(c).Error
	}, serializable)
}

// Contributions returns the client's contributions in date order.
func (s *Store) Contributions(clientID uint) ([]Contribution, error) {
	var rows []Contribution
	if err := s.db.Where("client_id = ?", clientID).Order("date, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --- investments ---

// RecordInvestment persists an investment as of the given date.
//
// The maturity date is set on first save and frozen. With validate true, field
// validation runs and the funds gate rejects an amount exceeding the client's
// available funds, citing the currency and both amounts. With validate false
// (maintenance sweeps) both are skipped; the projection and status are still
// recomputed. The aggregate read and the write share one serializable
// transaction.
func (s *Store) RecordInvestment(v *Investment, asOf Date, validate bool) error {
	v.EnsureMaturityDate()
	if validate {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		client, err := getClient(tx, v.ClientID)
		if err != nil {
			return err
		}
		if validate {
			available, err := availableForInvestment(tx, v.ClientID)
			if err != nil {
				return err
			}
			if v.InvestmentAmount.GreaterThan(available) {
				return &InsufficientFundsError{
					Currency:  client.Currency,
					Requested: v.InvestmentAmount,
					Available: available,
				}
			}
		}
		if err := v.Project(asOf); err != nil {
			return err
		}
		return tx.Save(v).Error
	}, serializable)
}

// Investment returns the investment with this id.
func (s *Store) Investment(id uint) (*Investment, error) {
	var v Investment
	if err := s.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("investment %d not found", id)
		}
		return nil, err
	}
	return &v, nil
}

// Investments returns the client's investments in start date order.
func (s *Store) Investments(clientID uint) ([]Investment, error) {
	var rows []Investment
	if err := s.db.Where("client_id = ?", clientID).Order("start_date, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// AllInvestments returns every investment in the book, oldest row first.
func (s *Store) AllInvestments() ([]Investment, error) {
	var rows []Investment
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --- statement ---

// ClientSummary is everything a statement needs: the profile, the records, and
// the aggregates recomputed from them.
type ClientSummary struct {
	Client        Client
	Contributions []Contribution
	Investments   []Investment

	TotalReceived     decimal.Decimal // gross contributions
	TotalFees         decimal.Decimal
	TotalInvestable   decimal.Decimal
	TotalInvested     decimal.Decimal
	AvailableToInvest decimal.Decimal
}

// Summary loads a client's statement data in a single read transaction.
func (s *Store) Summary(clientID uint) (*ClientSummary, error) {
	var summary ClientSummary
	err := s.db.Transaction(func(tx *gorm.DB) error {
		client, err := getClient(tx, clientID)
		if err != nil {
			return err
		}
		summary.Client = *client
		if err := tx.Where("client_id = ?", clientID).Order("date, id").Find(&summary.Contributions).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", clientID).Order("start_date, id").Find(&summary.Investments).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary.TotalReceived = decimal.Zero
	summary.TotalFees = decimal.Zero
	summary.TotalInvestable = decimal.Zero
	summary.TotalInvested = decimal.Zero
	for _, c := range summary.Contributions {
		summary.TotalReceived = summary.TotalReceived.Add(c.ContributionAmount)
		summary.TotalFees = summary.TotalFees.Add(c.Fees)
		summary.TotalInvestable = summary.TotalInvestable.Add(c.InvestableAmount)
	}
	for _, v := range summary.Investments {
		summary.TotalInvested = summary.TotalInvested.Add(v.InvestmentAmount)
	}
	summary.AvailableToInvest = summary.TotalInvestable.Sub(summary.TotalInvested)
	return &summary, nil
}
