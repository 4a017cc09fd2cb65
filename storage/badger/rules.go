package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/storage"
)

// RuleRepository implements storage.RuleRepository for BadgerDB.
type RuleRepository struct {
	backend *Backend
}

var _ storage.RuleRepository = (*RuleRepository)(nil)

// NewRuleRepository creates a new RuleRepository.
//
// Returns storage.RuleRepository interface to enforce abstraction.
func NewRuleRepository(backend *Backend) (storage.RuleRepository, error) {
	return &RuleRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database lifecycle.
func (r *RuleRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *RuleRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutJurisdiction inserts or updates a jurisdiction record.
func (r *RuleRepository) PutJurisdiction(ctx context.Context, jur *core.Jurisdiction) (*core.Jurisdiction, error) {
	if err := core.ValidateJurisdiction(jur); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJurisdictionKey(jur.Code)

		old, err := r.readJurisdiction(tx, key)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if old != nil {
			jur.InsertedAt = old.InsertedAt
		} else {
			jur.InsertedAt = now
		}
		jur.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalJurisdiction(jur)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return jur, err
}

// GetJurisdiction retrieves a jurisdiction by code.
func (r *RuleRepository) GetJurisdiction(ctx context.Context, code string) (*core.Jurisdiction, error) {
	var jur *core.Jurisdiction

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		jur, err = r.readJurisdiction(tx, makeJurisdictionKey(code))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if jur == nil {
		return nil, storage.ErrNotFound
	}
	return jur, nil
}

// ListJurisdictions retrieves all stored jurisdictions ordered by code.
func (r *RuleRepository) ListJurisdictions(ctx context.Context) ([]*core.Jurisdiction, error) {
	var jurisdictions []*core.Jurisdiction

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(jurisdictionPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Keys are prefix:code, so badger's key order is code order
		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				jur, err := storage.UnmarshalJurisdiction(val)
				if err != nil {
					return err
				}
				jurisdictions = append(jurisdictions, jur)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return jurisdictions, nil
}

// PutRules inserts or updates rules, keyed by (jurisdiction, topic).
func (r *RuleRepository) PutRules(ctx context.Context, rules ...*core.Rule) ([]*core.Rule, error) {
	for _, rule := range rules {
		if err := core.ValidateRule(rule); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, rule := range rules {
			rule.Id = core.IDFromContent(rule.Tuple())
			key := makeRuleKey(rule.JurisdictionCode, rule.TopicID)

			old, err := r.readRule(tx, key)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if old != nil {
				rule.InsertedAt = old.InsertedAt
			} else {
				rule.InsertedAt = now
			}
			rule.UpdatedAt = now

			if err := tx.Set(key, storage.MarshalRule(rule)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return rules, err
}

// GetRule retrieves a single rule by jurisdiction code and topic id.
func (r *RuleRepository) GetRule(ctx context.Context, jurisdictionCode, topicID string) (*core.Rule, error) {
	var rule *core.Rule

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		rule, err = r.readRule(tx, makeRuleKey(jurisdictionCode, topicID))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, storage.ErrNotFound
	}
	return rule, nil
}

// ListRules retrieves all rules for a jurisdiction ordered by topic id.
func (r *RuleRepository) ListRules(ctx context.Context, jurisdictionCode string) ([]*core.Rule, error) {
	rules := []*core.Rule{}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeRuleScanPrefix(jurisdictionCode)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Keys are prefix:code:topic, so badger's key order is topic order
		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				rule, err := storage.UnmarshalRule(val)
				if err != nil {
					return err
				}
				rules = append(rules, rule)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return rules, nil
}

// DeleteJurisdiction removes a jurisdiction and all of its rules.
func (r *RuleRepository) DeleteJurisdiction(ctx context.Context, code string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		jurKey := makeJurisdictionKey(code)

		jur, err := r.readJurisdiction(tx, jurKey)
		if err != nil {
			return err
		}
		if jur == nil {
			return storage.ErrNotFound
		}

		// Collect rule keys first; deleting while iterating is undefined
		var ruleKeys [][]byte
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeRuleScanPrefix(code)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		for iter.Rewind(); iter.Valid(); iter.Next() {
			ruleKeys = append(ruleKeys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range ruleKeys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		if err := tx.Delete(jurKey); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readJurisdiction reads a jurisdiction by key, returning nil if absent.
func (r *RuleRepository) readJurisdiction(tx *badger.Txn, key []byte) (*core.Jurisdiction, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var jur *core.Jurisdiction
	err = item.Value(func(val []byte) error {
		var err error
		jur, err = storage.UnmarshalJurisdiction(val)
		return err
	})
	return jur, err
}

// readRule reads a rule by key, returning nil if absent.
func (r *RuleRepository) readRule(tx *badger.Txn, key []byte) (*core.Rule, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var rule *core.Rule
	err = item.Value(func(val []byte) error {
		var err error
		rule, err = storage.UnmarshalRule(val)
		return err
	})
	return rule, err
}
