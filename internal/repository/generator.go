package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rngenius/rngenius-go/internal/model"
)

var (
	ErrGeneratorNotFound = errors.New("generator not found")
	ErrOptionNotFound    = errors.New("option not found")
)

// GeneratorRepository handles generator and option persistence operations.
type GeneratorRepository struct {
	db *sql.DB
}

// NewGeneratorRepository creates a new GeneratorRepository.
func NewGeneratorRepository(db *sql.DB) *GeneratorRepository {
	return &GeneratorRepository{db: db}
}

// Create inserts a generator and any inline options in one transaction,
// setting the generated IDs on the passed structs.
func (r *GeneratorRepository) Create(ctx context.Context, gen *model.Generator) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO generators (user_id, name) VALUES (?, ?)`,
		gen.OwnerID, gen.Name,
	)
	if err != nil {
		return err
	}

	genID, err := result.LastInsertId()
	if err != nil {
		return err
	}
	gen.ID = genID

	for i := range gen.Options {
		opt := &gen.Options[i]
		opt.GeneratorID = genID

		result, err := tx.ExecContext(ctx,
			`INSERT INTO options (generator_id, category, value) VALUES (?, ?, ?)`,
			opt.GeneratorID, opt.Category, opt.Value,
		)
		if err != nil {
			return err
		}
		if opt.ID, err = result.LastInsertId(); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves a generator together with all its options.
func (r *GeneratorRepository) GetByID(ctx context.Context, id int64) (*model.Generator, error) {
	query := `SELECT id, user_id, name FROM generators WHERE id = ?`

	gen := &model.Generator{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&gen.ID, &gen.OwnerID, &gen.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGeneratorNotFound
		}
		return nil, err
	}

	gen.Options, err = r.optionsForGenerator(ctx, gen.ID)
	if err != nil {
		return nil, err
	}

	return gen, nil
}

// ListByOwner retrieves all generators owned by a user, options included,
// ordered by id. Returns an empty slice when the user owns none.
func (r *GeneratorRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Generator, error) {
	query := `SELECT id, user_id, name FROM generators WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	generators := []model.Generator{}
	for rows.Next() {
		var g model.Generator
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.Name); err != nil {
			return nil, err
		}
		generators = append(generators, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range generators {
		generators[i].Options, err = r.optionsForGenerator(ctx, generators[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return generators, nil
}

// Delete removes a generator; its options are removed by the ON DELETE
// CASCADE constraint.
func (r *GeneratorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM generators WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGeneratorNotFound
	}

	return nil
}

// AddOption appends an option to a generator, setting the generated ID.
func (r *GeneratorRepository) AddOption(ctx context.Context, opt *model.Option) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO options (generator_id, category, value) VALUES (?, ?, ?)`,
		opt.GeneratorID, opt.Category, opt.Value,
	)
	if err != nil {
		return err
	}

	opt.ID, err = result.LastInsertId()
	return err
}

// GetOptionByID retrieves a single option by its ID.
func (r *GeneratorRepository) GetOptionByID(ctx context.Context, id int64) (*model.Option, error) {
	query := `SELECT id, generator_id, category, value FROM options WHERE id = ?`

	opt := &model.Option{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&opt.ID, &opt.GeneratorID, &opt.Category, &opt.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	return opt, nil
}

// DeleteOptionByCategory removes the option matching both id and category.
func (r *GeneratorRepository) DeleteOptionByCategory(ctx context.Context, id int64, category string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM options WHERE id = ? AND category = ?`, id, category,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOptionNotFound
	}

	return nil
}

func (r *GeneratorRepository) optionsForGenerator(ctx context.Context, generatorID int64) ([]model.Option, error) {
	query := `SELECT id, generator_id, category, value FROM options WHERE generator_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, generatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []model.Option{}
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.ID, &o.GeneratorID, &o.Category, &o.Value); err != nil {
			return nil, err
		}
		options = append(options, o)
	}

	return options, rows.Err()
}
