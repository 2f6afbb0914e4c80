package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// PutCatalog replaces the whole catalog. The admin API always sends the full
// document, matching how the client app consumes it.
func (s *SQLStore) PutCatalog(ctx context.Context, c Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_items`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return err
	}

	for i, cat := range c.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name, name_zh, position) VALUES ($1,$2,$3,$4)`,
			cat.ID, cat.Name, cat.NameZh, i); err != nil {
			return err
		}
	}
	pos := 0
	for _, it := range c.Items {
		if !it.Valid() {
			continue
		}
		tagsJSON, _ := json.Marshal(it.Tags)
		imagesJSON, _ := json.Marshal(it.Images)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO menu_items (id, name, price, description, full_description, image, images_json, category, tags_json, position)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			it.ID, it.Name, it.Price, it.Description, it.FullDescription,
			it.Image, string(imagesJSON), it.Category, string(tagsJSON), pos); err != nil {
			return err
		}
		pos++
	}
	return tx.Commit()
}

func (s *SQLStore) GetCatalog(ctx context.Context) (Catalog, error) {
	var c Catalog

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, name_zh FROM categories ORDER BY position`)
	if err != nil {
		return Catalog{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.NameZh); err != nil {
			return Catalog{}, err
		}
		c.Categories = append(c.Categories, cat)
	}
	if err := rows.Err(); err != nil {
		return Catalog{}, err
	}

	c.Items, err = s.ListItems(ctx, ListOpts{})
	if err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (s *SQLStore) ListItems(ctx context.Context, opts ListOpts) ([]MenuItem, error) {
	q := `SELECT id, name, price, description, full_description, image, images_json, category, tags_json
	      FROM menu_items`
	args := []interface{}{}
	if opts.Category != "" {
		q += ` WHERE category = $1`
		args = append(args, opts.Category)
	}
	q += ` ORDER BY position`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []MenuItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(items) {
			return []MenuItem{}, nil
		}
		items = items[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items, nil
}

func (s *SQLStore) GetItem(ctx context.Context, id string) (MenuItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, price, description, full_description, image, images_json, category, tags_json
		 FROM menu_items WHERE id = $1`, id)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MenuItem{}, errors.New("item not found")
		}
		return MenuItem{}, err
	}
	return it, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (MenuItem, error) {
	var it MenuItem
	var imagesJSON, tagsJSON string
	if err := row.Scan(&it.ID, &it.Name, &it.Price, &it.Description, &it.FullDescription,
		&it.Image, &imagesJSON, &it.Category, &tagsJSON); err != nil {
		return MenuItem{}, err
	}
	if err := json.Unmarshal([]byte(imagesJSON), &it.Images); err != nil {
		it.Images = nil
	}
	if err := json.Unmarshal([]byte(tagsJSON), &it.Tags); err != nil {
		it.Tags = nil
	}
	return it, nil
}
